package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Sender sends one HTML email per call. The contact relay depends on this
// interface so tests can swap the transport.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPSender(host, port, username, password, from string) *SMTPSender {
	return &SMTPSender{host: host, port: port, username: username, password: password, from: from}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	msg := buildMessage(s.from, to, subject, htmlBody)
	return smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg))
}

// buildMessage assembles the RFC 5322 header block and body. Header values
// pass through sanitizeHeader: SendMail validates only the envelope
// addresses, so nothing user-supplied may carry a line break into the data
// block.
func buildMessage(from, to, subject, htmlBody string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		sanitizeHeader(from), sanitizeHeader(to), sanitizeHeader(subject), htmlBody)
}

var headerSanitizer = strings.NewReplacer("\r", " ", "\n", " ")

func sanitizeHeader(v string) string {
	return headerSanitizer.Replace(v)
}
