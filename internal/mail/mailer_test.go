package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("shop@texcare.example", "ops@texcare.example", "Contact form: Bulk order", "<p>hi</p>")

	header, body, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found)
	require.Equal(t, "<p>hi</p>", body)
	require.Contains(t, header, "Subject: Contact form: Bulk order")
	require.Contains(t, header, "Content-Type: text/html; charset=UTF-8")
}

func TestBuildMessageStripsHeaderInjection(t *testing.T) {
	subject := "Hello\r\nBcc: victim@example.com"
	msg := buildMessage("shop@texcare.example", "ops@texcare.example", subject, "<p>hi</p>")

	header, _, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found)
	require.NotContains(t, header, "Bcc:")

	// Every header line keeps the fixed set of field names; the folded
	// subject cannot start a new one.
	for _, line := range strings.Split(header, "\r\n") {
		require.Regexp(t, `^(From|To|Subject|MIME-Version|Content-Type): `, line)
	}
}

func TestSanitizeHeader(t *testing.T) {
	require.Equal(t, "a b c", sanitizeHeader("a\rb\nc"))
	require.Equal(t, "plain", sanitizeHeader("plain"))
}
