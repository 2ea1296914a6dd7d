package mail

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/texcare/storefront/internal/models"
)

// BuildContactBody renders the submission as the HTML email sent to the
// operator address.
func BuildContactBody(sub models.ContactSubmission) string {
	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2>")
	b.WriteString("<table cellpadding=\"4\">")
	row(&b, "Name", sub.FirstName+" "+sub.LastName)
	row(&b, "Email", sub.Email)
	if sub.Phone != "" {
		row(&b, "Phone", sub.Phone)
	}
	if sub.Subject != "" {
		row(&b, "Subject", sub.Subject)
	}
	row(&b, "Received", time.Unix(sub.CreatedAt, 0).UTC().Format(time.RFC1123))
	b.WriteString("</table>")
	b.WriteString("<h3>Message</h3>")
	b.WriteString("<p>" + strings.ReplaceAll(html.EscapeString(sub.Message), "\n", "<br>") + "</p>")
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<tr><td><b>%s</b></td><td>%s</td></tr>", label, html.EscapeString(value))
}
