package mailer

import (
	_ "embed"
	"strings"
	"time"
)

//go:embed contact-owner.html
var contactOwnerTemplate string

// esc neutralises angle brackets before values are substituted into the HTML
// body.
func esc(value string) string {
	value = strings.ReplaceAll(value, "<", "&lt;")
	return strings.ReplaceAll(value, ">", "&gt;")
}

// optionalBlock renders a label/value row, or nothing when the value is
// empty.
func optionalBlock(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return `<p class="label">` + label + `</p><p class="value">` + esc(value) + `</p>`
}

// BuildContactEmailHTML fills the embedded owner-notification template by
// placeholder substitution.
func BuildContactEmailHTML(shopName string, msg ContactMessage, sentAt time.Time) string {
	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = "Nou missatge de contacte"
	}

	html := contactOwnerTemplate
	html = strings.ReplaceAll(html, "__LOCALE__", string(msg.Locale))
	html = strings.ReplaceAll(html, "__SUBJECT__", esc(subject))
	html = strings.ReplaceAll(html, "__SHOP_NAME__", esc(shopName))
	html = strings.ReplaceAll(html, "__CUSTOMER_NAME__", esc(msg.Name))
	html = strings.ReplaceAll(html, "__CUSTOMER_EMAIL__", esc(msg.Email))
	html = strings.ReplaceAll(html, "__PHONE_BLOCK__", optionalBlock("Telèfon", msg.Phone))
	html = strings.ReplaceAll(html, "__SUBJECT_BLOCK__", optionalBlock("Assumpte", msg.Subject))
	html = strings.ReplaceAll(html, "__MESSAGE__", esc(msg.Message))
	html = strings.ReplaceAll(html, "__SENT_AT__", sentAt.Format("02/01/2006 15:04"))
	return html
}
