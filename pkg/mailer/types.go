package mailer

import "fmt"

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Subject     string       // Email subject
	HTML        string       // HTML body content
	From        string       // Override default sender (if provider allows)
	ReplyTo     string       // Reply-to address
	To          []string     // Recipients (at least one required)
	Attachments []Attachment // File attachments
}

// Attachment represents an email attachment.
// Content carries the full file bytes; providers that need base64 encode it
// themselves and must never modify the source file.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	Content     []byte // Raw file content
}
