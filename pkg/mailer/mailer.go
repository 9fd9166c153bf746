package mailer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// Mailer prepares and sends certificate emails through a Sender.
type Mailer struct {
	sender Sender
}

// New creates a new Mailer with the given sender.
func New(sender Sender) *Mailer {
	return &Mailer{sender: sender}
}

// SendParams contains parameters for sending one certificate email.
type SendParams struct {
	To             string // Single recipient address
	Subject        string // Email subject
	Body           string // Markdown message body
	AttachmentPath string // Path to the rendered certificate
}

// Send reads the attachment into memory, renders the body and delivers the
// message. The attachment file is left untouched on disk regardless of the
// outcome; deleting it is the caller's responsibility.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}

	html, err := RenderBody(params.Body)
	if err != nil {
		return err
	}
	if html == "" {
		return ErrNoContent
	}

	content, err := os.ReadFile(params.AttachmentPath)
	if err != nil {
		return errors.Join(ErrAttachmentRead, err)
	}

	email := &Email{
		To:      []string{params.To},
		Subject: params.Subject,
		HTML:    html,
		Attachments: []Attachment{{
			Filename:    filepath.Base(params.AttachmentPath),
			ContentType: "application/pdf",
			Content:     content,
		}},
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}
