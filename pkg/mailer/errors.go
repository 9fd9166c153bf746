package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("mailer: email must have at least one recipient")

	// ErrNoContent indicates no HTML content was provided.
	ErrNoContent = errors.New("mailer: email must have HTML content")

	// ErrMissingCredentials indicates a provider was constructed without
	// the credentials it requires from the environment.
	ErrMissingCredentials = errors.New("mailer: missing provider credentials")

	// ErrUnknownProvider indicates an unrecognized provider key.
	ErrUnknownProvider = errors.New("mailer: unknown provider")

	// ErrAttachmentRead indicates the attachment file could not be read.
	ErrAttachmentRead = errors.New("mailer: failed to read attachment")

	// ErrBodyRender indicates the markdown body could not be rendered.
	ErrBodyRender = errors.New("mailer: failed to render body")

	// ErrSendFailed indicates the provider rejected or failed the delivery.
	ErrSendFailed = errors.New("mailer: failed to send email")
)
