package gmail

import (
	"bytes"
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer"
)

// Sender implements mailer.Sender over authenticated SMTP (implicit TLS).
type Sender struct {
	client *gomail.Client
	config Config
}

// New creates a new Gmail SMTP sender.
// Returns mailer.ErrMissingCredentials if the account or app password is absent.
func New(cfg Config) (*Sender, error) {
	if cfg.Email == "" || cfg.AppPassword == "" {
		return nil, fmt.Errorf("%w: gmail requires GMAIL_EMAIL and GMAIL_APP_PASSWORD", mailer.ErrMissingCredentials)
	}

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Email),
		gomail.WithPassword(cfg.AppPassword),
	)
	if err != nil {
		return nil, fmt.Errorf("gmail: create smtp client: %w", err)
	}

	return &Sender{client: client, config: cfg}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg := gomail.NewMsg()

	from := email.From
	if from == "" {
		from = s.config.Email
	}
	if err := msg.From(from); err != nil {
		return fmt.Errorf("gmail: invalid sender %q: %w", from, err)
	}
	if err := msg.To(email.To...); err != nil {
		return fmt.Errorf("gmail: invalid recipients: %w", err)
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return fmt.Errorf("gmail: invalid reply-to %q: %w", email.ReplyTo, err)
		}
	}

	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, email.HTML)

	for _, a := range email.Attachments {
		if err := msg.AttachReader(a.Filename, bytes.NewReader(a.Content)); err != nil {
			return fmt.Errorf("gmail: attach %q: %w", a.Filename, err)
		}
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("gmail: failed to send email: %w", err)
	}

	return nil
}
