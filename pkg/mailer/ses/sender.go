package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer"
)

// Sender implements mailer.Sender using the AWS SES v2 API.
// Attachments require the raw-MIME send path; the message is assembled as a
// multipart/mixed document and handed to SES unmodified.
type Sender struct {
	client *sesv2.Client
	config Config
}

// New creates a new SES sender with static credentials.
// Returns mailer.ErrMissingCredentials if keys or the sender address are absent.
func New(cfg Config) (*Sender, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: ses requires AWS_ACCESS_KEY, AWS_SECRET_KEY and AWS_FROM_EMAIL", mailer.ErrMissingCredentials)
	}

	client := sesv2.New(sesv2.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	})

	return &Sender{client: client, config: cfg}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = s.config.SenderEmail
	}

	raw, err := buildRawMessage(from, email)
	if err != nil {
		return fmt.Errorf("ses: build raw message: %w", err)
	}

	_, err = s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination:      &types.Destination{ToAddresses: email.To},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("ses: failed to send email: %w", err)
	}

	return nil
}
