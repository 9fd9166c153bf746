// Package provider selects a concrete mailer.Sender from a closed set of
// delivery provider kinds. Unknown keys and missing credentials fail at
// construction time, before any recipient row is processed.
package provider

import (
	"fmt"
	"strings"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer/gmail"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer/resend"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer/ses"
)

// Kind identifies a delivery provider.
type Kind string

// Supported provider kinds.
const (
	KindResend Kind = "resend"
	KindGmail  Kind = "gmail"
	KindSES    Kind = "ses"
)

// Kinds returns all supported provider kinds.
func Kinds() []Kind {
	return []Kind{KindResend, KindGmail, KindSES}
}

// ParseKind validates a provider key.
// Returns mailer.ErrUnknownProvider for unrecognized keys.
func ParseKind(key string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(key))); k {
	case KindResend, KindGmail, KindSES:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", mailer.ErrUnknownProvider, key)
	}
}

// Config aggregates credentials for all supported providers.
// Only the selected provider's section is required at construction time.
type Config struct {
	Resend resend.Config
	Gmail  gmail.Config
	SES    ses.Config
}

// New constructs the sender for the given kind.
// Credential presence is checked here, so a misconfigured job fails before
// any row is processed.
func New(kind Kind, cfg Config) (mailer.Sender, error) {
	switch kind {
	case KindResend:
		return resend.New(cfg.Resend)
	case KindGmail:
		return gmail.New(cfg.Gmail)
	case KindSES:
		return ses.New(cfg.SES)
	default:
		return nil, fmt.Errorf("%w: %q", mailer.ErrUnknownProvider, kind)
	}
}
