package ses

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer"
)

func TestBuildRawMessage(t *testing.T) {
	t.Parallel()

	raw, err := buildRawMessage("sender@example.com", &mailer.Email{
		To:      []string{"alice@example.com"},
		Subject: "Your Certificate",
		HTML:    "<p>Congratulations</p>",
		Attachments: []mailer.Attachment{{
			Filename:    "Alice.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4 payload"),
		}},
	})
	require.NoError(t, err)

	msg := string(raw)
	require.Contains(t, msg, "From: sender@example.com")
	require.Contains(t, msg, "To: alice@example.com")
	require.Contains(t, msg, "Content-Type: multipart/mixed")
	require.Contains(t, msg, "<p>Congratulations</p>")
	require.Contains(t, msg, `attachment; filename="Alice.pdf"`)
	require.Contains(t, msg, "Content-Transfer-Encoding: base64")

	encoded := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 payload"))
	require.Contains(t, strings.ReplaceAll(msg, "\r\n", ""), encoded)
}
