package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderBody(t *testing.T) {
	t.Parallel()

	t.Run("renders markdown to HTML", func(t *testing.T) {
		t.Parallel()

		html, err := RenderBody("Congratulations **Alice**, your certificate is attached.")
		require.NoError(t, err)
		require.Contains(t, html, "<strong>Alice</strong>")
		require.Contains(t, html, "<p>")
	})

	t.Run("plain text becomes a paragraph", func(t *testing.T) {
		t.Parallel()

		html, err := RenderBody("Please find your certificate attached.")
		require.NoError(t, err)
		require.Contains(t, html, "<p>Please find your certificate attached.</p>")
	})

	t.Run("strips script injection", func(t *testing.T) {
		t.Parallel()

		html, err := RenderBody(`Hello <script>alert("x")</script> there`)
		require.NoError(t, err)
		require.NotContains(t, html, "<script>")
		require.NotContains(t, html, "alert")
	})

	t.Run("strips javascript links", func(t *testing.T) {
		t.Parallel()

		html, err := RenderBody(`[click](javascript:alert(1))`)
		require.NoError(t, err)
		require.NotContains(t, html, "javascript:")
	})
}
