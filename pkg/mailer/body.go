package mailer

import (
	"bytes"
	"errors"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	bodyPolicy *bluemonday.Policy
	policyOnce sync.Once
)

func initBodyPolicy() {
	policyOnce.Do(func() {
		// Allow basic formatting only; strips scripts, event handlers
		// and javascript: URLs from user-supplied message bodies.
		bodyPolicy = bluemonday.NewPolicy()
		bodyPolicy.AllowStandardURLs()
		bodyPolicy.AllowElements(
			"p", "br",
			"h1", "h2", "h3",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		bodyPolicy.AllowAttrs("href").OnElements("a")
		bodyPolicy.RequireNoFollowOnLinks(true)
	})
}

// RenderBody converts a markdown message body to sanitized HTML.
// Plain text passes through as a paragraph, so callers can treat the
// body field as free-form text.
func RenderBody(markdown string) (string, error) {
	initBodyPolicy()

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", errors.Join(ErrBodyRender, err)
	}
	return bodyPolicy.Sanitize(buf.String()), nil
}
