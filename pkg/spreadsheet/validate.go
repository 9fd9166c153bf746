package spreadsheet

import (
	"regexp"
	"strings"
)

// emailPattern accepts local@domain.tld shapes with a top-level label of at
// least two characters. Deliberately a syntax check only; deliverability is
// the provider's problem.
var emailPattern = regexp.MustCompile(`^[\w.+-]+@[\w.-]+\.\w{2,}$`)

// ValidEmail reports whether the address is syntactically acceptable.
// Matching is case-insensitive and ignores surrounding whitespace.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.ToLower(strings.TrimSpace(email)))
}
