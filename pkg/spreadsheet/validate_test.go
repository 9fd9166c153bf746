package spreadsheet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/spreadsheet"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{"alice@example.com", true},
		{"ALICE@EXAMPLE.COM", true},
		{"  bob@example.org  ", true},
		{"first.last+tag@sub.domain.co", true},
		{"name-dash@host-name.io", true},
		{"not-an-email", false},
		{"", false},
		{"@example.com", false},
		{"alice@", false},
		{"alice@example", false},
		{"alice@example.c", false},
		{"alice example@domain.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.valid, spreadsheet.ValidEmail(tt.email))
		})
	}
}
