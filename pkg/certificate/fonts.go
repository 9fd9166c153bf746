package certificate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fontFiles maps supported font keys to their asset filenames.
var fontFiles = map[string]string{
	"roboto":        "Roboto-Regular.ttf",
	"georgia":       "Georgia.ttf",
	"opensans":      "OpenSans-Regular.ttf",
	"timesnewroman": "TimesNewRoman.ttf",
	"arial":         "Arial.ttf",
}

// FontKeys returns the supported font keys in no particular order.
func FontKeys() []string {
	keys := make([]string, 0, len(fontFiles))
	for k := range fontFiles {
		keys = append(keys, k)
	}
	return keys
}

// ValidFontKey reports whether key is in the supported font set.
func ValidFontKey(key string) bool {
	_, ok := fontFiles[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// FontPath resolves a font key to an asset path under dir.
// Returns ErrUnknownFont for keys outside the supported set and
// ErrFontNotFound when the asset file is missing.
func FontPath(dir, key string) (string, error) {
	filename, ok := fontFiles[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFont, key, strings.Join(FontKeys(), ", "))
	}

	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFontNotFound, path)
	}
	return path, nil
}
