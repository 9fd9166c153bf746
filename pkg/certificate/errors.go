package certificate

import "errors"

var (
	// ErrUnknownFont indicates a font key outside the supported set.
	ErrUnknownFont = errors.New("certificate: unknown font")

	// ErrFontNotFound indicates the font asset is missing from the font directory.
	ErrFontNotFound = errors.New("certificate: font file not found")

	// ErrFontLoad indicates the font file could not be parsed.
	ErrFontLoad = errors.New("certificate: failed to load font")

	// ErrTemplateOpen indicates the template image could not be opened or decoded.
	ErrTemplateOpen = errors.New("certificate: failed to open template")

	// ErrOutputWrite indicates the output PDF could not be written.
	ErrOutputWrite = errors.New("certificate: failed to write output")
)
