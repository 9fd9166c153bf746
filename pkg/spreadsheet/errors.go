package spreadsheet

import "errors"

var (
	// ErrTableOpen indicates the workbook could not be opened or parsed.
	// This is a whole-table failure, distinct from per-row malformation.
	ErrTableOpen = errors.New("spreadsheet: failed to open workbook")
)
