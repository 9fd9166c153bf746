package spreadsheet

import (
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Entry is one extracted row in workbook order.
// A malformed entry carries the reason instead of recipient fields.
type Entry struct {
	Name      string
	Email     string
	Malformed bool
	Reason    string
}

// ExtractRows reads every sheet of the workbook at path and returns its rows
// in file order. Re-reading an unchanged file yields the same sequence.
// Returns ErrTableOpen when the workbook itself cannot be parsed.
func ExtractRows(path string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Join(ErrTableOpen, err)
	}
	defer f.Close()

	var entries []Entry
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, errors.Join(ErrTableOpen, err)
		}

		for _, row := range rows {
			entries = append(entries, coerceRow(row))
		}
	}
	return entries, nil
}

// coerceRow maps a raw row to an Entry. The first two cells must be
// non-empty after trimming; anything else is malformed.
func coerceRow(cells []string) Entry {
	if len(cells) < 2 {
		return Entry{Malformed: true, Reason: "Invalid row format"}
	}

	name := strings.TrimSpace(cells[0])
	email := strings.TrimSpace(cells[1])
	if name == "" || email == "" {
		return Entry{Malformed: true, Reason: "Invalid row format"}
	}

	return Entry{Name: name, Email: email}
}
