package spreadsheet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/spreadsheet"
)

func writeWorkbook(t *testing.T, sheets map[string][][]string, order []string) string {
	t.Helper()

	f := excelize.NewFile()
	for i, sheet := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet))
		} else {
			_, err := f.NewSheet(sheet)
			require.NoError(t, err)
		}
		for rowIdx, row := range sheets[sheet] {
			for colIdx, cell := range row {
				cellRef, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sheet, cellRef, cell))
			}
		}
	}

	path := filepath.Join(t.TempDir(), "recipients.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestExtractRows(t *testing.T) {
	t.Parallel()

	t.Run("yields rows across sheets in file order", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, map[string][][]string{
			"First":  {{"Alice", "alice@example.com"}, {"Bob", "bob@example.com"}},
			"Second": {{"Carol", "carol@example.com"}},
		}, []string{"First", "Second"})

		entries, err := spreadsheet.ExtractRows(path)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		require.Equal(t, "alice@example.com", entries[0].Email)
		require.Equal(t, "bob@example.com", entries[1].Email)
		require.Equal(t, "carol@example.com", entries[2].Email)
	})

	t.Run("trims whitespace and ignores extra columns", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, map[string][][]string{
			"Sheet1": {{"  Alice  ", " alice@example.com ", "ignored", "also ignored"}},
		}, []string{"Sheet1"})

		entries, err := spreadsheet.ExtractRows(path)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "Alice", entries[0].Name)
		require.Equal(t, "alice@example.com", entries[0].Email)
		require.False(t, entries[0].Malformed)
	})

	t.Run("marks short or empty rows malformed without aborting", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, map[string][][]string{
			"Sheet1": {
				{"only a name"},
				{"  ", "someone@example.com"},
				{"Dave", "dave@example.com"},
			},
		}, []string{"Sheet1"})

		entries, err := spreadsheet.ExtractRows(path)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		require.True(t, entries[0].Malformed)
		require.True(t, entries[1].Malformed)
		require.False(t, entries[2].Malformed)
		require.Equal(t, "dave@example.com", entries[2].Email)
	})

	t.Run("re-reading an unchanged file yields the same sequence", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, map[string][][]string{
			"Sheet1": {{"Alice", "alice@example.com"}, {"Bob", "bob@example.com"}},
		}, []string{"Sheet1"})

		first, err := spreadsheet.ExtractRows(path)
		require.NoError(t, err)
		second, err := spreadsheet.ExtractRows(path)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("returns ErrTableOpen for an unparseable file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "corrupt.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("this is not a workbook"), 0o644))

		_, err := spreadsheet.ExtractRows(path)
		require.ErrorIs(t, err, spreadsheet.ErrTableOpen)
	})

	t.Run("returns ErrTableOpen for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := spreadsheet.ExtractRows(filepath.Join(t.TempDir(), "nope.xlsx"))
		require.ErrorIs(t, err, spreadsheet.ErrTableOpen)
	})
}
