// Package spreadsheet extracts recipient rows from Excel workbooks.
//
// Every sheet is read in file order, then every row in order within a sheet.
// The first two cells of a row are the recipient display name and email
// address; extra columns are ignored. Rows whose first two cells cannot be
// coerced to non-empty trimmed strings are yielded as malformed entries
// rather than aborting the extraction — only an unreadable workbook is an
// error. Header rows are not specially detected; they surface downstream as
// invalid email addresses.
package spreadsheet
