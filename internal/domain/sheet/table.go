// Package sheet models raw spreadsheet tables and the column mapping
// that binds semantic roster fields to user-edited column headers.
package sheet

import "strings"

// RawTable is one fetched spreadsheet range: a header row plus data rows.
// Rows may be shorter than the header row; missing trailing cells read as "".
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// Empty reports whether the table has no data rows.
func (t RawTable) Empty() bool {
	return len(t.Rows) == 0
}

// HeaderIndex returns the position of the first header matching name,
// comparing trimmed and case-insensitive. Returns -1 when absent.
func (t RawTable) HeaderIndex(name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, h := range t.Headers {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}

// Cell returns the value of the named column in the given row, or "" when
// the column is unknown or the row is too short. It never panics; sheets
// are user-edited and a missing cell is ordinary, not exceptional.
func (t RawTable) Cell(row int, header string) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	idx := t.HeaderIndex(header)
	if idx < 0 {
		return ""
	}
	return CellAt(t.Rows[row], idx)
}

// CellAt reads a positional cell from a single row, treating an
// out-of-range index as an empty cell.
func CellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
