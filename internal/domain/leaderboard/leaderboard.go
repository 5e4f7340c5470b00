// Package leaderboard normalizes voyage/award sheet rows into per-member
// activity counts.
package leaderboard

import (
	"strconv"
	"strings"

	"github.com/seaborne/quarterdeck/internal/domain/sheet"
)

// Entry is one member's aggregate activity counts from the voyage sheet.
type Entry struct {
	Name        string `json:"name"`
	HostCount   int    `json:"host_count"`
	VoyageCount int    `json:"voyage_count"`
}

// Keyword labels matched against header names. The voyage sheet is the
// least stable of the three shapes: columns get renamed, duplicated, and
// relocated, so matching is by substring rather than exact label.
const (
	HostKeyword   = "host"
	VoyageKeyword = "voyage"
)

// MatchesKeyword reports whether a header names a column for the given
// keyword, by case-insensitive substring. This is the one deliberately
// fuzzy rule in the normalization core; keep it here so it stays
// unit-testable in isolation.
func MatchesKeyword(header, keyword string) bool {
	return strings.Contains(strings.ToLower(header), strings.ToLower(keyword))
}

// Normalize converts voyage-sheet rows into entries, one per row whose
// cells contain a known crew name.
//
// Name matching: the first cell whose trimmed value exactly equals a
// known crew name (case-sensitive) names the row. Rows with no match are
// dropped silently; the sheet carries section headers and non-crew rows.
//
// Counts: across every column whose header matches the host or voyage
// keyword, the highest non-negative integer wins. Sheets accumulate
// duplicate count columns (cumulative vs. period); the maximum is taken
// as the most complete figure. Rows with both counts at zero are dropped.
func Normalize(t sheet.RawTable, knownNames []string) []Entry {
	known := make(map[string]struct{}, len(knownNames))
	for _, n := range knownNames {
		known[n] = struct{}{}
	}

	hostCols := keywordColumns(t.Headers, HostKeyword)
	voyageCols := keywordColumns(t.Headers, VoyageKeyword)

	entries := make([]Entry, 0, len(t.Rows))
	for _, row := range t.Rows {
		name, ok := matchName(row, known)
		if !ok {
			continue
		}
		e := Entry{
			Name:        name,
			HostCount:   maxCount(row, hostCols),
			VoyageCount: maxCount(row, voyageCols),
		}
		if e.HostCount == 0 && e.VoyageCount == 0 {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// keywordColumns returns the indices of all headers matching keyword.
func keywordColumns(headers []string, keyword string) []int {
	var cols []int
	for i, h := range headers {
		if MatchesKeyword(h, keyword) {
			cols = append(cols, i)
		}
	}
	return cols
}

// matchName scans cells left to right for the first exact crew-name match.
func matchName(row []string, known map[string]struct{}) (string, bool) {
	for _, cell := range row {
		v := strings.TrimSpace(cell)
		if v == "" {
			continue
		}
		if _, ok := known[v]; ok {
			return v, true
		}
	}
	return "", false
}

// maxCount returns the highest non-negative integer among the given
// columns, 0 when none parse.
func maxCount(row []string, cols []int) int {
	best := 0
	for _, c := range cols {
		v, err := strconv.Atoi(strings.TrimSpace(sheet.CellAt(row, c)))
		if err != nil || v < 0 {
			continue
		}
		if v > best {
			best = v
		}
	}
	return best
}
