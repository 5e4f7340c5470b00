// Package awards reads which known awards the role/coin sheet marks held.
package awards

import (
	"strings"

	"github.com/seaborne/quarterdeck/internal/domain/sheet"
)

// Grant lists the known awards held by one crew member.
type Grant struct {
	Name   string   `json:"name"`
	Awards []string `json:"awards"`
}

// DefaultKnown is the standing award list; config may override it.
func DefaultKnown() []string {
	return []string{
		"Citation of Conduct",
		"Legion of Voyages",
		"Honorable Conduct",
		"Meritorious Service",
		"Admirable Service",
		"Challenge Coin",
	}
}

// negativeMarkers are cell values that explicitly deny an award despite
// the cell being non-empty.
var negativeMarkers = map[string]struct{}{
	"no":    {},
	"n":     {},
	"false": {},
	"0":     {},
	"-":     {},
	"x":     {},
}

// Held reports whether an award cell marks the award as granted: any
// non-empty value that is not an explicit negative marker.
func Held(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return false
	}
	_, negative := negativeMarkers[v]
	return !negative
}

// Normalize scans the role/coin sheet for known-award columns and
// returns one Grant per row naming a known crew member with at least one
// award held. The same first-exact-match name rule as the leaderboard
// normalizer applies; non-crew rows drop silently.
func Normalize(t sheet.RawTable, knownNames, knownAwards []string) []Grant {
	known := make(map[string]struct{}, len(knownNames))
	for _, n := range knownNames {
		known[n] = struct{}{}
	}

	// Bind each known award to its column once, tolerating absent columns.
	type awardCol struct {
		award string
		col   int
	}
	var cols []awardCol
	for _, award := range knownAwards {
		if idx := t.HeaderIndex(award); idx >= 0 {
			cols = append(cols, awardCol{award: award, col: idx})
		}
	}

	var grants []Grant
	for _, row := range t.Rows {
		name, ok := matchName(row, known)
		if !ok {
			continue
		}
		var held []string
		for _, ac := range cols {
			if Held(sheet.CellAt(row, ac.col)) {
				held = append(held, ac.award)
			}
		}
		if len(held) == 0 {
			continue
		}
		grants = append(grants, Grant{Name: name, Awards: held})
	}
	return grants
}

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
