// Package aggregate holds the pure reducers behind the dashboard panels.
package aggregate

import (
	"math"
	"sort"

	"github.com/seaborne/quarterdeck/internal/domain/leaderboard"
	"github.com/seaborne/quarterdeck/internal/domain/roster"
)

// SquadCount is the per-squad slice of the compliance breakdown.
type SquadCount struct {
	Squad     string `json:"squad"`
	Total     int    `json:"total"`
	Compliant int    `json:"compliant"`
	OnLOA     int    `json:"on_loa"`
}

// Summary is the compliance panel payload.
type Summary struct {
	Total            int          `json:"total"`
	SailingCompliant int          `json:"sailing_compliant"`
	HostingCompliant int          `json:"hosting_compliant"`
	OnLOA            int          `json:"on_loa"`
	Percent          int          `json:"percent"`
	Squads           []SquadCount `json:"squads"`
}

// Compliant reports whether a member meets both cadence requirements.
func Compliant(m roster.CrewMember) bool {
	return m.SailingCompliant && m.HostingCompliant
}

// CompliancePercent returns the share of fully compliant members as a
// whole percentage, rounded half-up. 0 for an empty roster.
func CompliancePercent(members []roster.CrewMember) int {
	if len(members) == 0 {
		return 0
	}
	compliant := 0
	for _, m := range members {
		if Compliant(m) {
			compliant++
		}
	}
	return int(math.Floor(float64(compliant)/float64(len(members))*100 + 0.5))
}

// SquadBreakdown counts members per squad, squads ordered by first
// occurrence in the roster.
func SquadBreakdown(members []roster.CrewMember) []SquadCount {
	index := make(map[string]int)
	var squads []SquadCount
	for _, m := range members {
		i, ok := index[m.Squad]
		if !ok {
			i = len(squads)
			index[m.Squad] = i
			squads = append(squads, SquadCount{Squad: m.Squad})
		}
		squads[i].Total++
		if Compliant(m) {
			squads[i].Compliant++
		}
		if m.LOAStatus {
			squads[i].OnLOA++
		}
	}
	return squads
}

// Summarize builds the full compliance panel from a roster.
func Summarize(members []roster.CrewMember) Summary {
	s := Summary{
		Total:   len(members),
		Percent: CompliancePercent(members),
		Squads:  SquadBreakdown(members),
	}
	for _, m := range members {
		if m.SailingCompliant {
			s.SailingCompliant++
		}
		if m.HostingCompliant {
			s.HostingCompliant++
		}
		if m.LOAStatus {
			s.OnLOA++
		}
	}
	return s
}

// Rankings is the leaderboard panel payload.
type Rankings struct {
	TopHosts    []leaderboard.Entry `json:"top_hosts"`
	TopVoyagers []leaderboard.Entry `json:"top_voyagers"`
}

// Rank builds both leaderboard rankings, capped at n entries each.
func Rank(entries []leaderboard.Entry, n int) Rankings {
	return Rankings{
		TopHosts:    TopHosts(entries, n),
		TopVoyagers: TopVoyagers(entries, n),
	}
}

// TopHosts returns up to n entries ranked by host count descending.
// The sort is stable: equal counts keep their source order, so rankings
// do not shuffle run to run.
func TopHosts(entries []leaderboard.Entry, n int) []leaderboard.Entry {
	return topBy(entries, n, func(e leaderboard.Entry) int { return e.HostCount })
}

// TopVoyagers returns up to n entries ranked by voyage count descending.
func TopVoyagers(entries []leaderboard.Entry, n int) []leaderboard.Entry {
	return topBy(entries, n, func(e leaderboard.Entry) int { return e.VoyageCount })
}

func topBy(entries []leaderboard.Entry, n int, count func(leaderboard.Entry) int) []leaderboard.Entry {
	if n <= 0 {
		return nil
	}
	ranked := make([]leaderboard.Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return count(ranked[i]) > count(ranked[j])
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
