// Package enrich overlays leaderboard activity counts onto crew records.
package enrich

import (
	"github.com/seaborne/quarterdeck/internal/domain/leaderboard"
	"github.com/seaborne/quarterdeck/internal/domain/roster"
)

// Count thresholds a member must meet within the tracked period.
const (
	defaultMinVoyages = 1
	defaultMinHosts   = 1
)

// Enricher recomputes compliance flags from leaderboard counts where an
// entry exists for the member. This is an overlay, never a replacement:
// members with no leaderboard entry keep their sheet-derived values, and
// fields the leaderboard does not cover are preserved untouched.
type Enricher struct {
	minVoyages int
	minHosts   int
}

// Option applies a configuration option to the Enricher.
type Option func(*Enricher)

// WithMinVoyages sets the voyage count required for sailing compliance.
func WithMinVoyages(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.minVoyages = n
		}
	}
}

// WithMinHosts sets the host count required for hosting compliance.
func WithMinHosts(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.minHosts = n
		}
	}
}

// New builds an Enricher with default thresholds.
func New(opts ...Option) *Enricher {
	e := &Enricher{
		minVoyages: defaultMinVoyages,
		minHosts:   defaultMinHosts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply returns the member with compliance recomputed from the first
// leaderboard entry whose name equals the member's name exactly.
//
// First match in array order is deliberate: the sheet can carry duplicate
// rows for one name, and the choice must be deterministic run to run
// rather than depending on which duplicate happens to be seen last.
// No fuzzy matching; a misspelled leaderboard name simply does not land.
func (e *Enricher) Apply(m roster.CrewMember, entries []leaderboard.Entry) roster.CrewMember {
	entry, ok := lookup(m.Name, entries)
	if !ok {
		return m
	}

	// Duty flags gate the overlay the same way they gate normalization:
	// a rank with no sailing requirement stays exempt no matter what the
	// voyage sheet says about them.
	if !m.LOAStatus {
		m.SailingCompliant = !m.MustSailRank || entry.VoyageCount >= e.minVoyages
		m.HostingCompliant = !m.CanHostRank || entry.HostCount >= e.minHosts
	}
	// Recorded activity in the period supersedes the sheet's stale
	// inactivity counter.
	if entry.VoyageCount > 0 || entry.HostCount > 0 {
		m.DaysInactive = 0
	}
	return m
}

// ApplyAll enriches every member against the same entry list.
func (e *Enricher) ApplyAll(members []roster.CrewMember, entries []leaderboard.Entry) []roster.CrewMember {
	out := make([]roster.CrewMember, len(members))
	for i, m := range members {
		out[i] = e.Apply(m, entries)
	}
	return out
}

func lookup(name string, entries []leaderboard.Entry) (leaderboard.Entry, bool) {
	for _, entry := range entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return leaderboard.Entry{}, false
}
