package roster

import (
	"strconv"
	"strings"
	"time"

	"github.com/seaborne/quarterdeck/internal/domain/rank"
	"github.com/seaborne/quarterdeck/internal/domain/sheet"
)

// Chat activity bounds and compliance cadence defaults (days).
const (
	maxChatActivity           = 5
	defaultSailingCadenceDays = 14
	defaultHostingCadenceDays = 30
)

// Normalizer converts raw roster rows into CrewMember records. It is a
// pure transform: no state survives between calls and no input, however
// mangled, makes it return an error. A bad cell degrades that one field.
type Normalizer struct {
	mapping        sheet.Mapping
	classifier     *rank.Classifier
	now            func() time.Time
	sailingCadence int
	hostingCadence int
}

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithMapping replaces the default roster column mapping.
func WithMapping(m sheet.Mapping) Option {
	return func(n *Normalizer) {
		if len(m) > 0 {
			n.mapping = m
		}
	}
}

// WithClassifier sets the rank classifier used for tier eligibility.
func WithClassifier(c *rank.Classifier) Option {
	return func(n *Normalizer) {
		if c != nil {
			n.classifier = c
		}
	}
}

// WithNow fixes the clock used for cadence windows. Tests pin this.
func WithNow(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// WithSailingCadence sets the sailing window in days.
func WithSailingCadence(days int) Option {
	return func(n *Normalizer) {
		if days > 0 {
			n.sailingCadence = days
		}
	}
}

// WithHostingCadence sets the hosting window in days.
func WithHostingCadence(days int) Option {
	return func(n *Normalizer) {
		if days > 0 {
			n.hostingCadence = days
		}
	}
}

// NewNormalizer builds a Normalizer with default mapping, classifier,
// clock, and cadence windows.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		mapping:        sheet.RosterMapping(),
		classifier:     rank.NewClassifier(),
		now:            time.Now,
		sailingCadence: defaultSailingCadenceDays,
		hostingCadence: defaultHostingCadenceDays,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize produces one CrewMember per data row whose name cell is a
// real name. Placeholder rows (blank, "-", repeated "Name" headers) are
// skipped. Source order is preserved and duplicates are kept.
func (n *Normalizer) Normalize(t sheet.RawTable) []CrewMember {
	members := make([]CrewMember, 0, len(t.Rows))
	for i := range t.Rows {
		if m, ok := n.NormalizeRow(t, i); ok {
			members = append(members, m)
		}
	}
	return members
}

// NormalizeRow converts a single row. The second return is false when
// the row carries no member.
func (n *Normalizer) NormalizeRow(t sheet.RawTable, row int) (CrewMember, bool) {
	name := strings.TrimSpace(n.mapping.Cell(t, row, sheet.FieldName))
	if sheet.IsPlaceholderName(name) {
		return CrewMember{}, false
	}

	rawRank := strings.TrimSpace(n.mapping.Cell(t, row, sheet.FieldRank))
	squad := strings.TrimSpace(n.mapping.Cell(t, row, sheet.FieldSquad))
	if squad == "" {
		squad = DefaultSquad
	}
	status := strings.TrimSpace(n.mapping.Cell(t, row, sheet.FieldCompliance))

	tier := n.classifier.Classify(rawRank)
	loa := sheet.IsOnLOA(status)
	mustSail := n.classifier.MustSail(rawRank)
	canHost := n.classifier.CanHost(rawRank)

	lastVoyage, voyageOK := ParseDate(n.mapping.Cell(t, row, sheet.FieldLastVoyage))
	lastHost, hostOK := ParseDate(n.mapping.Cell(t, row, sheet.FieldLastHost))
	daysInactive := parseCount(n.mapping.Cell(t, row, sheet.FieldDaysInactive))

	m := CrewMember{
		Name:             name,
		Rank:             rawRank,
		RankTier:         tier.String(),
		Squad:            squad,
		Timezone:         strings.TrimSpace(n.mapping.Cell(t, row, sheet.FieldTimezone)),
		DiscordUsername:  strings.TrimSpace(n.mapping.Cell(t, row, sheet.FieldDiscord)),
		LOAStatus:        loa,
		ComplianceStatus: status,
		LOAReturnDate:    strings.TrimSpace(n.mapping.Cell(t, row, sheet.FieldLOAReturn)),
		DaysInactive:     daysInactive,
		MustSailRank:     mustSail,
		CanHostRank:      canHost,
		ChatActivity:     ParseStars(n.mapping.Cell(t, row, sheet.FieldChatActivity)),
	}
	if voyageOK {
		m.LastVoyageDate = lastVoyage.Format("2006-01-02")
	}
	if hostOK {
		m.LastHostDate = lastHost.Format("2006-01-02")
	}

	m.SailingCompliant = n.sailingCompliant(m, lastVoyage, voyageOK)
	m.HostingCompliant = n.hostingCompliant(m, lastHost, hostOK)
	return m, true
}

// sailingCompliant applies the sailing cadence against whatever activity
// evidence the row carries. LOA exempts; ranks without a sailing
// requirement pass; with no evidence at all the member gets the benefit
// of the doubt (the sheet may simply not track dates).
func (n *Normalizer) sailingCompliant(m CrewMember, lastVoyage time.Time, dated bool) bool {
	if m.LOAStatus || !m.MustSailRank {
		return true
	}
	if dated {
		return n.withinDays(lastVoyage, n.sailingCadence)
	}
	if m.DaysInactive > 0 {
		return m.DaysInactive <= n.sailingCadence
	}
	return true
}

// hostingCompliant mirrors sailingCompliant for hosting-capable ranks.
func (n *Normalizer) hostingCompliant(m CrewMember, lastHost time.Time, dated bool) bool {
	if m.LOAStatus || !m.CanHostRank {
		return true
	}
	if dated {
		return n.withinDays(lastHost, n.hostingCadence)
	}
	if m.DaysInactive > 0 {
		return m.DaysInactive <= n.hostingCadence
	}
	return true
}

func (n *Normalizer) withinDays(t time.Time, days int) bool {
	return !t.Before(n.now().AddDate(0, 0, -days))
}

// starGlyphs are the characters counted as one filled star each.
var starGlyphs = map[rune]struct{}{
	'★': {},
	'⭐': {},
	'*': {},
}

// ParseStars converts a chat-activity cell to an integer rating in
// [0, 5]. Sheets carry either literal star glyphs ("★★★") or a numeric
// string ("4"); anything else reads as 0.
func ParseStars(raw string) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0
	}
	glyphs := 0
	for _, r := range v {
		if _, ok := starGlyphs[r]; ok {
			glyphs++
		}
	}
	if glyphs > 0 {
		return clampStars(glyphs)
	}
	count, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return clampStars(count)
}

func clampStars(v int) int {
	if v < 0 {
		return 0
	}
	if v > maxChatActivity {
		return maxChatActivity
	}
	return v
}

// dateLayouts are tried in order by ParseDate. Sheet authors mix ISO
// dates, US slashes, and spelled-out forms within the same column.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"01-02-2006",
	time.RFC3339,
}

// ParseDate leniently parses a date-like cell. The second return is
// false when no known layout matches; callers keep the field empty and
// fall back to the days-inactive counter.
func ParseDate(raw string) (time.Time, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseCount reads a non-negative integer cell, treating anything else
// as zero.
func parseCount(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
