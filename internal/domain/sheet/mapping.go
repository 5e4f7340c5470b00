package sheet

import "strings"

// Field names a semantic roster column independent of how the sheet
// authors happened to label it this month.
type Field string

// Semantic fields recognized across the three sheet shapes.
const (
	FieldName         Field = "name"
	FieldRank         Field = "rank"
	FieldSquad        Field = "squad"
	FieldTimezone     Field = "timezone"
	FieldDiscord      Field = "discord"
	FieldCompliance   Field = "compliance"
	FieldLOAReturn    Field = "loa_return"
	FieldLastVoyage   Field = "last_voyage"
	FieldLastHost     Field = "last_host"
	FieldDaysInactive Field = "days_inactive"
	FieldChatActivity Field = "chat_activity"
)

// Mapping binds semantic fields to header labels for one sheet shape.
// A lookup miss is not an error: columns get renamed and deleted by the
// people who own the sheet, and the normalizer degrades per field.
type Mapping map[Field]string

// Resolve returns the header label bound to field. The second return is
// false when the shape has no binding for it.
func (m Mapping) Resolve(field Field) (string, bool) {
	h, ok := m[field]
	return h, ok
}

// Cell reads the mapped column for field from the given table row,
// returning "" when the binding or the cell is missing.
func (m Mapping) Cell(t RawTable, row int, field Field) string {
	header, ok := m.Resolve(field)
	if !ok {
		return ""
	}
	return t.Cell(row, header)
}

// RosterMapping is the default shape of the crew roster tab.
func RosterMapping() Mapping {
	return Mapping{
		FieldName:         "Name",
		FieldRank:         "Rank",
		FieldSquad:        "Squad",
		FieldTimezone:     "Timezone",
		FieldDiscord:      "Discord",
		FieldCompliance:   "Compliance",
		FieldLOAReturn:    "LOA Return",
		FieldLastVoyage:   "Last Voyage",
		FieldLastHost:     "Last Host",
		FieldDaysInactive: "Days Inactive",
		FieldChatActivity: "Chat Activity",
	}
}

// loaMarkers are the normalized compliance labels that mean a member is
// excused from cadence requirements.
var loaMarkers = map[string]struct{}{
	"loa":              {},
	"on loa":           {},
	"leave":            {},
	"on leave":         {},
	"leave of absence": {},
}

// IsOnLOA reports whether a raw compliance cell marks a leave of absence.
// Total over arbitrary input: trims, lowercases, and matches against the
// fixed marker set plus the "LOA-<n>" label family.
func IsOnLOA(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return false
	}
	if _, ok := loaMarkers[v]; ok {
		return true
	}
	// Sheet authors write tiered labels like "LOA-1" and "LOA 2".
	return strings.HasPrefix(v, "loa-") || strings.HasPrefix(v, "loa ")
}

// placeholderNames are name cells that carry no member: blanks, dashes,
// and header rows the sheet authors repeat mid-data.
var placeholderNames = map[string]struct{}{
	"":     {},
	"-":    {},
	"--":   {},
	"n/a":  {},
	"name": {},
}

// IsPlaceholderName reports whether a raw name cell should skip the row.
func IsPlaceholderName(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	_, ok := placeholderNames[v]
	return ok
}
