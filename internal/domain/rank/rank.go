// Package rank classifies raw rank labels into tiers and answers the
// tier-driven eligibility questions: who may host voyages, who must sail.
package rank

import "strings"

// Tier is the coarse grade a rank code maps to.
type Tier int

// Tiers in ascending order of seniority.
const (
	TierUnknown Tier = iota
	TierRecruit
	TierJunior
	TierSenior
	TierOfficer
	TierCommand
)

// String returns the lowercase tier label used in config files and JSON.
func (t Tier) String() string {
	switch t {
	case TierRecruit:
		return "recruit"
	case TierJunior:
		return "junior"
	case TierSenior:
		return "senior"
	case TierOfficer:
		return "officer"
	case TierCommand:
		return "command"
	default:
		return "unknown"
	}
}

// ParseTier converts a config tier label back to a Tier. Unrecognized
// labels map to TierUnknown rather than failing; the table is user-supplied.
func ParseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recruit":
		return TierRecruit
	case "junior":
		return TierJunior
	case "senior":
		return TierSenior
	case "officer":
		return TierOfficer
	case "command":
		return TierCommand
	default:
		return TierUnknown
	}
}

// Table maps exact rank codes (upper-cased) to tiers.
type Table map[string]Tier

// DefaultTable covers the standing rank structure of the community.
func DefaultTable() Table {
	return Table{
		"SR":   TierRecruit,
		"SN":   TierRecruit,
		"AB":   TierRecruit,
		"PO3":  TierJunior,
		"PO2":  TierJunior,
		"PO1":  TierJunior,
		"CPO":  TierSenior,
		"SCPO": TierSenior,
		"MCPO": TierSenior,
		"MIDN": TierOfficer,
		"ENS":  TierOfficer,
		"LTJG": TierOfficer,
		"LT":   TierOfficer,
		"LCDR": TierCommand,
		"CDR":  TierCommand,
		"CAPT": TierCommand,
		"COMM": TierCommand,
		"ADM":  TierCommand,
	}
}

// Classifier resolves raw rank cells against a Table, with a substring
// fallback for free-text rank cells. The fallback is legacy behavior kept
// for sheets that spell ranks out ("Chief Petty Officer") instead of
// using codes; exact codes always win.
type Classifier struct {
	table Table
}

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithTable replaces the default rank table.
func WithTable(t Table) Option {
	return func(c *Classifier) {
		if len(t) > 0 {
			c.table = t
		}
	}
}

// NewClassifier builds a Classifier with the default table unless overridden.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{table: DefaultTable()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify maps a raw rank cell to a Tier. Never panics; unknown input
// classifies as TierUnknown.
func (c *Classifier) Classify(raw string) Tier {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return TierUnknown
	}
	if tier, ok := c.table[code]; ok {
		return tier
	}
	return classifyFreeText(code)
}

// classifyFreeText is the legacy substring fallback for spelled-out ranks.
// Order matters: "lieutenant commander" must hit the command arm before
// the "lieutenant" officer arm.
func classifyFreeText(upper string) Tier {
	v := strings.ToLower(upper)
	switch {
	case strings.Contains(v, "admiral"),
		strings.Contains(v, "commodore"),
		strings.Contains(v, "captain"),
		strings.Contains(v, "commander"):
		return TierCommand
	case strings.Contains(v, "lieutenant"),
		strings.Contains(v, "ensign"),
		strings.Contains(v, "midship"):
		return TierOfficer
	case strings.Contains(v, "chief"):
		return TierSenior
	case strings.Contains(v, "petty"):
		return TierJunior
	case strings.Contains(v, "seaman"),
		strings.Contains(v, "recruit"),
		strings.Contains(v, "deckhand"),
		strings.Contains(v, "able"):
		return TierRecruit
	default:
		return TierUnknown
	}
}

// CanHost reports whether the rank's tier is eligible to host voyages.
// Hosting opens at the senior NCO grade.
func (c *Classifier) CanHost(raw string) bool {
	return c.Classify(raw) >= TierSenior
}

// MustSail reports whether the rank's tier carries a sailing requirement.
// Recruits and junior NCOs must sail; unknown ranks are held to the
// requirement as well, so a typo'd rank cell never silently exempts anyone.
func (c *Classifier) MustSail(raw string) bool {
	return c.Classify(raw) <= TierJunior
}
