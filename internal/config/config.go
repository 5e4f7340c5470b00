// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env on top.
// - External errors are wrapped via this package's sentinel errors.
package config

import (
	"github.com/seaborne/quarterdeck/internal/domain/awards"
	"github.com/seaborne/quarterdeck/internal/domain/rank"
	"github.com/seaborne/quarterdeck/internal/domain/sheet"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SpreadsheetID identifies the Google Sheet backing the roster.
	SpreadsheetID string `koanf:"spreadsheet_id"`

	// CredentialsFile points at the service-account JSON key.
	CredentialsFile string `koanf:"credentials_file"`

	// Ranges name the three tabs fetched per refresh, in A1 notation.
	RosterRange string `koanf:"roster_range"`
	VoyageRange string `koanf:"voyage_range"`
	AwardRange  string `koanf:"award_range"`

	// RefreshIntervalSec is the timer-driven refresh cadence.
	RefreshIntervalSec int `koanf:"refresh_interval_sec"`

	// Cadence windows (days) and period activity thresholds.
	SailingCadenceDays int `koanf:"sailing_cadence_days"`
	HostingCadenceDays int `koanf:"hosting_cadence_days"`
	MinVoyages         int `koanf:"min_voyages"`
	MinHosts           int `koanf:"min_hosts"`

	// MaxLeaderboardLimit caps GET /api/leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// RankTable maps rank codes to tier labels (recruit, junior, senior,
	// officer, command). Supplied at start, read-only thereafter.
	RankTable map[string]string `koanf:"rank_table"`

	// KnownAwards lists the award columns read from the role/coin tab.
	KnownAwards []string `koanf:"known_awards"`

	// RosterColumns rebinds semantic roster fields to header labels when
	// the sheet authors rename columns.
	RosterColumns map[string]string `koanf:"roster_columns"`
}

// New creates a Config with defaults.
func New() *Config {
	c := &Config{
		LogLevel:            "info",
		Addr:                ":8080",
		RosterRange:         "Roster!A1:Z",
		VoyageRange:         "Voyages!A1:Z",
		AwardRange:          "Awards!A1:Z",
		RefreshIntervalSec:  300,
		SailingCadenceDays:  14,
		HostingCadenceDays:  30,
		MinVoyages:          1,
		MinHosts:            1,
		MaxLeaderboardLimit: 100,
		RankTable:           defaultRankTable(),
		KnownAwards:         awards.DefaultKnown(),
	}
	return c
}

func defaultRankTable() map[string]string {
	out := make(map[string]string)
	for code, tier := range rank.DefaultTable() {
		out[code] = tier.String()
	}
	return out
}

// RankTableParsed converts the configured code → tier-label table into
// the classifier's form. Unknown labels land on TierUnknown rather than
// failing the load; the table is operator-edited.
func (c *Config) RankTableParsed() rank.Table {
	t := make(rank.Table, len(c.RankTable))
	for code, label := range c.RankTable {
		t[code] = rank.ParseTier(label)
	}
	return t
}

// RosterMapping returns the default roster column mapping with any
// configured rebindings applied.
func (c *Config) RosterMapping() sheet.Mapping {
	m := sheet.RosterMapping()
	for field, header := range c.RosterColumns {
		if header != "" {
			m[sheet.Field(field)] = header
		}
	}
	return m
}
