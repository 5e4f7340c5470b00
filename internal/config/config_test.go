package config_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/seaborne/quarterdeck/internal/config"
	"github.com/seaborne/quarterdeck/internal/domain/rank"
	"github.com/seaborne/quarterdeck/internal/domain/sheet"
)

func TestNew(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := config.New()

		Convey("Then sane defaults are populated", func() {
			So(cfg.Addr, ShouldEqual, ":8080")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.RefreshIntervalSec, ShouldEqual, 300)
			So(cfg.SailingCadenceDays, ShouldEqual, 14)
			So(cfg.HostingCadenceDays, ShouldEqual, 30)
			So(cfg.MaxLeaderboardLimit, ShouldEqual, 100)
			So(cfg.RankTable, ShouldNotBeEmpty)
			So(cfg.KnownAwards, ShouldNotBeEmpty)
		})
	})
}

func TestRankTableParsed(t *testing.T) {
	Convey("Given a config with a rank table", t, func() {
		cfg := config.New()
		cfg.RankTable = map[string]string{
			"PO2":   "junior",
			"CAPT":  "command",
			"ODD":   "flagship", // unknown label
			"BOSUN": "senior",
		}

		Convey("When parsing it for the classifier", func() {
			table := cfg.RankTableParsed()

			Convey("Then labels convert and unknown labels degrade", func() {
				So(table["PO2"], ShouldEqual, rank.TierJunior)
				So(table["CAPT"], ShouldEqual, rank.TierCommand)
				So(table["BOSUN"], ShouldEqual, rank.TierSenior)
				So(table["ODD"], ShouldEqual, rank.TierUnknown)
			})
		})
	})
}

func TestRosterMapping(t *testing.T) {
	Convey("Given a config rebinding a roster column", t, func() {
		cfg := config.New()
		cfg.RosterColumns = map[string]string{
			"name":  "Gamertag",
			"squad": "",
		}

		Convey("When building the mapping", func() {
			m := cfg.RosterMapping()

			Convey("Then the rebinding applies and empty rebindings are ignored", func() {
				header, ok := m.Resolve(sheet.FieldName)
				So(ok, ShouldBeTrue)
				So(header, ShouldEqual, "Gamertag")

				header, ok = m.Resolve(sheet.FieldSquad)
				So(ok, ShouldBeTrue)
				So(header, ShouldEqual, "Squad")
			})
		})
	})
}
