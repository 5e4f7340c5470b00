package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/seaborne/quarterdeck/internal/config"
)

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		t.Setenv("QD_CONFIG", "")
		// t.Setenv persists across Convey leaf traversals; scrub the vars
		// sibling branches set so each leaf really starts clean.
		for _, k := range []string{"QD_ADDR", "QD_SPREADSHEET_ID", "QD_SAILING_CADENCE_DAYS", "QD_REFRESH_INTERVAL_SEC"} {
			t.Setenv(k, "")
			os.Unsetenv(k)
		}

		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then defaults come back", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.RosterRange, ShouldEqual, "Roster!A1:Z")
			})
		})

		Convey("When env vars override fields", func() {
			t.Setenv("QD_ADDR", ":9999")
			t.Setenv("QD_SPREADSHEET_ID", "sheet-123")
			t.Setenv("QD_SAILING_CADENCE_DAYS", "7")

			cfg, err := config.Load(context.Background())

			Convey("Then the env layer wins over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9999")
				So(cfg.SpreadsheetID, ShouldEqual, "sheet-123")
				So(cfg.SailingCadenceDays, ShouldEqual, 7)
			})
		})

		Convey("When a YAML file is layered under env", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "qd.yaml")
			body := []byte("addr: \":7070\"\nspreadsheet_id: file-sheet\nmin_voyages: 2\n")
			So(os.WriteFile(path, body, 0o600), ShouldBeNil)

			t.Setenv("QD_CONFIG", path)
			t.Setenv("QD_SPREADSHEET_ID", "env-sheet")

			cfg, err := config.Load(context.Background())

			Convey("Then file beats defaults and env beats file", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.SpreadsheetID, ShouldEqual, "env-sheet")
				So(cfg.MinVoyages, ShouldEqual, 2)
			})
		})

		Convey("When the config file is missing", func() {
			t.Setenv("QD_CONFIG", "/does/not/exist.yaml")

			_, err := config.Load(context.Background())

			Convey("Then the load fails with the load sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
			})
		})

		Convey("When validation fails", func() {
			t.Setenv("QD_REFRESH_INTERVAL_SEC", "0")

			_, err := config.Load(context.Background())

			Convey("Then the invalid-config sentinel surfaces", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
