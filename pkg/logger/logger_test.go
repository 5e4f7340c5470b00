package logger_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/seaborne/quarterdeck/pkg/logger"
)

func TestLogging(t *testing.T) {
	ctx := context.Background()

	Convey("Given an initialized logger", t, func() {
		var buf bytes.Buffer
		So(logger.InitWithWriter(&buf), ShouldBeNil)
		log := logger.Get()

		Convey("When logging at info with fields", func() {
			log.Info(ctx, "snapshot refreshed",
				logger.String("snapshot_id", "abc"),
				logger.Int("crew", 42),
			)

			Convey("Then the record carries message and fields", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "snapshot refreshed")
				So(out, ShouldContainSubstring, "snapshot_id=abc")
				So(out, ShouldContainSubstring, "crew=42")
			})
		})

		Convey("When logging at debug under the default level", func() {
			log.Debug(ctx, "invisible")

			Convey("Then nothing is emitted", func() {
				So(buf.String(), ShouldNotContainSubstring, "invisible")
			})
		})

		Convey("When the level is lowered to debug", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			log.Debug(ctx, "now visible")
			So(buf.String(), ShouldContainSubstring, "now visible")
		})

		Convey("When using a named child", func() {
			logger.Named("fetcher").Warn(ctx, "retrying", logger.String("range", "Roster!A1:Z"))

			Convey("Then the group prefixes its fields", func() {
				So(buf.String(), ShouldContainSubstring, "fetcher.range=Roster!A1:Z")
			})
		})

		Convey("When logging an error field", func() {
			log.Error(ctx, "fetch failed", logger.Error(errors.New("boom")))
			So(buf.String(), ShouldContainSubstring, "error=boom")
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given the level parser", t, func() {
		So(logger.InitWithWriter(&bytes.Buffer{}), ShouldBeNil)

		Convey("When applying known names", func() {
			for _, name := range []string{"debug", "info", "WARN", "warning", "Error", ""} {
				So(logger.SetLevelString(name), ShouldBeNil)
			}
		})

		Convey("When applying an unknown name", func() {
			err := logger.SetLevelString("loud")
			So(errors.Is(err, logger.ErrUnknownLevel), ShouldBeTrue)
		})
	})
}
