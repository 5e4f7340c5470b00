package app_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/seaborne/quarterdeck/internal/app"
	"github.com/seaborne/quarterdeck/internal/domain/roster"
	"github.com/seaborne/quarterdeck/internal/domain/sheet"
	"github.com/seaborne/quarterdeck/pkg/logger"
)

// fakeFetcher serves canned tables per range and injects failures.
type fakeFetcher struct {
	tables map[string]sheet.RawTable
	fail   map[string]error
	calls  int
}

func (f *fakeFetcher) FetchTable(_ context.Context, readRange string) (sheet.RawTable, error) {
	f.calls++
	if err, ok := f.fail[readRange]; ok {
		return sheet.RawTable{}, err
	}
	t, ok := f.tables[readRange]
	if !ok {
		return sheet.RawTable{}, errors.New("unknown range")
	}
	return t, nil
}

func rosterTable() sheet.RawTable {
	return sheet.RawTable{
		Headers: []string{"Rank", "Name", "Squad", "Compliance"},
		Rows: [][]string{
			{"PO2", "Jet", "Shade Squad", "Active Duty"},
			{"CPO", "Marlow", "Dagger Squad", "Active Duty"},
			{"PO2", "-", "Shade Squad", "Active Duty"},
			{"SN", "Pax", "", "LOA-1"},
		},
	}
}

func voyageTable() sheet.RawTable {
	return sheet.RawTable{
		Headers: []string{"Name", "Voyages", "Host Count"},
		Rows: [][]string{
			{"Jet", "3", "0"},
			{"Marlow", "0", "4"},
			{"Nobody", "9", "9"},
		},
	}
}

func newService(f *fakeFetcher, opts ...app.Option) *app.Service {
	_ = logger.InitWithWriter(io.Discard)
	base := []app.Option{
		app.WithFetcher(f),
		app.WithLogger(logger.Get()),
		app.WithRanges("roster", "voyages", ""),
		app.WithNormalizer(roster.NewNormalizer(roster.WithNow(time.Now))),
	}
	return app.New(append(base, opts...)...)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with healthy tabs", t, func() {
		f := &fakeFetcher{tables: map[string]sheet.RawTable{
			"roster":  rosterTable(),
			"voyages": voyageTable(),
		}}
		svc := newService(f)

		Convey("When refreshing", func() {
			err := svc.Refresh(ctx)
			So(err, ShouldBeNil)

			Convey("Then the snapshot holds normalized, enriched crew", func() {
				crew, ok := svc.Crew(ctx)
				So(ok, ShouldBeTrue)
				So(crew, ShouldHaveLength, 3) // placeholder "-" row dropped
				So(crew[0].Name, ShouldEqual, "Jet")
				So(crew[0].SailingCompliant, ShouldBeTrue)
				So(crew[1].Name, ShouldEqual, "Marlow")
				So(crew[1].HostingCompliant, ShouldBeTrue)
				// Hosting-only CPO: no sailing duty, zero voyages on the
				// leaderboard must not revoke the exemption.
				So(crew[1].SailingCompliant, ShouldBeTrue)
				So(crew[2].Squad, ShouldEqual, roster.DefaultSquad)
			})

			Convey("Then non-crew leaderboard rows were dropped", func() {
				rankings, ok := svc.Leaderboard(ctx, 10)
				So(ok, ShouldBeTrue)
				So(rankings.TopHosts, ShouldHaveLength, 2)
				So(rankings.TopHosts[0].Name, ShouldEqual, "Marlow")
				So(rankings.TopVoyagers[0].Name, ShouldEqual, "Jet")
			})

			Convey("Then the compliance summary is derived", func() {
				summary, ok := svc.Compliance(ctx)
				So(ok, ShouldBeTrue)
				So(summary.Total, ShouldEqual, 3)
				So(summary.OnLOA, ShouldEqual, 1)
				So(summary.Percent, ShouldEqual, 100)
			})

			Convey("Then squads keep first-appearance order", func() {
				squads, ok := svc.Squads(ctx)
				So(ok, ShouldBeTrue)
				So(squads, ShouldHaveLength, 3)
				So(squads[0].Squad, ShouldEqual, "Shade Squad")
				So(squads[1].Squad, ShouldEqual, "Dagger Squad")
				So(squads[2].Squad, ShouldEqual, roster.DefaultSquad)
			})
		})
	})

	Convey("Given a roster tab that fails to fetch", t, func() {
		f := &fakeFetcher{
			tables: map[string]sheet.RawTable{"voyages": voyageTable()},
			fail:   map[string]error{"roster": errors.New("boom")},
		}
		svc := newService(f)

		Convey("When refreshing", func() {
			err := svc.Refresh(ctx)

			Convey("Then the refresh fails and no snapshot appears", func() {
				So(err, ShouldNotBeNil)
				_, ok := svc.Crew(ctx)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When a previous snapshot exists", func() {
			f.fail = nil
			f.tables["roster"] = rosterTable()
			So(svc.Refresh(ctx), ShouldBeNil)

			f.fail = map[string]error{"roster": errors.New("boom")}
			err := svc.Refresh(ctx)

			Convey("Then the old snapshot stays visible", func() {
				So(err, ShouldNotBeNil)
				crew, ok := svc.Crew(ctx)
				So(ok, ShouldBeTrue)
				So(crew, ShouldHaveLength, 3)
			})
		})
	})

	Convey("Given a voyage tab that fails to fetch", t, func() {
		f := &fakeFetcher{
			tables: map[string]sheet.RawTable{"roster": rosterTable()},
			fail:   map[string]error{"voyages": errors.New("boom")},
		}
		svc := newService(f)

		Convey("When refreshing", func() {
			err := svc.Refresh(ctx)

			Convey("Then the roster snapshot still lands, without the overlay", func() {
				So(err, ShouldBeNil)
				crew, ok := svc.Crew(ctx)
				So(ok, ShouldBeTrue)
				So(crew, ShouldHaveLength, 3)

				rankings, ok := svc.Leaderboard(ctx, 10)
				So(ok, ShouldBeTrue)
				So(rankings.TopHosts, ShouldBeEmpty)
			})
		})
	})
}

func TestMemberLookup(t *testing.T) {
	ctx := context.Background()

	Convey("Given a refreshed service", t, func() {
		f := &fakeFetcher{tables: map[string]sheet.RawTable{
			"roster": {
				Headers: []string{"Name", "Rank"},
				Rows: [][]string{
					{"Jet", "PO2"},
					{"Jet", "CPO"}, // duplicate row, kept on purpose
					{"Marlow", "SN"},
				},
			},
		}}
		svc := newService(f, app.WithRanges("roster", "", ""))
		So(svc.Refresh(ctx), ShouldBeNil)

		Convey("When looking up a duplicated name", func() {
			records, err := svc.Member(ctx, "Jet")

			Convey("Then every record comes back in source order", func() {
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 2)
				So(records[0].Rank, ShouldEqual, "PO2")
				So(records[1].Rank, ShouldEqual, "CPO")
			})
		})

		Convey("When looking up an unknown name", func() {
			_, err := svc.Member(ctx, "Ghost")
			So(errors.Is(err, app.ErrMemberNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a service with no snapshot yet", t, func() {
		svc := newService(&fakeFetcher{})

		Convey("When looking up any name", func() {
			_, err := svc.Member(context.Background(), "Jet")
			So(errors.Is(err, app.ErrNoSnapshot), ShouldBeTrue)
		})
	})
}

func TestStartStop(t *testing.T) {
	Convey("Given a service without a fetcher", t, func() {
		_ = logger.InitWithWriter(io.Discard)
		svc := app.New(app.WithLogger(logger.Get()))

		Convey("When starting", func() {
			err := svc.Start(context.Background())
			So(errors.Is(err, app.ErrNoFetcher), ShouldBeTrue)
		})
	})

	Convey("Given a configured service", t, func() {
		f := &fakeFetcher{tables: map[string]sheet.RawTable{
			"roster":  rosterTable(),
			"voyages": voyageTable(),
		}}
		svc := newService(f, app.WithRefreshInterval(time.Hour))

		Convey("When starting and stopping", func() {
			err := svc.Start(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the initial refresh already produced a snapshot", func() {
				_, ok := svc.Crew(context.Background())
				So(ok, ShouldBeTrue)

				stats := svc.GetStats()
				So(stats["refresh_count"], ShouldEqual, 1)
				So(stats["started"], ShouldEqual, true)
			})

			svc.Stop()
		})
	})
}
