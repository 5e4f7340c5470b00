package rank_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/seaborne/quarterdeck/internal/domain/rank"
)

func TestClassify(t *testing.T) {
	Convey("Given a classifier with the default table", t, func() {
		c := rank.NewClassifier()

		Convey("When classifying exact rank codes", func() {
			So(c.Classify("PO2"), ShouldEqual, rank.TierJunior)
			So(c.Classify("CPO"), ShouldEqual, rank.TierSenior)
			So(c.Classify("CAPT"), ShouldEqual, rank.TierCommand)
			So(c.Classify("SN"), ShouldEqual, rank.TierRecruit)
		})

		Convey("When codes arrive untrimmed or lowercased", func() {
			So(c.Classify("  po2  "), ShouldEqual, rank.TierJunior)
			So(c.Classify("capt"), ShouldEqual, rank.TierCommand)
		})

		Convey("When classifying free-text ranks via the legacy fallback", func() {
			So(c.Classify("Chief Petty Officer"), ShouldEqual, rank.TierSenior)
			So(c.Classify("Petty Officer 2nd Class"), ShouldEqual, rank.TierJunior)
			So(c.Classify("Midshipman"), ShouldEqual, rank.TierOfficer)
			So(c.Classify("Seaman Recruit"), ShouldEqual, rank.TierRecruit)

			Convey("Then 'Lieutenant Commander' lands on command, not officer", func() {
				So(c.Classify("Lieutenant Commander"), ShouldEqual, rank.TierCommand)
			})
		})

		Convey("When input is unknown, empty, or non-ASCII", func() {
			So(c.Classify(""), ShouldEqual, rank.TierUnknown)
			So(c.Classify("???"), ShouldEqual, rank.TierUnknown)
			So(c.Classify("提督"), ShouldEqual, rank.TierUnknown)
		})
	})

	Convey("Given a classifier with a custom table", t, func() {
		c := rank.NewClassifier(rank.WithTable(rank.Table{"BOSUN": rank.TierSenior}))

		Convey("Then the custom code classifies and defaults are gone", func() {
			So(c.Classify("BOSUN"), ShouldEqual, rank.TierSenior)
			So(c.Classify("PO2"), ShouldEqual, rank.TierUnknown)
		})
	})
}

func TestEligibility(t *testing.T) {
	Convey("Given the default classifier", t, func() {
		c := rank.NewClassifier()

		Convey("When checking hosting eligibility", func() {
			So(c.CanHost("CPO"), ShouldBeTrue)
			So(c.CanHost("CAPT"), ShouldBeTrue)
			So(c.CanHost("PO2"), ShouldBeFalse)
			So(c.CanHost(""), ShouldBeFalse)
		})

		Convey("When checking the sailing requirement", func() {
			So(c.MustSail("SN"), ShouldBeTrue)
			So(c.MustSail("PO1"), ShouldBeTrue)
			So(c.MustSail("CPO"), ShouldBeFalse)

			Convey("Then an unknown rank is still held to it", func() {
				So(c.MustSail("garbled"), ShouldBeTrue)
			})
		})
	})
}

func TestParseTier(t *testing.T) {
	Convey("Given tier labels", t, func() {
		Convey("Then labels round-trip through String and ParseTier", func() {
			for _, tier := range []rank.Tier{
				rank.TierRecruit, rank.TierJunior, rank.TierSenior,
				rank.TierOfficer, rank.TierCommand,
			} {
				So(rank.ParseTier(tier.String()), ShouldEqual, tier)
			}
		})

		Convey("Then unknown labels map to TierUnknown", func() {
			So(rank.ParseTier("flagship"), ShouldEqual, rank.TierUnknown)
			So(rank.ParseTier(""), ShouldEqual, rank.TierUnknown)
		})
	})
}
