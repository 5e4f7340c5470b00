package awards_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/seaborne/quarterdeck/internal/domain/awards"
	"github.com/seaborne/quarterdeck/internal/domain/sheet"
)

func TestHeld(t *testing.T) {
	Convey("Given the award-held predicate", t, func() {
		Convey("When cells carry positive marks", func() {
			So(awards.Held("x1"), ShouldBeTrue)
			So(awards.Held("yes"), ShouldBeTrue)
			So(awards.Held("2024-11-02"), ShouldBeTrue)
			So(awards.Held("✔"), ShouldBeTrue)
		})

		Convey("When cells are empty or explicitly negative", func() {
			So(awards.Held(""), ShouldBeFalse)
			So(awards.Held("  "), ShouldBeFalse)
			So(awards.Held("no"), ShouldBeFalse)
			So(awards.Held("N"), ShouldBeFalse)
			So(awards.Held("0"), ShouldBeFalse)
			So(awards.Held("-"), ShouldBeFalse)
			So(awards.Held("X"), ShouldBeFalse)
		})
	})
}

func TestNormalize(t *testing.T) {
	known := []string{"Jet", "Marlow"}
	knownAwards := []string{"Citation of Conduct", "Challenge Coin", "Legion of Voyages"}

	Convey("Given a role/coin sheet", t, func() {
		table := sheet.RawTable{
			Headers: []string{"Name", "Citation of Conduct", "Challenge Coin", "Unrelated"},
			Rows: [][]string{
				{"Jet", "yes", "", "whatever"},
				{"Marlow", "no", "2024-07-04", ""},
				{"Stranger", "yes", "yes", ""},
				{"Jet Two", "", "", ""},
			},
		}

		Convey("When normalizing", func() {
			grants := awards.Normalize(table, known, knownAwards)

			Convey("Then grants list held known awards per crew member", func() {
				So(grants, ShouldHaveLength, 2)
				So(grants[0].Name, ShouldEqual, "Jet")
				So(grants[0].Awards, ShouldResemble, []string{"Citation of Conduct"})
				So(grants[1].Name, ShouldEqual, "Marlow")
				So(grants[1].Awards, ShouldResemble, []string{"Challenge Coin"})
			})

			Convey("Then non-crew rows drop silently", func() {
				for _, g := range grants {
					So(g.Name, ShouldNotEqual, "Stranger")
				}
			})
		})

		Convey("When a known award has no column in the sheet", func() {
			grants := awards.Normalize(table, known, []string{"Legion of Voyages"})

			Convey("Then the absent column is tolerated and nothing is granted", func() {
				So(grants, ShouldBeEmpty)
			})
		})
	})
}
