package seasons_test

import (
	"testing"

	"github.com/hooplytics/hooplytics/internal/domain/seasons"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeasonList(t *testing.T) {
	Convey("Given the fixed season list", t, func() {
		all := seasons.All()

		Convey("Then it contains exactly ten seasons in order", func() {
			So(all, ShouldHaveLength, 10)
			So(all[0], ShouldEqual, "2014-15")
			So(all[9], ShouldEqual, "2023-24")
		})

		Convey("Then the latest season is the last entry", func() {
			So(seasons.Latest(), ShouldEqual, "2023-24")
		})

		Convey("Then every listed season validates", func() {
			for _, s := range all {
				So(seasons.Valid(s), ShouldBeTrue)
			}
		})

		Convey("Then unknown identifiers do not validate", func() {
			So(seasons.Valid("2013-14"), ShouldBeFalse)
			So(seasons.Valid("2024-25"), ShouldBeFalse)
			So(seasons.Valid(""), ShouldBeFalse)
		})

		Convey("Then mutating the returned slice does not affect the list", func() {
			all[0] = "mutated"
			So(seasons.All()[0], ShouldEqual, "2014-15")
		})
	})
}

func TestChampionLookup(t *testing.T) {
	Convey("Given the champion lookup", t, func() {
		lookup := seasons.Champions()

		Convey("Then every season has a recorded champion", func() {
			for _, s := range seasons.All() {
				So(lookup[s], ShouldNotBeEmpty)
			}
		})

		Convey("Then known champions resolve correctly", func() {
			So(lookup["2022-23"], ShouldEqual, "Denver Nuggets")
			So(lookup["2023-24"], ShouldEqual, "Boston Celtics")
		})

		Convey("Then an unknown season reports no champion", func() {
			_, ok := lookup["1995-96"]
			So(ok, ShouldBeFalse)
		})

		Convey("Then mutating the returned map does not affect the lookup", func() {
			lookup["2022-23"] = "mutated"
			So(seasons.Champions()["2022-23"], ShouldEqual, "Denver Nuggets")
		})
	})
}
