package derive_test

import (
	"testing"

	"github.com/hooplytics/hooplytics/internal/domain/derive"
	"github.com/hooplytics/hooplytics/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func rawRow(season, team string, fg3m, fg3a, pct, pts float64) model.TeamSeasonStats {
	return model.TeamSeasonStats{
		Season:          season,
		TeamName:        team,
		GamesPlayed:     82,
		Wins:            50,
		Losses:          32,
		ThreesMade:      fg3m,
		ThreesAttempted: fg3a,
		ThreePct:        pct,
		Points:          pts,
	}
}

func TestDataset(t *testing.T) {
	champions := map[string]string{
		"2022-23": "Denver Nuggets",
		"2023-24": "Boston Celtics",
	}

	Convey("Given raw rows with fractional percentages", t, func() {
		rows := []model.TeamSeasonStats{
			rawRow("2022-23", "Denver Nuggets", 11.5, 30.0, 0.385, 115.8),
			rawRow("2022-23", "Golden State Warriors", 16.5, 43.0, 0.384, 118.9),
		}

		recs, err := derive.Dataset(rows, champions)

		Convey("Then the percentage column is rescaled to 0-100", func() {
			So(err, ShouldBeNil)
			So(recs, ShouldHaveLength, 2)
			So(recs[0].ThreePct, ShouldAlmostEqual, 38.5, 0.0001)
			So(recs[1].ThreePct, ShouldAlmostEqual, 38.4, 0.0001)
		})

		Convey("Then row order is preserved", func() {
			So(recs[0].TeamName, ShouldEqual, "Denver Nuggets")
			So(recs[1].TeamName, ShouldEqual, "Golden State Warriors")
		})
	})

	Convey("Given rows already on a 0-100 scale", t, func() {
		rows := []model.TeamSeasonStats{
			rawRow("2022-23", "Denver Nuggets", 11.5, 30.0, 38.5, 115.8),
		}

		recs, err := derive.Dataset(rows, champions)

		Convey("Then normalization is a no-op", func() {
			So(err, ShouldBeNil)
			So(recs[0].ThreePct, ShouldAlmostEqual, 38.5, 0.0001)
		})
	})

	Convey("Given any valid row", t, func() {
		rows := []model.TeamSeasonStats{
			rawRow("2022-23", "Denver Nuggets", 11.5, 30.0, 38.5, 115.8),
		}

		recs, err := derive.Dataset(rows, champions)
		So(err, ShouldBeNil)
		rec := recs[0]

		Convey("Then the derived columns follow the per-game formulas", func() {
			So(rec.ThreesPerGame, ShouldAlmostEqual, 11.5, 0.0001)
			So(rec.AttemptsPerGame, ShouldAlmostEqual, 30.0, 0.0001)
			So(rec.PointsFromThree, ShouldAlmostEqual, 34.5, 0.0001)
			So(rec.PercentPointsTh3, ShouldAlmostEqual, 34.5/115.8*100, 0.0001)
		})
	})

	Convey("Given a row with zero points", t, func() {
		rows := []model.TeamSeasonStats{
			rawRow("2022-23", "Denver Nuggets", 0, 0, 0, 0),
		}

		recs, err := derive.Dataset(rows, champions)

		Convey("Then percent of points from three is zero, not NaN", func() {
			So(err, ShouldBeNil)
			So(recs[0].PercentPointsTh3, ShouldEqual, 0)
		})
	})

	Convey("Given rows across seasons with a champion lookup", t, func() {
		rows := []model.TeamSeasonStats{
			rawRow("2022-23", "Denver Nuggets", 11.5, 30.0, 38.5, 115.8),
			rawRow("2022-23", "Miami Heat", 12.8, 34.8, 36.8, 109.5),
			rawRow("2023-24", "Boston Celtics", 16.5, 42.5, 38.8, 120.6),
			rawRow("2023-24", "Denver Nuggets", 11.2, 31.0, 36.1, 114.9),
		}

		recs, err := derive.Dataset(rows, champions)
		So(err, ShouldBeNil)

		Convey("Then exactly one row per season is flagged champion", func() {
			perSeason := map[string]int{}
			for _, r := range recs {
				if r.IsChampion {
					perSeason[r.Season]++
				}
			}
			So(perSeason["2022-23"], ShouldEqual, 1)
			So(perSeason["2023-24"], ShouldEqual, 1)
		})

		Convey("Then the flag matches the looked-up champion only", func() {
			for _, r := range recs {
				want := champions[r.Season]
				So(r.IsChampion, ShouldEqual, r.TeamName == want)
				So(r.ChampionTeam, ShouldEqual, want)
			}
		})
	})

	Convey("Given a season without a recorded champion", t, func() {
		rows := []model.TeamSeasonStats{
			rawRow("2019-20", "Toronto Raptors", 13.8, 37.0, 37.2, 112.8),
		}

		recs, err := derive.Dataset(rows, champions)

		Convey("Then the champion flag is false, not an error", func() {
			So(err, ShouldBeNil)
			So(recs[0].IsChampion, ShouldBeFalse)
			So(recs[0].ChampionTeam, ShouldBeEmpty)
		})
	})

	Convey("Given an empty champion lookup", t, func() {
		rows := []model.TeamSeasonStats{
			rawRow("2022-23", "Denver Nuggets", 11.5, 30.0, 38.5, 115.8),
		}

		recs, err := derive.Dataset(rows, nil)

		Convey("Then every row is a non-champion", func() {
			So(err, ShouldBeNil)
			So(recs[0].IsChampion, ShouldBeFalse)
		})
	})

	Convey("Given no rows", t, func() {
		recs, err := derive.Dataset(nil, champions)

		Convey("Then the dataset is empty and no error is raised", func() {
			So(err, ShouldBeNil)
			So(recs, ShouldBeEmpty)
		})
	})
}
