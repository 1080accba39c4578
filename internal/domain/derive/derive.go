// Package derive turns raw per-game team stats into the comparison-ready
// dataset: column projection, percentage normalization, derived three-point
// metrics and the champion join, in that order.
package derive

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/hooplytics/hooplytics/internal/domain/model"
)

// keepColumns is the fixed projection applied before any derivation.
var keepColumns = []string{
	"SEASON", "TEAM_NAME", "GP", "W", "L", "FG3M", "FG3A", "FG3_PCT", "PTS",
}

const pointsPerThree = 3

// championRow is the join table shape for the season-to-champion lookup.
type championRow struct {
	Season       string `dataframe:"SEASON,string"`
	ChampionTeam string `dataframe:"CHAMPION_TEAM,string"`
}

// Dataset derives the full analytics dataset from raw aggregated rows.
// Row order is preserved. An empty input yields an empty dataset.
func Dataset(rows []model.TeamSeasonStats, champions map[string]string) ([]model.SeasonRecord, error) {
	if len(rows) == 0 {
		return []model.SeasonRecord{}, nil
	}

	df := dataframe.LoadStructs(rows)
	if df.Err != nil {
		return nil, fmt.Errorf("load raw rows: %w", df.Err)
	}

	df = df.Select(keepColumns)
	if df.Err != nil {
		return nil, fmt.Errorf("project columns: %w", df.Err)
	}

	df = normalizePct(df)

	threes := df.Col("FG3M").Float()
	attempts := df.Col("FG3A").Float()
	points := df.Col("PTS").Float()

	pointsFrom3 := make([]float64, len(threes))
	pctPoints3 := make([]float64, len(threes))
	for i := range threes {
		pointsFrom3[i] = threes[i] * pointsPerThree
		if points[i] > 0 {
			pctPoints3[i] = pointsFrom3[i] / points[i] * 100
		}
	}

	df = df.
		Mutate(series.New(threes, series.Float, "THREES_PER_GAME")).
		Mutate(series.New(attempts, series.Float, "THREES_ATT_PER_GAME")).
		Mutate(series.New(pointsFrom3, series.Float, "POINTS_FROM_3")).
		Mutate(series.New(pctPoints3, series.Float, "PERCENT_POINTS_3"))
	if df.Err != nil {
		return nil, fmt.Errorf("derive columns: %w", df.Err)
	}

	df, err := joinChampions(df, champions)
	if err != nil {
		return nil, err
	}

	return collect(df)
}

// normalizePct rescales FG3_PCT to a 0-100 scale when the provider returned
// fractions. The decision is table-wide: only when the maximum observed
// value is <= 1 is the whole column multiplied by 100, which makes the step
// idempotent on already-normalized data. A table where every true
// percentage is legitimately <= 1% would be wrongly rescaled; that
// ambiguity is inherent to the heuristic and accepted.
func normalizePct(df dataframe.DataFrame) dataframe.DataFrame {
	pct := df.Col("FG3_PCT")
	if pct.Max() > 1 {
		return df
	}
	vals := pct.Float()
	for i := range vals {
		vals[i] *= 100
	}
	return df.Mutate(series.New(vals, series.Float, "FG3_PCT"))
}

// joinChampions left-joins the champion lookup on SEASON. Rows in seasons
// without a recorded champion keep a missing champion name.
func joinChampions(df dataframe.DataFrame, champions map[string]string) (dataframe.DataFrame, error) {
	if len(champions) == 0 {
		blank := make([]string, df.Nrow())
		return df.Mutate(series.New(blank, series.String, "CHAMPION_TEAM")), nil
	}

	rows := make([]championRow, 0, len(champions))
	for season, team := range champions {
		rows = append(rows, championRow{Season: season, ChampionTeam: team})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Season < rows[j].Season })

	lookup := dataframe.LoadStructs(rows)
	if lookup.Err != nil {
		return df, fmt.Errorf("load champion lookup: %w", lookup.Err)
	}

	joined := df.LeftJoin(lookup, "SEASON")
	if joined.Err != nil {
		return df, fmt.Errorf("join champions: %w", joined.Err)
	}
	return joined, nil
}

// collect flattens the derived dataframe back into typed records. The
// champion flag is a plain string comparison, so a missing champion name
// always yields false rather than a null-ish state.
func collect(df dataframe.DataFrame) ([]model.SeasonRecord, error) {
	n := df.Nrow()

	season := df.Col("SEASON")
	team := df.Col("TEAM_NAME")
	gp := df.Col("GP").Float()
	wins := df.Col("W").Float()
	losses := df.Col("L").Float()
	fg3m := df.Col("FG3M").Float()
	fg3a := df.Col("FG3A").Float()
	fg3pct := df.Col("FG3_PCT").Float()
	pts := df.Col("PTS").Float()
	tpg := df.Col("THREES_PER_GAME").Float()
	apg := df.Col("THREES_ATT_PER_GAME").Float()
	pf3 := df.Col("POINTS_FROM_3").Float()
	pp3 := df.Col("PERCENT_POINTS_3").Float()
	champ := df.Col("CHAMPION_TEAM")

	out := make([]model.SeasonRecord, n)
	for i := 0; i < n; i++ {
		championTeam := ""
		if el := champ.Elem(i); !el.IsNA() {
			championTeam = el.String()
		}
		teamName := team.Elem(i).String()
		out[i] = model.SeasonRecord{
			Season:           season.Elem(i).String(),
			TeamName:         teamName,
			GamesPlayed:      int(gp[i]),
			Wins:             int(wins[i]),
			Losses:           int(losses[i]),
			ThreesMade:       fg3m[i],
			ThreesAttempted:  fg3a[i],
			ThreePct:         fg3pct[i],
			Points:           pts[i],
			ThreesPerGame:    tpg[i],
			AttemptsPerGame:  apg[i],
			PointsFromThree:  pf3[i],
			PercentPointsTh3: pp3[i],
			ChampionTeam:     championTeam,
			IsChampion:       championTeam != "" && teamName == championTeam,
		}
	}
	return out, nil
}
