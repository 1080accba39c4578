// Package view contains the pure projections and aggregations the dashboard
// renders: filtering, metric cards, top-N ranking and the season trend.
// Every function tolerates an empty input and returns zero values instead
// of failing.
package view

import (
	"sort"

	"github.com/hooplytics/hooplytics/internal/domain/model"
)

// DefaultTopLimit is the ranking size used when the caller does not ask for
// a specific one.
const DefaultTopLimit = 10

// Apply narrows records down to the filter: one season, an optional team
// subset and an inclusive FG3_PCT lower bound. A zero MinThreePct keeps the
// whole season; order is preserved.
func Apply(records []model.SeasonRecord, f model.Filter) []model.SeasonRecord {
	var teamSet map[string]struct{}
	if len(f.Teams) > 0 {
		teamSet = make(map[string]struct{}, len(f.Teams))
		for _, t := range f.Teams {
			teamSet[t] = struct{}{}
		}
	}

	out := make([]model.SeasonRecord, 0, len(records))
	for _, r := range records {
		if r.Season != f.Season {
			continue
		}
		if teamSet != nil {
			if _, ok := teamSet[r.TeamName]; !ok {
				continue
			}
		}
		if r.ThreePct < f.MinThreePct {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Teams lists the team names present in a season, sorted alphabetically.
func Teams(records []model.SeasonRecord, season string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(records))
	for _, r := range records {
		if r.Season != season {
			continue
		}
		if _, ok := seen[r.TeamName]; ok {
			continue
		}
		seen[r.TeamName] = struct{}{}
		out = append(out, r.TeamName)
	}
	sort.Strings(out)
	return out
}

// Summary computes the metric cards for an already-filtered set of records.
// The champion card is present only when the champion row survived the
// filter; on an empty input all averages are zero.
func Summary(season string, filtered []model.SeasonRecord) model.Summary {
	s := model.Summary{Season: season, TeamCount: len(filtered)}
	if len(filtered) == 0 {
		return s
	}

	var sumAttempts, sumPct float64
	for _, r := range filtered {
		sumAttempts += r.AttemptsPerGame
		sumPct += r.ThreePct
	}
	s.AvgAttempts = sumAttempts / float64(len(filtered))
	s.AvgThreePct = sumPct / float64(len(filtered))

	for _, r := range filtered {
		if !r.IsChampion {
			continue
		}
		s.Champion = &model.ChampionSummary{
			TeamName:        r.TeamName,
			ThreePct:        r.ThreePct,
			DeltaVsLeague:   r.ThreePct - s.AvgThreePct,
			PercentPointsT3: r.PercentPointsTh3,
		}
		break
	}
	return s
}

// TopByThrees ranks filtered records by threes per game, descending, and
// keeps the first n. Equal values keep their original relative order.
func TopByThrees(filtered []model.SeasonRecord, n int) []model.SeasonRecord {
	if n <= 0 {
		n = DefaultTopLimit
	}
	out := make([]model.SeasonRecord, len(filtered))
	copy(out, filtered)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ThreesPerGame > out[j].ThreesPerGame
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Evolution builds the season-over-season trend from the full dataset:
// league average attempts per game next to the champion's attempts. Seasons
// appear in the chronological order given; a season without a champion row
// contributes a nil champion value.
func Evolution(all []model.SeasonRecord, order []string) []model.EvolutionPoint {
	type bucket struct {
		sum      float64
		count    int
		champion *float64
	}
	buckets := make(map[string]*bucket, len(order))
	for _, r := range all {
		b, ok := buckets[r.Season]
		if !ok {
			b = &bucket{}
			buckets[r.Season] = b
		}
		b.sum += r.AttemptsPerGame
		b.count++
		if r.IsChampion {
			v := r.AttemptsPerGame
			b.champion = &v
		}
	}

	out := make([]model.EvolutionPoint, 0, len(order))
	for _, season := range order {
		b, ok := buckets[season]
		if !ok {
			continue
		}
		out = append(out, model.EvolutionPoint{
			Season:            season,
			LeagueAvgAttempts: b.sum / float64(b.count),
			ChampionAttempts:  b.champion,
		})
	}
	return out
}
