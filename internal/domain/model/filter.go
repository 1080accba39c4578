package model

// Filter narrows the dataset down to what a dashboard view consumes.
type Filter struct {
	// Season selects exactly one season from the fixed season set.
	Season string `json:"season"`
	// Teams restricts rows to a subset of team names. Empty means all
	// teams present in the selected season.
	Teams []string `json:"teams,omitempty"`
	// MinThreePct is an inclusive lower bound on FG3_PCT, 0-100.
	MinThreePct float64 `json:"min_fg3_pct"`
}

// ChampionSummary is the champion slice of the metric cards. It only exists
// when the champion row survives the active filter.
type ChampionSummary struct {
	TeamName        string  `json:"team_name"`
	ThreePct        float64 `json:"fg3_pct"`
	DeltaVsLeague   float64 `json:"delta_vs_league"`
	PercentPointsT3 float64 `json:"percent_points_3"`
}

// Summary holds the metric-card aggregates for a filtered view.
type Summary struct {
	Season      string           `json:"season"`
	TeamCount   int              `json:"team_count"`
	AvgAttempts float64          `json:"avg_attempts_per_game"`
	AvgThreePct float64          `json:"avg_fg3_pct"`
	Champion    *ChampionSummary `json:"champion,omitempty"`
}

// EvolutionPoint is one season on the league-vs-champion trend line.
// ChampionAttempts is nil when no champion row exists for the season.
type EvolutionPoint struct {
	Season            string   `json:"season"`
	LeagueAvgAttempts float64  `json:"league_avg_attempts"`
	ChampionAttempts  *float64 `json:"champion_attempts,omitempty"`
}
