// Package model contains the core data types shared across the application.
package model

// TeamSeasonStats is one raw per-game row as returned by the stats provider
// for a single (team, season) pair. The dataframe tags mirror the provider's
// column names so the derivation pipeline can address columns by name.
type TeamSeasonStats struct {
	Season          string  `dataframe:"SEASON,string" json:"season"`
	TeamName        string  `dataframe:"TEAM_NAME,string" json:"team_name"`
	GamesPlayed     int     `dataframe:"GP,int" json:"gp"`
	Wins            int     `dataframe:"W,int" json:"w"`
	Losses          int     `dataframe:"L,int" json:"l"`
	ThreesMade      float64 `dataframe:"FG3M,float" json:"fg3m"`
	ThreesAttempted float64 `dataframe:"FG3A,float" json:"fg3a"`
	ThreePct        float64 `dataframe:"FG3_PCT,float" json:"fg3_pct"`
	Points          float64 `dataframe:"PTS,float" json:"pts"`
}

// SeasonRecord is one comparison-ready row of the derived dataset: the raw
// per-game stats plus the derived three-point metrics and the champion flag.
type SeasonRecord struct {
	Season          string  `json:"season"`
	TeamName        string  `json:"team_name"`
	GamesPlayed     int     `json:"gp"`
	Wins            int     `json:"w"`
	Losses          int     `json:"l"`
	ThreesMade      float64 `json:"fg3m"`
	ThreesAttempted float64 `json:"fg3a"`
	ThreePct        float64 `json:"fg3_pct"`
	Points          float64 `json:"pts"`

	ThreesPerGame    float64 `json:"threes_per_game"`
	AttemptsPerGame  float64 `json:"attempts_per_game"`
	PointsFromThree  float64 `json:"points_from_3"`
	PercentPointsTh3 float64 `json:"percent_points_3"`
	ChampionTeam     string  `json:"champion_team,omitempty"`
	IsChampion       bool    `json:"is_champion"`
}
