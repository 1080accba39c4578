package provider

import (
	"fmt"

	"github.com/hooplytics/hooplytics/internal/domain/model"
)

// statsPayload mirrors the provider's response envelope: named result sets
// carrying parallel header and row arrays.
type statsPayload struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string  `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// columns the dashboard consumes from the provider table.
var requiredColumns = []string{
	"TEAM_NAME", "GP", "W", "L", "FG3M", "FG3A", "FG3_PCT", "PTS",
}

// teamRows flattens the first result set into typed rows tagged with the
// season they were fetched for.
func (p statsPayload) teamRows(season string) ([]model.TeamSeasonStats, error) {
	if len(p.ResultSets) == 0 {
		return nil, fmt.Errorf("%w: no result sets", ErrBadPayload)
	}
	set := p.ResultSets[0]

	idx := make(map[string]int, len(set.Headers))
	for i, h := range set.Headers {
		idx[h] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %s", ErrBadPayload, col)
		}
	}

	rows := make([]model.TeamSeasonStats, 0, len(set.RowSet))
	for i, raw := range set.RowSet {
		if len(raw) < len(set.Headers) {
			return nil, fmt.Errorf("%w: row %d is short", ErrBadPayload, i)
		}
		rows = append(rows, model.TeamSeasonStats{
			Season:          season,
			TeamName:        cellString(raw[idx["TEAM_NAME"]]),
			GamesPlayed:     int(cellFloat(raw[idx["GP"]])),
			Wins:            int(cellFloat(raw[idx["W"]])),
			Losses:          int(cellFloat(raw[idx["L"]])),
			ThreesMade:      cellFloat(raw[idx["FG3M"]]),
			ThreesAttempted: cellFloat(raw[idx["FG3A"]]),
			ThreePct:        cellFloat(raw[idx["FG3_PCT"]]),
			Points:          cellFloat(raw[idx["PTS"]]),
		})
	}
	return rows, nil
}

// cellFloat reads a numeric cell. The provider emits JSON numbers but nulls
// show up in sparse columns; those read as zero.
func cellFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func cellString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
