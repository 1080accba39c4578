// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hooplytics/hooplytics/internal/domain/model"
	"github.com/hooplytics/hooplytics/pkg/metrics"
)

// csvHeader is the exact export column set, in order. The columns keep the
// dashboard's display names rather than the provider's stat codes.
var csvHeader = []string{
	"Time",
	"Vitórias",
	"Derrotas",
	"3PT/Jogo",
	"Tentativas 3PT/Jogo",
	"3PT %",
	"% Pontos do 3PT",
	"Campeão",
}

// ExportHandler handles CSV export requests.
type ExportHandler struct {
	deps Dependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps Dependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExportCSV handles GET /api/export.csv requests. The filter
// parameters match the dataset route; the response is an attachment named
// after the selected season.
func (h *ExportHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	records, err := h.deps.Records(r.Context(), f)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	season := f.Season
	if len(records) > 0 {
		season = records[0].Season
	} else if season == "" {
		// The service defaults an empty season to the latest one; name the
		// attachment the same way when no row is around to tell us.
		if seasonList := h.deps.SeasonList(); len(seasonList) > 0 {
			season = seasonList[len(seasonList)-1]
		}
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "nba_stats_"+season+".csv"))

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return
	}
	for _, rec := range records {
		if err := cw.Write(csvRow(rec)); err != nil {
			return
		}
	}
	cw.Flush()
	metrics.RecordCSVExport()
}

func csvRow(rec model.SeasonRecord) []string {
	champion := "Não"
	if rec.IsChampion {
		champion = "Sim"
	}
	return []string{
		rec.TeamName,
		strconv.Itoa(rec.Wins),
		strconv.Itoa(rec.Losses),
		strconv.FormatFloat(rec.ThreesPerGame, 'f', 1, 64),
		strconv.FormatFloat(rec.AttemptsPerGame, 'f', 1, 64),
		strconv.FormatFloat(rec.ThreePct, 'f', 1, 64),
		strconv.FormatFloat(rec.PercentPointsTh3, 'f', 1, 64),
		champion,
	}
}
