// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/hooplytics/hooplytics/internal/domain/model"
)

type datasetResponse struct {
	Season  string               `json:"season"`
	Count   int                  `json:"count"`
	Records []model.SeasonRecord `json:"records"`
}

// DatasetHandler handles filtered dataset requests.
type DatasetHandler struct {
	deps Dependencies
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(deps Dependencies) *DatasetHandler {
	return &DatasetHandler{deps: deps}
}

// HandleGetDataset handles GET /api/dataset requests. Accepts season, teams
// and min_fg3_pct query parameters.
func (h *DatasetHandler) HandleGetDataset(w http.ResponseWriter, r *http.Request) {
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
	}
	writeJSON(w, http.StatusOK, datasetResponse{
		Season:  season,
		Count:   len(records),
		Records: records,
	})
}
