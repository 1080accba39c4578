// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	service "github.com/hooplytics/hooplytics/internal/app"
)

// StatsProvider exposes the pipeline's monitoring snapshot: lifecycle
// state, season count, cache configuration and cache occupancy.
type StatsProvider interface {
	GetStats() service.Stats
}

// StatsHandler serves the service snapshot to operators and the dashboard.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.statsProvider.GetStats())
}
