// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/hooplytics/hooplytics/internal/adapters/provider"
	service "github.com/hooplytics/hooplytics/internal/app"
	"github.com/hooplytics/hooplytics/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Records(ctx context.Context, f model.Filter) ([]model.SeasonRecord, error)
	Summary(ctx context.Context, f model.Filter) (model.Summary, error)
	TopThrees(ctx context.Context, f model.Filter, n int) ([]model.SeasonRecord, error)
	Evolution(ctx context.Context) ([]model.EvolutionPoint, error)
	Teams(ctx context.Context, season string) ([]string, error)
	SeasonList() []string
	Champions() map[string]string
	ClearCache(ctx context.Context)
}

// Server wires HTTP routes for the business API.
type Server struct {
	seasonsHandler   *SeasonsHandler
	teamsHandler     *TeamsHandler
	datasetHandler   *DatasetHandler
	summaryHandler   *SummaryHandler
	topHandler       *TopHandler
	evolutionHandler *EvolutionHandler
	chartsHandler    *ChartsHandler
	exportHandler    *ExportHandler
	cacheHandler     *CacheHandler
	statsHandler     *StatsHandler
	healthHandler    *HealthHandler
}

// NewServer creates a new API server with all handlers. maxTopLimit caps
// GET /api/top?limit.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxTopLimit int) *Server {
	return &Server{
		seasonsHandler:   NewSeasonsHandler(deps),
		teamsHandler:     NewTeamsHandler(deps),
		datasetHandler:   NewDatasetHandler(deps),
		summaryHandler:   NewSummaryHandler(deps),
		topHandler:       NewTopHandler(deps, maxTopLimit),
		evolutionHandler: NewEvolutionHandler(deps),
		chartsHandler:    NewChartsHandler(deps),
		exportHandler:    NewExportHandler(deps),
		cacheHandler:     NewCacheHandler(deps),
		statsHandler:     NewStatsHandler(statsProvider),
		healthHandler:    NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/seasons", MetricsMiddleware(s.seasonsHandler.HandleGetSeasons, "seasons"))
	mux.HandleFunc("/api/teams", MetricsMiddleware(s.teamsHandler.HandleGetTeams, "teams"))
	mux.HandleFunc("/api/dataset", MetricsMiddleware(s.datasetHandler.HandleGetDataset, "dataset"))
	mux.HandleFunc("/api/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/api/top", MetricsMiddleware(s.topHandler.HandleGetTop, "top"))
	mux.HandleFunc("/api/evolution", MetricsMiddleware(s.evolutionHandler.HandleGetEvolution, "evolution"))
	mux.HandleFunc("/api/charts/", MetricsMiddleware(s.chartsHandler.HandleGetChart, "charts"))
	mux.HandleFunc("/api/export.csv", MetricsMiddleware(s.exportHandler.HandleExportCSV, "export"))
	mux.HandleFunc("/api/cache/clear", MetricsMiddleware(s.cacheHandler.HandleClearCache, "cache_clear"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates pipeline errors to status codes: bad input
// maps to 400, an unreachable provider to 502, everything else to 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownSeason), errors.Is(err, service.ErrBadFilter):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, provider.ErrUnavailable):
		writeError(w, http.StatusBadGateway, "provider_unavailable", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// parseFilter reads the shared filter query parameters: season, teams
// (comma-separated, may repeat) and min_fg3_pct.
func parseFilter(r *http.Request) (model.Filter, error) {
	q := r.URL.Query()
	f := model.Filter{Season: q.Get("season")}

	for _, raw := range q["teams"] {
		for _, team := range strings.Split(raw, ",") {
			if team = strings.TrimSpace(team); team != "" {
				f.Teams = append(f.Teams, team)
			}
		}
	}

	if raw := q.Get("min_fg3_pct"); raw != "" {
		minPct, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, errors.New("invalid min_fg3_pct; must be numeric")
		}
		f.MinThreePct = minPct
	}
	return f, nil
}
