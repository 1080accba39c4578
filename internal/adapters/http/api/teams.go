// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

type teamsResponse struct {
	Season string   `json:"season"`
	Teams  []string `json:"teams"`
}

// TeamsHandler handles team list requests.
type TeamsHandler struct {
	deps Dependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleGetTeams handles GET /api/teams?season=YYYY-YY requests. An empty
// season defaults to the latest season.
func (h *TeamsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	season := r.URL.Query().Get("season")
	teams, err := h.deps.Teams(r.Context(), season)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if season == "" {
		seasonList := h.deps.SeasonList()
		if len(seasonList) > 0 {
			season = seasonList[len(seasonList)-1]
		}
	}
	writeJSON(w, http.StatusOK, teamsResponse{Season: season, Teams: teams})
}
