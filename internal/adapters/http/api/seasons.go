// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// seasonsResponse lists the selectable seasons, newest last, and flags the
// championship winner of each.
type seasonsResponse struct {
	Seasons   []string          `json:"seasons"`
	Latest    string            `json:"latest"`
	Champions map[string]string `json:"champions"`
}

// SeasonsHandler handles season list requests.
type SeasonsHandler struct {
	deps Dependencies
}

// NewSeasonsHandler creates a new seasons handler.
func NewSeasonsHandler(deps Dependencies) *SeasonsHandler {
	return &SeasonsHandler{deps: deps}
}

// HandleGetSeasons handles GET /api/seasons requests.
func (h *SeasonsHandler) HandleGetSeasons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	seasonList := h.deps.SeasonList()
	resp := seasonsResponse{
		Seasons:   seasonList,
		Champions: h.deps.Champions(),
	}
	if len(seasonList) > 0 {
		resp.Latest = seasonList[len(seasonList)-1]
	}
	writeJSON(w, http.StatusOK, resp)
}
