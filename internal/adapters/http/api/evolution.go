// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// EvolutionHandler handles league-vs-champion trend requests.
type EvolutionHandler struct {
	deps Dependencies
}

// NewEvolutionHandler creates a new evolution handler.
func NewEvolutionHandler(deps Dependencies) *EvolutionHandler {
	return &EvolutionHandler{deps: deps}
}

// HandleGetEvolution handles GET /api/evolution requests. The trend always
// spans every tracked season, so no filter parameters apply.
func (h *EvolutionHandler) HandleGetEvolution(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	points, err := h.deps.Evolution(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}
