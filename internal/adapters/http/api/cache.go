// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

type cacheClearResponse struct {
	Status string `json:"status"`
}

// CacheHandler handles cache management requests.
type CacheHandler struct {
	deps Dependencies
}

// NewCacheHandler creates a new cache handler.
func NewCacheHandler(deps Dependencies) *CacheHandler {
	return &CacheHandler{deps: deps}
}

// HandleClearCache handles POST /api/cache/clear requests. Both cache tiers
// are dropped; the next read rebuilds from the provider.
func (h *CacheHandler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	h.deps.ClearCache(r.Context())
	writeJSON(w, http.StatusOK, cacheClearResponse{Status: "cleared"})
}
