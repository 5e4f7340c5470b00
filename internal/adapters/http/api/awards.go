package api

import "net/http"

// AwardsHandler handles award roster requests.
type AwardsHandler struct {
	deps Dependencies
}

// NewAwardsHandler creates a new awards handler.
func NewAwardsHandler(deps Dependencies) *AwardsHandler {
	return &AwardsHandler{deps: deps}
}

// HandleGetAwards handles GET /api/awards requests.
func (h *AwardsHandler) HandleGetAwards(w http.ResponseWriter, r *http.Request) {
	grants, ok := h.deps.Awards(r.Context())
	if !ok {
		writeNoData(w)
		return
	}
	writeJSON(w, http.StatusOK, grants)
}
