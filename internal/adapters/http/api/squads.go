package api

import "net/http"

// SquadsHandler handles per-squad breakdown requests.
type SquadsHandler struct {
	deps Dependencies
}

// NewSquadsHandler creates a new squads handler.
func NewSquadsHandler(deps Dependencies) *SquadsHandler {
	return &SquadsHandler{deps: deps}
}

// HandleGetSquads handles GET /api/squads requests. Squads come back in
// sheet order, the order members first appeared in.
func (h *SquadsHandler) HandleGetSquads(w http.ResponseWriter, r *http.Request) {
	squads, ok := h.deps.Squads(r.Context())
	if !ok {
		writeNoData(w)
		return
	}
	writeJSON(w, http.StatusOK, squads)
}
