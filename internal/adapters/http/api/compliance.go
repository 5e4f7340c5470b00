package api

import "net/http"

// ComplianceHandler handles compliance panel requests.
type ComplianceHandler struct {
	deps Dependencies
}

// NewComplianceHandler creates a new compliance handler.
func NewComplianceHandler(deps Dependencies) *ComplianceHandler {
	return &ComplianceHandler{deps: deps}
}

// HandleGetCompliance handles GET /api/compliance requests.
func (h *ComplianceHandler) HandleGetCompliance(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.deps.Compliance(r.Context())
	if !ok {
		writeNoData(w)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
