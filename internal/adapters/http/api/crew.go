package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/seaborne/quarterdeck/internal/app"
)

// CrewHandler handles crew roster requests.
type CrewHandler struct {
	deps Dependencies
}

// NewCrewHandler creates a new crew handler.
func NewCrewHandler(deps Dependencies) *CrewHandler {
	return &CrewHandler{deps: deps}
}

// HandleListCrew handles GET /api/crew requests.
func (h *CrewHandler) HandleListCrew(w http.ResponseWriter, r *http.Request) {
	crew, ok := h.deps.Crew(r.Context())
	if !ok {
		writeNoData(w)
		return
	}
	writeJSON(w, http.StatusOK, crew)
}

// HandleGetMember handles GET /api/crew/{name} requests. Duplicate sheet
// rows for one name come back as multiple records.
func (h *CrewHandler) HandleGetMember(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	records, err := h.deps.Member(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNoSnapshot):
			writeNoData(w)
		case errors.Is(err, app.ErrMemberNotFound):
			writeError(w, http.StatusNotFound, "not_found", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, records)
}
