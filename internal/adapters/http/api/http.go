// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/seaborne/quarterdeck/internal/domain/aggregate"
	"github.com/seaborne/quarterdeck/internal/domain/awards"
	"github.com/seaborne/quarterdeck/internal/domain/roster"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Read operations expose the current snapshot. The boolean is false
	// before the first successful refresh.
	Crew(ctx context.Context) ([]roster.CrewMember, bool)
	Member(ctx context.Context, name string) ([]roster.CrewMember, error)
	Leaderboard(ctx context.Context, n int) (aggregate.Rankings, bool)
	Squads(ctx context.Context) ([]aggregate.SquadCount, bool)
	Compliance(ctx context.Context) (aggregate.Summary, bool)
	Awards(ctx context.Context) ([]awards.Grant, bool)

	// Refresh triggers a synchronous re-fetch of the sheet.
	Refresh(ctx context.Context) error
}

// Server wires HTTP routes for the roster API.
type Server struct {
	crewHandler        *CrewHandler
	leaderboardHandler *LeaderboardHandler
	squadsHandler      *SquadsHandler
	complianceHandler  *ComplianceHandler
	awardsHandler      *AwardsHandler
	refreshHandler     *RefreshHandler
	statsHandler       *StatsHandler
	healthHandler      *HealthHandler
}

// NewServer creates the API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLeaderboardLimit int) *Server {
	return &Server{
		crewHandler:        NewCrewHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLeaderboardLimit),
		squadsHandler:      NewSquadsHandler(deps),
		complianceHandler:  NewComplianceHandler(deps),
		awardsHandler:      NewAwardsHandler(deps),
		refreshHandler:     NewRefreshHandler(deps),
		statsHandler:       NewStatsHandler(statsProvider),
		healthHandler:      NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(_ context.Context, r *mux.Router) {
	r.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")).Methods(http.MethodGet)
	r.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats")).Methods(http.MethodGet)

	r.HandleFunc("/api/crew", MetricsMiddleware(s.crewHandler.HandleListCrew, "crew")).Methods(http.MethodGet)
	r.HandleFunc("/api/crew/{name}", MetricsMiddleware(s.crewHandler.HandleGetMember, "crew_member")).Methods(http.MethodGet)
	r.HandleFunc("/api/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard")).Methods(http.MethodGet)
	r.HandleFunc("/api/squads", MetricsMiddleware(s.squadsHandler.HandleGetSquads, "squads")).Methods(http.MethodGet)
	r.HandleFunc("/api/compliance", MetricsMiddleware(s.complianceHandler.HandleGetCompliance, "compliance")).Methods(http.MethodGet)
	r.HandleFunc("/api/awards", MetricsMiddleware(s.awardsHandler.HandleGetAwards, "awards")).Methods(http.MethodGet)
	r.HandleFunc("/api/refresh", MetricsMiddleware(s.refreshHandler.HandleRefresh, "refresh")).Methods(http.MethodPost)
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

// writeNoData answers reads that arrive before the first successful
// refresh. The dashboard renders this as "no data available".
func writeNoData(w http.ResponseWriter) {
	writeError(w, http.StatusServiceUnavailable, "no_data", ErrNoData)
}
