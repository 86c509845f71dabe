// Package api declares the read-only JSON surface over the published
// snapshot, plus the embedded dashboard page.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/mlbdw/livetracker/internal/adapters/repository"
)

// Dependencies is what handlers need from the rest of the system.
type Dependencies interface {
	// Latest returns the current snapshot, or false before the first
	// refresh completes.
	Latest() (*repository.Snapshot, bool)
}

// StatsProvider reports service counters for the stats endpoint.
type StatsProvider interface {
	GetStats() map[string]any
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	deps             Dependencies
	statsHandler     *StatsHandler
	healthHandler    *HealthHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates an API server over the snapshot source.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		deps:             deps,
		statsHandler:     NewStatsHandler(statsProvider),
		healthHandler:    NewHealthHandler(),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/scoreboard", MetricsMiddleware(s.handleScoreboard, "scoreboard"))
	mux.HandleFunc("/api/hitters", MetricsMiddleware(s.handleHitters, "hitters"))
	mux.HandleFunc("/api/pitchers", MetricsMiddleware(s.handlePitchers, "pitchers"))
	mux.HandleFunc("/api/pitcher-summary", MetricsMiddleware(s.handlePitcherSummary, "pitcher-summary"))
	mux.HandleFunc("/api/pitch-mix", MetricsMiddleware(s.handlePitchMix, "pitch-mix"))
	mux.HandleFunc("/api/exit-velos", MetricsMiddleware(s.handleExitVelos, "exit-velos"))
	mux.HandleFunc("/api/home-runs", MetricsMiddleware(s.handleHomeRuns, "home-runs"))
	mux.HandleFunc("/api/snapshot", MetricsMiddleware(s.handleSnapshot, "snapshot"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
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

// snapshot fetches the current snapshot or writes the not-ready error.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) (*repository.Snapshot, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return nil, false
	}
	snap, ok := s.deps.Latest()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "not_ready", ErrNotReady)
		return nil, false
	}
	return snap, true
}
