package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mlbdw/livetracker/internal/domain/types"
)

// handleScoreboard handles GET /api/scoreboard.
func (s *Server) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, emptyNotNull(snap.Scoreboard))
}

// handleHitters handles GET /api/hitters.
func (s *Server) handleHitters(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, emptyNotNull(snap.Hitters))
}

// handlePitchers handles GET /api/pitchers.
func (s *Server) handlePitchers(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, emptyNotNull(snap.Pitchers))
}

// handlePitcherSummary handles GET /api/pitcher-summary.
func (s *Server) handlePitcherSummary(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, emptyNotNull(snap.PitcherSummary))
}

// handlePitchMix handles GET /api/pitch-mix with an optional exact
// pitcher filter (?pitcher=).
func (s *Server) handlePitchMix(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}

	rows := snap.PitchMix
	if pitcher := r.URL.Query().Get("pitcher"); pitcher != "" {
		filtered := make([]types.PitchMixRow, 0)
		for _, row := range rows {
			if row.Pitcher == pitcher {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	writeJSON(w, http.StatusOK, emptyNotNull(rows))
}

// handleExitVelos handles GET /api/exit-velos with an optional minimum
// exit velocity filter (?min_ev=). Untracked contact is dropped by the
// filter.
func (s *Server) handleExitVelos(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}

	rows := snap.ExitVelos
	if raw := r.URL.Query().Get("min_ev"); raw != "" {
		minEV, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_query",
				fmt.Errorf("%w: min_ev=%q", ErrBadQuery, raw))
			return
		}
		filtered := make([]types.ExitVeloRow, 0)
		for _, row := range rows {
			if row.EV != nil && *row.EV >= minEV {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	writeJSON(w, http.StatusOK, emptyNotNull(rows))
}

// handleHomeRuns handles GET /api/home-runs.
func (s *Server) handleHomeRuns(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, emptyNotNull(snap.HomeRuns))
}

// handleSnapshot handles GET /api/snapshot.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Meta(time.Now()))
}

// emptyNotNull keeps empty tables marshaling as [] rather than null.
func emptyNotNull[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
