// Package repository holds the published snapshot: the immutable set of
// tables built by one refresh cycle. Readers always see a complete
// snapshot; a new cycle swaps the whole snapshot in one step.
package repository

import (
	"time"

	"github.com/mlbdw/livetracker/internal/domain/types"
)

// Snapshot is one refresh cycle's complete output.
type Snapshot struct {
	ID       string
	BuiltAt  time.Time
	Date     string
	Games    int
	Statcast int // games with Statcast tracking
	Rows     int // derived pitch rows

	Scoreboard     []types.ScoreRow
	Hitters        []types.HitterRow
	Pitchers       []types.PitcherLeaderRow
	PitcherSummary []types.PitcherSummaryRow
	PitchMix       []types.PitchMixRow
	ExitVelos      []types.ExitVeloRow
	HomeRuns       []types.ExitVeloRow
}

// Meta renders the snapshot's metadata row.
func (s *Snapshot) Meta(now time.Time) types.SnapshotMeta {
	return types.SnapshotMeta{
		ID:         s.ID,
		BuiltAt:    s.BuiltAt.UTC().Format(time.RFC3339),
		AgeSeconds: int(now.Sub(s.BuiltAt).Seconds()),
		Date:       s.Date,
		Games:      s.Games,
		PitchRows:  s.Rows,
	}
}
