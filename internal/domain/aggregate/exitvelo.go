package aggregate

import (
	"sort"

	"github.com/mlbdw/livetracker/internal/domain/model"
	"github.com/mlbdw/livetracker/internal/domain/types"
)

// ExitVelos extracts one row per batted ball from the derived table,
// hardest hit first. Untracked contact sorts last with a null EV.
func ExitVelos(rows []model.DerivedPitch) []types.ExitVeloRow {
	out := make([]types.ExitVeloRow, 0)
	for i := range rows {
		row := &rows[i]
		if !row.BallInPlay {
			continue
		}
		out = append(out, types.ExitVeloRow{
			Hitter:      row.BatterDisplay,
			Team:        row.BatterTeamAff,
			Pitcher:     row.PitcherDisplay,
			EV:          row.LaunchSpeed,
			Description: row.PlayDescription,
		})
	}
	sortByEV(out)
	return out
}

// HomeRuns extracts the home-run rows from the derived table, hardest
// hit first.
func HomeRuns(rows []model.DerivedPitch) []types.ExitVeloRow {
	out := make([]types.ExitVeloRow, 0)
	for i := range rows {
		row := &rows[i]
		if !row.IsHomer {
			continue
		}
		out = append(out, types.ExitVeloRow{
			Hitter:      row.BatterDisplay,
			Team:        row.BatterTeamAff,
			Pitcher:     row.PitcherDisplay,
			EV:          row.LaunchSpeed,
			Description: row.PlayDescription,
		})
	}
	sortByEV(out)
	return out
}

func sortByEV(rows []types.ExitVeloRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		switch {
		case rows[i].EV == nil:
			return false
		case rows[j].EV == nil:
			return true
		default:
			return *rows[i].EV > *rows[j].EV
		}
	})
}
