package derive

import (
	"strconv"

	"github.com/mlbdw/livetracker/internal/domain/model"
)

// disambiguateNames rewrites display names when two distinct player ids
// share one name in the current dataset. Batters and pitchers are handled
// independently; a unique name passes through unchanged.
func disambiguateNames(rows []model.DerivedPitch) {
	batterIDs := make(map[string]map[int]struct{})
	pitcherIDs := make(map[string]map[int]struct{})

	for i := range rows {
		addNameID(batterIDs, rows[i].BatterName, rows[i].BatterID)
		addNameID(pitcherIDs, rows[i].PitcherName, rows[i].PitcherID)
	}

	for i := range rows {
		row := &rows[i]
		if len(batterIDs[row.BatterName]) > 1 {
			row.BatterDisplay = row.BatterName + " - " + strconv.Itoa(row.BatterID)
		} else {
			row.BatterDisplay = row.BatterName
		}
		if len(pitcherIDs[row.PitcherName]) > 1 {
			row.PitcherDisplay = row.PitcherName + " - " + strconv.Itoa(row.PitcherID)
		} else {
			row.PitcherDisplay = row.PitcherName
		}
	}
}

func addNameID(m map[string]map[int]struct{}, name string, id int) {
	if name == "" {
		return
	}
	ids, ok := m[name]
	if !ok {
		ids = make(map[int]struct{}, 1)
		m[name] = ids
	}
	ids[id] = struct{}{}
}
