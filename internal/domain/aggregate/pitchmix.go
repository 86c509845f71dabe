package aggregate

import (
	"sort"

	"github.com/mlbdw/livetracker/internal/domain/lookup"
	"github.com/mlbdw/livetracker/internal/domain/model"
	"github.com/mlbdw/livetracker/internal/domain/types"
)

type mixKey struct {
	Name string
	ID   int
	Team string
	Code string
}

type mixSums struct {
	pitches int
	whiffs  int
	strikes int
	balls   int
	bip     int
	barrels int

	velos  []float64
	horizs []float64
	verts  []float64
}

// PitchMixSummaries builds the per-pitcher per-pitch-type table, sorted
// by pitcher name then pitch count descending. Grouping and the season
// baseline join both use the pitch type code ("FF", "SL"), matching the
// code-keyed movement table. Movement averages skip unreported readings;
// baseline deltas are filled when the season table has the pitcher's
// pitch type.
func PitchMixSummaries(rows []model.DerivedPitch, tables *lookup.Tables) []types.PitchMixRow {
	sums := make(map[mixKey]*mixSums)
	order := make([]mixKey, 0)

	for i := range rows {
		row := &rows[i]
		if !row.PitchThrown || row.PitchType == "" {
			continue
		}
		key := mixKey{Name: row.PitcherDisplay, ID: row.PitcherID, Team: row.PitcherTeamAff, Code: row.PitchType}
		s, ok := sums[key]
		if !ok {
			s = &mixSums{}
			sums[key] = s
			order = append(order, key)
		}
		s.pitches++
		s.whiffs += boolToInt(row.IsSwStr)
		s.strikes += boolToInt(row.IsStrike)
		s.balls += boolToInt(row.IsBall)
		s.bip += boolToInt(row.BallInPlay)
		s.barrels += boolToInt(row.IsBarrel)
		if row.ReleaseSpeed != nil {
			s.velos = append(s.velos, *row.ReleaseSpeed)
		}
		if row.PfxX != nil {
			s.horizs = append(s.horizs, *row.PfxX)
		}
		if row.PfxZ != nil {
			s.verts = append(s.verts, *row.PfxZ)
		}
	}

	out := make([]types.PitchMixRow, 0, len(order))
	for _, key := range order {
		s := sums[key]

		velo := roundMean(s.velos)
		horiz := roundMean(s.horizs)
		vert := roundMean(s.verts)

		mix := types.PitchMixRow{
			Pitcher:   key.Name,
			ID:        key.ID,
			Team:      key.Team,
			Pitch:     key.Code,
			Pitches:   s.pitches,
			Whiffs:    s.whiffs,
			Velo:      velo,
			Horiz:     horiz,
			Vert:      vert,
			SwStrPct:  rate(s.whiffs, s.pitches),
			StrikePct: rate(s.strikes, s.pitches),
			BallPct:   rate(s.balls, s.pitches),
			BrlPct:    rate(s.barrels, s.bip),
		}

		if base, ok := tables.MovementBaseline(key.Name, key.Code); ok {
			if velo != nil {
				mix.VeloDiff = ptr(round1(*velo - base.AvgVelo))
			}
			if horiz != nil {
				mix.HorizDiff = ptr(round1(*horiz - base.AvgHoriz))
			}
			if vert != nil {
				mix.VertDiff = ptr(round1(*vert - base.AvgVert))
			}
		}

		out = append(out, mix)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pitcher != out[j].Pitcher {
			return out[i].Pitcher < out[j].Pitcher
		}
		if out[i].Pitches != out[j].Pitches {
			return out[i].Pitches > out[j].Pitches
		}
		return out[i].Pitch < out[j].Pitch
	})
	return out
}

func roundMean(values []float64) *float64 {
	m := mean(values)
	if m == nil {
		return nil
	}
	return ptr(round1(*m))
}
