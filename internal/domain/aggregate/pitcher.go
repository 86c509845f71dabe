package aggregate

import (
	"sort"

	"github.com/mlbdw/livetracker/internal/domain/model"
	"github.com/mlbdw/livetracker/internal/domain/types"
)

// pitcherKey groups the summary table.
type pitcherKey struct {
	Name string
	ID   int
	Team string
}

// pitcherSums accumulates count flags for one pitcher.
type pitcherSums struct {
	pitches   int
	strikes   int
	balls     int
	bip       int
	hits      int
	homers    int
	whiffs    int
	gb        int
	ld        int
	fb        int
	barrels   int
	pa        int
	dp        int
	strikeout int
	walks     int

	chases       int
	zoneContacts int
	outZone      int
	inZone       int
	chases2      int
	zoneContacts2 int
	outZone2     int
	inZone2      int
}

// PitcherSummaries builds the per-pitcher summary table, sorted by whiffs
// descending. lines maps a pitcher display name to the boxscore line
// string; current holds the display names of active pitchers.
func PitcherSummaries(rows []model.DerivedPitch, lines map[string]string, current []string) []types.PitcherSummaryRow {
	sums := make(map[pitcherKey]*pitcherSums)
	order := make([]pitcherKey, 0)

	for i := range rows {
		row := &rows[i]
		key := pitcherKey{Name: row.PitcherDisplay, ID: row.PitcherID, Team: row.PitcherTeamAff}
		s, ok := sums[key]
		if !ok {
			s = &pitcherSums{}
			sums[key] = s
			order = append(order, key)
		}
		s.add(row)
	}

	currentSet := make(map[string]struct{}, len(current))
	for _, name := range current {
		currentSet[name] = struct{}{}
	}

	out := make([]types.PitcherSummaryRow, 0, len(order))
	for _, key := range order {
		s := sums[key]

		// Outs and innings pitched are derived from the flag sums; IP is
		// the outs/3 approximation reported to two decimals.
		outs := s.pa - s.hits - s.walks + s.dp
		ip := round2(float64(outs) / 3)

		_, isCurrent := currentSet[key.Name]

		out = append(out, types.PitcherSummaryRow{
			Pitcher:         key.Name,
			ID:              key.ID,
			Team:            key.Team,
			Line:            lines[key.Name],
			TBF:             s.pa,
			IP:              ip,
			SO:              s.strikeout,
			BB:              s.walks,
			H:               s.hits,
			HR:              s.homers,
			Pitches:         s.pitches,
			Whiffs:          s.whiffs,
			Strikes:         s.strikes,
			SwStrPct:        rate(s.whiffs, s.pitches),
			StrikePct:       rate(s.strikes, s.pitches),
			BallPct:         rate(s.balls, s.pitches),
			GBPct:           rate(s.gb, s.bip),
			LDPct:           rate(s.ld, s.bip),
			FBPct:           rate(s.fb, s.bip),
			BrlPct:          rate(s.barrels, s.bip),
			ChasePct:        rate(s.chases, s.outZone),
			ZoneContactPct:  rate(s.zoneContacts, s.inZone),
			ChasePct2:       rate(s.chases2, s.outZone2),
			ZoneContactPct2: rate(s.zoneContacts2, s.inZone2),
			CurrentPitcher:  isCurrent,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Whiffs != out[j].Whiffs {
			return out[i].Whiffs > out[j].Whiffs
		}
		if out[i].Pitcher != out[j].Pitcher {
			return out[i].Pitcher < out[j].Pitcher
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *pitcherSums) add(row *model.DerivedPitch) {
	s.pitches += boolToInt(row.PitchThrown)
	s.strikes += boolToInt(row.IsStrike)
	s.balls += boolToInt(row.IsBall)
	s.bip += boolToInt(row.BallInPlay)
	s.hits += boolToInt(row.IsHit)
	s.homers += boolToInt(row.IsHomer)
	s.whiffs += boolToInt(row.IsSwStr)
	s.gb += boolToInt(row.IsGB)
	s.ld += boolToInt(row.IsLD)
	s.fb += boolToInt(row.IsFB)
	s.barrels += boolToInt(row.IsBarrel)
	s.pa += boolToInt(row.PA)
	s.dp += boolToInt(row.DoublePlay)
	s.strikeout += boolToInt(row.IsStrikeout)
	s.walks += boolToInt(row.IsWalk)

	s.chases += boolToInt(row.IsChase)
	s.zoneContacts += boolToInt(row.IsZoneContact)
	s.outZone += boolToInt(row.OutZone)
	s.inZone += boolToInt(row.InZone)
	s.chases2 += boolToInt(row.IsChase2)
	s.zoneContacts2 += boolToInt(row.IsZoneContact2)
	s.outZone2 += boolToInt(row.OutZone2)
	s.inZone2 += boolToInt(row.InZone2)
}

// CurrentPitchers returns, per pitching team, the display name of the
// pitcher of the chronologically last pitch, excluding anyone who already
// appears in a finished game.
func CurrentPitchers(rows []model.DerivedPitch) []string {
	if len(rows) == 0 {
		return nil
	}

	finished := make(map[string]struct{})
	for i := range rows {
		if rows[i].GameStatus == model.StatusFinal {
			finished[rows[i].PitcherDisplay] = struct{}{}
		}
	}

	ordered := make([]*model.DerivedPitch, len(rows))
	for i := range rows {
		ordered[i] = &rows[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Inning != ordered[j].Inning {
			return ordered[i].Inning < ordered[j].Inning
		}
		if ordered[i].AtBatNumber != ordered[j].AtBatNumber {
			return ordered[i].AtBatNumber < ordered[j].AtBatNumber
		}
		return ordered[i].PitchNumber < ordered[j].PitchNumber
	})

	lastByTeam := make(map[string]string)
	teams := make([]string, 0)
	for _, row := range ordered {
		if _, seen := lastByTeam[row.PitcherTeamAff]; !seen {
			teams = append(teams, row.PitcherTeamAff)
		}
		lastByTeam[row.PitcherTeamAff] = row.PitcherDisplay
	}

	out := make([]string, 0, len(teams))
	for _, team := range teams {
		name := lastByTeam[team]
		if _, done := finished[name]; done {
			continue
		}
		out = append(out, name)
	}
	return out
}
