package aggregate

import (
	"fmt"
	"sort"

	"github.com/mlbdw/livetracker/internal/domain/lookup"
	"github.com/mlbdw/livetracker/internal/domain/model"
	"github.com/mlbdw/livetracker/internal/domain/types"
)

// DraftKings classic scoring weights.
const (
	dkSingle = 3.0
	dkDouble = 5.0
	dkTriple = 8.0
	dkHomer  = 10.0
	dkSteal  = 5.0
	dkWalk   = 2.0
	dkHBP    = 2.0
	dkRun    = 2.0
	dkRBI    = 2.0

	dkInning    = 2.25
	dkStrikeout = 2.0
	dkWin       = 4.0
	dkEarnedRun = -2.0
	dkHitAllow  = -0.6
	dkWalkAllow = -0.6
)

// HitterLeaders builds the hitting leader table from boxscore batting
// lines, sorted by fantasy points descending.
func HitterLeaders(lines []model.BattingLine, tables *lookup.Tables) []types.HitterRow {
	out := make([]types.HitterRow, 0, len(lines))
	for _, line := range lines {
		out = append(out, types.HitterRow{
			Player:  line.Player,
			Team:    tables.NormalizeTeam(line.Team),
			DKPts:   HitterDKPts(line),
			H:       line.H,
			R:       line.R,
			HR:      line.HR,
			RBI:     line.RBI,
			SB:      line.SB,
			Doubles: line.D2B,
			Triples: line.T3B,
			SO:      line.SO,
			BB:      line.BB,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DKPts != out[j].DKPts {
			return out[i].DKPts > out[j].DKPts
		}
		return out[i].Player < out[j].Player
	})
	return out
}

// HitterDKPts scores a batting line with DraftKings classic weights.
func HitterDKPts(line model.BattingLine) float64 {
	pts := float64(line.Singles())*dkSingle +
		float64(line.D2B)*dkDouble +
		float64(line.T3B)*dkTriple +
		float64(line.HR)*dkHomer +
		float64(line.SB)*dkSteal +
		float64(line.BB)*dkWalk +
		float64(line.HBP)*dkHBP +
		float64(line.R)*dkRun +
		float64(line.RBI)*dkRBI
	return round2(pts)
}

// PitcherLeaders builds the pitching leader table from boxscore pitching
// lines, keeping starters only, sorted by fantasy points descending.
func PitcherLeaders(lines []model.PitchingLine, tables *lookup.Tables) []types.PitcherLeaderRow {
	out := make([]types.PitcherLeaderRow, 0, len(lines))
	for _, line := range lines {
		if line.GS == 0 {
			continue
		}
		out = append(out, types.PitcherLeaderRow{
			Pitcher: line.Player,
			Team:    tables.NormalizeTeam(line.Team),
			GS:      line.GS,
			Line:    PitcherLine(line),
			DKPts:   PitcherDKPts(line),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DKPts != out[j].DKPts {
			return out[i].DKPts > out[j].DKPts
		}
		return out[i].Pitcher < out[j].Pitcher
	})
	return out
}

// PitcherDKPts scores a pitching line with DraftKings classic weights.
func PitcherDKPts(line model.PitchingLine) float64 {
	pts := line.IP*dkInning +
		float64(line.SO)*dkStrikeout +
		float64(line.W)*dkWin +
		float64(line.ER)*dkEarnedRun +
		float64(line.H)*dkHitAllow +
		float64(line.BB)*dkWalkAllow
	return round2(pts)
}

// PitcherLine renders the compact boxscore line, e.g. "6.0IP 4H 2ER 7K 1BB".
func PitcherLine(line model.PitchingLine) string {
	return fmt.Sprintf("%.1fIP %dH %dER %dK %dBB", line.IP, line.H, line.ER, line.SO, line.BB)
}

// PitcherLines maps every pitcher's player name to the rendered boxscore
// line, for joining onto the summary table.
func PitcherLines(lines []model.PitchingLine) map[string]string {
	out := make(map[string]string, len(lines))
	for _, line := range lines {
		out[line.Player] = PitcherLine(line)
	}
	return out
}
