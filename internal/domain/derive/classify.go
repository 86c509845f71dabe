// Package derive implements the per-pitch derivation pipeline: outcome
// classification, zone determination, batted-ball quality, team-of-record
// resolution, name-collision handling and composite-key deduplication.
package derive

import "github.com/mlbdw/livetracker/internal/domain/model"

// stringSet is a membership set over call descriptions or event types.
type stringSet map[string]struct{}

func newSet(items ...string) stringSet {
	s := make(stringSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// Fixed outcome membership sets. A description absent from every set is a
// non-event (mid-play advisory) and leaves all flags false.
var (
	pitchThrownSet = newSet(
		"In play, out(s)", "Swinging Strike", "Ball", "Foul",
		"In play, no out", "Called Strike", "Foul Tip", "In play, run(s)",
		"Hit By Pitch", "Ball In Dirt", "Pitchout",
		"Swinging Strike (Blocked)", "Foul Bunt", "Missed Bunt",
		"Foul Pitchout", "Intent Ball", "Swinging Pitchout",
	)

	strikeSet = newSet(
		"Swinging Strike", "Foul", "Called Strike", "Foul Tip",
		"Swinging Strike (Blocked)",
		"Automatic Strike - Batter Pitch Timer Violation",
		"Foul Bunt", "Automatic Strike - Batter Timeout Violation",
		"Missed Bunt", "Automatic Strike", "Foul Pitchout",
		"Swinging Pitchout",
	)

	ballSet = newSet(
		"Ball", "Hit By Pitch",
		"Automatic Ball - Pitcher Pitch Timer Violation", "Ball In Dirt",
		"Pitchout", "Automatic Ball - Intentional", "Automatic Ball",
		"Automatic Ball - Defensive Shift Violation",
		"Automatic Ball - Catcher Pitch Timer Violation", "Intent Ball",
	)

	swingingStrikeSet = newSet(
		"Swinging Strike", "Foul Tip", "Swinging Strike (Blocked)",
		"Missed Bunt",
	)

	contactSet = newSet(
		"Foul", "In play, no out", "In play, out(s)", "Foul Pitchout",
		"In play, run(s)",
	)

	swingSet = newSet(
		"Swinging Strike", "Foul", "In play, no out", "In play, out(s)",
		"In play, run(s)", "Swinging Strike (Blocked)", "Foul Pitchout",
	)

	hitResultSet = newSet("single", "double", "triple", "home_run")

	atBatResultSet = newSet(
		"field_out", "double", "strikeout", "single",
		"grounded_into_double_play", "home_run", "fielders_choice",
		"force_out", "double_play", "triple", "field_error",
		"fielders_choice_out", "strikeout_double_play", "other_out",
		"sac_fly_double_play", "triple_play",
	)
)

// pitchNameRemap folds variant pitch names into their display family.
var pitchNameRemap = map[string]string{
	"Two-Seam Fastball": "Sinker",
	"Slow Curve":        "Curveball",
	"Knuckle Curve":     "Curveball",
}

const hitByPitchDescription = "Hit By Pitch"

// classifyOutcome sets the description-driven flags on row.
func classifyOutcome(row *model.DerivedPitch) {
	desc := row.Description

	row.PitchThrown = pitchThrownSet.has(desc)
	row.IsStrike = strikeSet.has(desc)
	row.IsBall = ballSet.has(desc)
	row.IsSwStr = swingingStrikeSet.has(desc)
	row.IsCalledStr = desc == "Called Strike"
	row.Contact = contactSet.has(desc)
	row.Swung = swingSet.has(desc)

	if mapped, ok := pitchNameRemap[row.PitchName]; ok {
		row.PitchName = mapped
	}
}

// classifyTerminal sets the plate-appearance-ending flags from count
// state and ball-in-play status.
func classifyTerminal(row *model.DerivedPitch) {
	row.IsWalk = row.Balls == 4
	row.IsStrikeout = row.Strikes == 3
	row.BallInPlay = row.InPlay
	row.IsHBP = row.Description == hitByPitchDescription
	row.PA = row.IsWalk || row.IsStrikeout || row.BallInPlay || row.IsHBP

	res := row.PlayResult
	row.IsHit = row.PA && hitResultSet.has(res)
	row.IsSingle = row.PA && res == "single"
	row.IsDouble = row.PA && res == "double"
	row.IsTriple = row.PA && res == "triple"
	row.IsHomer = row.PA && res == "home_run"
	row.AB = row.PA && atBatResultSet.has(res)
}

// classifyTrajectory sets the batted-ball type flags; an unknown or
// missing trajectory leaves all four false.
func classifyTrajectory(row *model.DerivedPitch) {
	switch row.Trajectory {
	case "ground_ball":
		row.IsGB = true
	case "fly_ball":
		row.IsFB = true
	case "line_drive":
		row.IsLD = true
	case "popup":
		row.IsPU = true
	}
}
