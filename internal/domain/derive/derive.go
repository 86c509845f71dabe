package derive

import (
	"strings"

	"github.com/mlbdw/livetracker/internal/domain/lookup"
	"github.com/mlbdw/livetracker/internal/domain/model"
)

// Result is the fully derived pitch table for one refresh cycle.
type Result struct {
	Rows []model.DerivedPitch

	// Duplicates counts input rows suppressed by composite-key dedupe.
	Duplicates int
}

// Derive runs the full pipeline over a cycle's pitch events: per-row
// classification against the lookup tables, name-collision handling, and
// last-seen deduplication on the composite pitch key. It is a pure
// function of its inputs; an empty input yields an empty result.
func Derive(events []model.PitchEvent, tables *lookup.Tables) Result {
	if len(events) == 0 {
		return Result{}
	}

	rows := make([]model.DerivedPitch, 0, len(events))
	index := make(map[model.PitchKey]int, len(events))
	duplicates := 0

	for i := range events {
		row := model.DerivedPitch{PitchEvent: events[i]}
		classifyRow(&row, tables)

		// Last-seen wins: a repeated key replaces the earlier row in place.
		key := row.Key()
		if at, seen := index[key]; seen {
			rows[at] = row
			duplicates++
			continue
		}
		index[key] = len(rows)
		rows = append(rows, row)
	}

	disambiguateNames(rows)

	return Result{Rows: rows, Duplicates: duplicates}
}

// classifyRow applies every per-row rule. Rules are independent of one
// another except where flags feed later rules (swing feeds chase, etc.).
func classifyRow(row *model.DerivedPitch, tables *lookup.Tables) {
	resolveAffiliation(row, tables)
	classifyOutcome(row)
	classifyTerminal(row)
	classifyTrajectory(row)
	classifyZoneID(row)
	classifyZoneCoord(row)
	classifyQuality(row, tables)
	resolveTeamsOfRecord(row)
	classifyDoublePlay(row)
}

// resolveAffiliation maps both team ids through the two-step affiliate
// lookup. Unresolved ids degrade to zero values.
func resolveAffiliation(row *model.DerivedPitch, tables *lookup.Tables) {
	if id, abbrev, ok := tables.ParentOrg(row.AwayTeamID); ok {
		row.AwayAffID = id
		row.AwayAff = abbrev
	}
	if id, abbrev, ok := tables.ParentOrg(row.HomeTeamID); ok {
		row.HomeAffID = id
		row.HomeAff = abbrev
	}
}

// resolveTeamsOfRecord assigns batting and pitching teams from the half
// inning: home bats in the bottom, away in the top.
func resolveTeamsOfRecord(row *model.DerivedPitch) {
	if row.HalfInning == "bottom" {
		row.BatterTeam = row.HomeTeam
		row.PitcherTeam = row.AwayTeam
		row.BatterTeamAff = row.HomeAff
		row.PitcherTeamAff = row.AwayAff
		return
	}
	row.BatterTeam = row.AwayTeam
	row.PitcherTeam = row.HomeTeam
	row.BatterTeamAff = row.AwayAff
	row.PitcherTeamAff = row.HomeAff
}

// classifyDoublePlay flags terminal pitches whose play description
// mentions a double play.
func classifyDoublePlay(row *model.DerivedPitch) {
	row.DoublePlay = row.PA &&
		strings.Contains(strings.ToLower(row.PlayDescription), "double play")
}
