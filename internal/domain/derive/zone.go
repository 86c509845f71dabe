package derive

import "github.com/mlbdw/livetracker/internal/domain/model"

// ZoneRule names one of the two in-zone determinations. Both rules run on
// every pitch and feed parallel flag families; they answer the same
// question with different inputs and are deliberately not reconciled.
type ZoneRule string

const (
	// ZoneRuleID classifies by the reported zone code (1-9 in zone).
	ZoneRuleID ZoneRule = "zone_id"
	// ZoneRuleCoord classifies by plate pixel coordinates against the
	// batter's scaled zone boundaries.
	ZoneRuleCoord ZoneRule = "plate_coord"
)

// Horizontal pixel band of the strike zone in source plate coordinates.
const (
	plateXMin = 70.0
	plateXMax = 140.0
)

// zoneBoundaryScale converts zone boundary feet to the pixel coordinate
// space used by plate_y.
const zoneBoundaryScale = 100.0

// classifyZoneID applies the zone-code rule. A missing zone code leaves
// both InZone and OutZone false.
func classifyZoneID(row *model.DerivedPitch) {
	if row.Zone != nil {
		row.InZone = *row.Zone < 10
		row.OutZone = *row.Zone > 9
	}
	row.IsChase = row.Swung && !row.InZone
	row.IsZoneSwing = row.Swung && row.InZone
	row.IsZoneContact = row.Contact && row.InZone
}

// classifyZoneCoord applies the plate-coordinate rule. Missing readings
// fail the in-zone test, so OutZone2 is the strict complement of InZone2.
func classifyZoneCoord(row *model.DerivedPitch) {
	inY := row.PlateY != nil && row.ZoneBot != nil && row.ZoneTop != nil &&
		*row.PlateY >= *row.ZoneBot*zoneBoundaryScale &&
		*row.PlateY <= *row.ZoneTop*zoneBoundaryScale
	inX := row.PlateX != nil &&
		*row.PlateX >= plateXMin && *row.PlateX <= plateXMax

	row.InZone2 = inY && inX
	row.OutZone2 = !row.InZone2
	row.IsZoneSwing2 = row.InZone2 && row.Swung
	row.IsChase2 = row.OutZone2 && row.Swung
	row.IsZoneContact2 = row.IsZoneSwing2 && row.Contact
}
