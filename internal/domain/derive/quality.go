package derive

import (
	"math"

	"github.com/mlbdw/livetracker/internal/domain/lookup"
	"github.com/mlbdw/livetracker/internal/domain/model"
)

// Exit velocities rounding below this are always tier 1 ("weak").
const weakSpeedCutoff = 60.0

// Off-table contact above this EV is treated as weak contact rather than
// left unclassified.
const offTableSpeedFloor = 1.0

// classifyQuality joins the batted-ball quality tier from the rounded
// (EV, LA) table and applies the two overrides: sub-60 EV is always weak,
// and a tracked EV with no table match is weak rather than unclassified.
func classifyQuality(row *model.DerivedPitch, tables *lookup.Tables) {
	row.QualityTier = model.TierNone

	if row.LaunchSpeed != nil && row.LaunchAngle != nil {
		speed := math.Round(*row.LaunchSpeed)
		angle := math.Round(*row.LaunchAngle)
		if tier, ok := tables.QualityTier(speed, angle); ok {
			row.QualityTier = tier
		}
	}

	if row.LaunchSpeed != nil {
		if math.Round(*row.LaunchSpeed) < weakSpeedCutoff {
			row.QualityTier = model.TierWeak
		} else if row.QualityTier == model.TierNone && *row.LaunchSpeed > offTableSpeedFloor {
			row.QualityTier = model.TierWeak
		}
	}

	row.IsBarrel = row.QualityTier == model.TierBarrel
	row.IsSolid = row.QualityTier == model.TierSolid
	row.IsFlare = row.QualityTier == model.TierFlare
	row.IsUnder = row.QualityTier == model.TierUnder
	row.IsTopped = row.QualityTier == model.TierTopped
	row.IsWeak = row.QualityTier == model.TierWeak
}
