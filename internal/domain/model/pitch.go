package model

// PitchKey is the composite identity of a thrown pitch. Exactly one
// derived row survives per key after deduplication.
type PitchKey struct {
	GameID      int
	PitcherID   int
	BatterID    int
	Inning      int
	AtBatNumber int
	PitchNumber int
}

// PitchEvent is one flattened play-by-play pitch row. Optional numeric
// readings are pointers so "not reported" stays distinct from zero.
type PitchEvent struct {
	// Game context.
	GameID      int
	GameDate    string
	GameType    string
	GameStatus  string // schedule status at fetch time (I or F)
	VenueID     int
	VenueName   string
	LeagueID    int
	LeagueName  string
	LeagueLevel string
	AwayTeam    string
	AwayTeamID  int
	HomeTeam    string
	HomeTeamID  int

	// Participants.
	PitcherID   int
	PitcherName string
	PitcherHand string // L/R
	BatterID    int
	BatterName  string
	BatterSide  string // L/R

	// Position within the game.
	HalfInning  string // "top" or "bottom"
	Inning      int
	AtBatNumber int
	PitchNumber int

	// Outcome.
	Description     string // call description, e.g. "Swinging Strike"
	PlayType        string
	PlayResult      string // event type, set on the terminal pitch only
	PlayDescription string
	RBI             *int
	AwayScore       *int
	HomeScore       *int
	IsOut           *bool
	InPlay          bool
	Balls           int // count after this pitch
	Strikes         int

	// Pitch identity and physics.
	PitchName    string
	PitchType    string
	ReleaseSpeed *float64
	EndSpeed     *float64
	ZoneTop      *float64
	ZoneBot      *float64
	ZoneWidth    *float64
	ZoneDepth    *float64
	PlateX       *float64 // source pixel coordinates
	PlateY       *float64
	AX           *float64
	AY           *float64
	PfxX         *float64
	PfxZ         *float64
	PX           *float64
	PZ           *float64
	BreakAngle   *float64
	BreakLength  *float64
	BreakY       *float64
	Zone         *int // 1-9 in zone, 10+ out

	// Batted-ball readings, present only when the ball was tracked in play.
	LaunchSpeed *float64
	LaunchAngle *float64
	Trajectory  string // ground_ball, fly_ball, line_drive, popup
	Hardness    string
	HitLocation *int
	HitCoordX   *float64
	HitCoordY   *float64
}

// Key returns the composite pitch identity.
func (p *PitchEvent) Key() PitchKey {
	return PitchKey{
		GameID:      p.GameID,
		PitcherID:   p.PitcherID,
		BatterID:    p.BatterID,
		Inning:      p.Inning,
		AtBatNumber: p.AtBatNumber,
		PitchNumber: p.PitchNumber,
	}
}

// Batted-ball quality tiers, joined from the EV/LA lookup table.
const (
	TierNone   = 0
	TierWeak   = 1
	TierTopped = 2
	TierUnder  = 3
	TierFlare  = 4
	TierSolid  = 5
	TierBarrel = 6
)

// DerivedPitch is a PitchEvent augmented with the derivation pipeline's
// classification flags, affiliation resolution and display names.
type DerivedPitch struct {
	PitchEvent

	// Affiliation resolution (parent organization).
	AwayAffID      int
	AwayAff        string
	HomeAffID      int
	HomeAff        string
	BatterTeam     string
	PitcherTeam    string
	BatterTeamAff  string
	PitcherTeamAff string

	// Display names after collision disambiguation.
	BatterDisplay  string
	PitcherDisplay string

	// Pitch outcome flags.
	PitchThrown bool
	IsStrike    bool
	IsBall      bool
	IsSwStr     bool
	IsCalledStr bool
	Contact     bool
	Swung       bool

	// Plate-appearance terminal flags.
	IsWalk      bool
	IsStrikeout bool
	IsHBP       bool
	BallInPlay  bool
	PA          bool
	AB          bool
	DoublePlay  bool

	// Play results.
	IsHit    bool
	IsSingle bool
	IsDouble bool
	IsTriple bool
	IsHomer  bool

	// Batted-ball trajectory.
	IsGB bool
	IsFB bool
	IsLD bool
	IsPU bool

	// Zone rule A: zone id < 10.
	InZone        bool
	OutZone       bool
	IsChase       bool
	IsZoneSwing   bool
	IsZoneContact bool

	// Zone rule B: plate coordinates against the scaled zone band.
	InZone2        bool
	OutZone2       bool
	IsChase2       bool
	IsZoneSwing2   bool
	IsZoneContact2 bool

	// Batted-ball quality.
	QualityTier int
	IsBarrel    bool
	IsSolid     bool
	IsFlare     bool
	IsUnder     bool
	IsTopped    bool
	IsWeak      bool
}
