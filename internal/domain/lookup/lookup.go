// Package lookup holds the static reference tables joined by the
// derivation pipeline. Tables are built once and treated as immutable;
// the pipeline receives them explicitly so tests can substitute values.
package lookup

// MovementKey identifies a season pitch-movement baseline row.
type MovementKey struct {
	Pitcher string
	Pitch   string // type code, e.g. "SL"
}

// Movement is a season-average movement baseline for one pitch type.
type Movement struct {
	AvgVelo  float64
	AvgHoriz float64
	AvgVert  float64
}

// QualityKey is a rounded (exit velocity, launch angle) pair.
type QualityKey struct {
	Speed float64
	Angle float64
}

// Tables bundles every static mapping used by the pipeline.
type Tables struct {
	teamNames    map[string]string // full team name -> display abbrev
	leagueLevels map[string]string // league name -> level label
	affParent    map[int]int       // team id -> parent org id
	affAbbrev    map[int]string    // parent org id -> parent abbrev
	teamAbbrevs  map[string]string // team name -> team abbrev
	playerNames  map[int]string    // player id -> canonical name
	movement     map[MovementKey]Movement
	quality      map[QualityKey]int // rounded (EV, LA) -> tier 1..6
}

// Option populates a table during construction.
type Option func(*Tables)

// WithTeamNames sets the team name normalization table.
func WithTeamNames(m map[string]string) Option {
	return func(t *Tables) { t.teamNames = m }
}

// WithLeagueLevels sets the league level table.
func WithLeagueLevels(m map[string]string) Option {
	return func(t *Tables) { t.leagueLevels = m }
}

// WithAffiliates sets the team -> parent org id and parent abbrev tables.
func WithAffiliates(parent map[int]int, abbrev map[int]string) Option {
	return func(t *Tables) {
		t.affParent = parent
		t.affAbbrev = abbrev
	}
}

// WithTeamAbbrevs sets the team name -> abbrev table.
func WithTeamAbbrevs(m map[string]string) Option {
	return func(t *Tables) { t.teamAbbrevs = m }
}

// WithPlayerNames sets the player id lookup table.
func WithPlayerNames(m map[int]string) Option {
	return func(t *Tables) { t.playerNames = m }
}

// WithMovement sets the pitch-movement baseline table.
func WithMovement(m map[MovementKey]Movement) Option {
	return func(t *Tables) { t.movement = m }
}

// WithQuality sets the batted-ball quality tier table.
func WithQuality(m map[QualityKey]int) Option {
	return func(t *Tables) { t.quality = m }
}

// NewTables builds a Tables from options. Unset tables are empty, which
// makes every lookup degrade to its zero value rather than fail.
func NewTables(opts ...Option) *Tables {
	t := &Tables{
		teamNames:    map[string]string{},
		leagueLevels: map[string]string{},
		affParent:    map[int]int{},
		affAbbrev:    map[int]string{},
		teamAbbrevs:  map[string]string{},
		playerNames:  map[int]string{},
		movement:     map[MovementKey]Movement{},
		quality:      map[QualityKey]int{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NormalizeTeam maps a full team name to its display abbreviation,
// returning the input unchanged when unmapped.
func (t *Tables) NormalizeTeam(name string) string {
	if abbrev, ok := t.teamNames[name]; ok {
		return abbrev
	}
	return name
}

// Level returns the level label for a league name, or "" when unknown.
func (t *Tables) Level(league string) string {
	return t.leagueLevels[league]
}

// ParentOrg resolves a team id to its parent organization id and abbrev.
// Unresolved ids return (0, "", false); callers degrade, never fail.
func (t *Tables) ParentOrg(teamID int) (int, string, bool) {
	parent, ok := t.affParent[teamID]
	if !ok {
		return 0, "", false
	}
	return parent, t.affAbbrev[parent], true
}

// PlayerName returns the canonical name for a player id, or "" when unknown.
func (t *Tables) PlayerName(id int) string {
	return t.playerNames[id]
}

// MovementBaseline returns the season movement baseline for a pitcher's
// pitch type.
func (t *Tables) MovementBaseline(pitcher, pitch string) (Movement, bool) {
	m, ok := t.movement[MovementKey{Pitcher: pitcher, Pitch: pitch}]
	return m, ok
}

// QualityTier returns the raw tier for a rounded (EV, LA) pair.
func (t *Tables) QualityTier(speed, angle float64) (int, bool) {
	tier, ok := t.quality[QualityKey{Speed: speed, Angle: angle}]
	return tier, ok
}
