// Package types contains the JSON row shapes shared by the aggregate
// tables and the HTTP API. Rate columns are pointers so that a group
// with a zero denominator marshals as null rather than zero.
package types

// ScoreRow is one scoreboard line per game.
type ScoreRow struct {
	Game   string `json:"game"`
	Score  string `json:"score"`
	Inning string `json:"inning"` // current inning, or "F" when final
}

// HitterRow is one boxscore hitting leader line.
type HitterRow struct {
	Player  string  `json:"player"`
	Team    string  `json:"team"`
	DKPts   float64 `json:"dk_pts"`
	H       int     `json:"h"`
	R       int     `json:"r"`
	HR      int     `json:"hr"`
	RBI     int     `json:"rbi"`
	SB      int     `json:"sb"`
	Doubles int     `json:"doubles"`
	Triples int     `json:"triples"`
	SO      int     `json:"so"`
	BB      int     `json:"bb"`
}

// PitcherLeaderRow is one boxscore pitching leader line.
type PitcherLeaderRow struct {
	Pitcher string  `json:"pitcher"`
	Team    string  `json:"team"`
	GS      int     `json:"gs"`
	Line    string  `json:"line"` // e.g. "6.0IP 4H 2ER 7K 1BB"
	DKPts   float64 `json:"dk_pts"`
}

// PitcherSummaryRow is the per-pitcher derived summary.
type PitcherSummaryRow struct {
	Pitcher string `json:"pitcher"`
	ID      int    `json:"id"`
	Team    string `json:"team"`
	Line    string `json:"line,omitempty"`

	TBF     int     `json:"tbf"`
	IP      float64 `json:"ip"`
	SO      int     `json:"so"`
	BB      int     `json:"bb"`
	H       int     `json:"h"`
	HR      int     `json:"hr"`
	Pitches int     `json:"pitches"`
	Whiffs  int     `json:"whiffs"`
	Strikes int     `json:"strikes"`

	SwStrPct  *float64 `json:"sw_str_pct"`
	StrikePct *float64 `json:"strike_pct"`
	BallPct   *float64 `json:"ball_pct"`
	GBPct     *float64 `json:"gb_pct"`
	LDPct     *float64 `json:"ld_pct"`
	FBPct     *float64 `json:"fb_pct"`
	BrlPct    *float64 `json:"brl_pct"`

	// Chase and zone-contact rates for both zone rules, kept side by side.
	ChasePct        *float64 `json:"chase_pct"`
	ZoneContactPct  *float64 `json:"zone_contact_pct"`
	ChasePct2       *float64 `json:"chase_pct_coord"`
	ZoneContactPct2 *float64 `json:"zone_contact_pct_coord"`

	CurrentPitcher bool `json:"current_pitcher"`
}

// PitchMixRow is the per-pitcher per-pitch-type summary.
type PitchMixRow struct {
	Pitcher string `json:"pitcher"`
	ID      int    `json:"id"`
	Team    string `json:"team"`
	Pitch   string `json:"pitch"`

	Pitches int `json:"pitches"`
	Whiffs  int `json:"whiffs"`

	Velo  *float64 `json:"velo"`
	Horiz *float64 `json:"horiz"`
	Vert  *float64 `json:"vert"`

	SwStrPct  *float64 `json:"sw_str_pct"`
	StrikePct *float64 `json:"strike_pct"`
	BallPct   *float64 `json:"ball_pct"`
	BrlPct    *float64 `json:"brl_pct"`

	// Deltas against the season movement baseline, when the pitcher and
	// pitch type appear in the baseline table.
	VeloDiff  *float64 `json:"velo_diff"`
	HorizDiff *float64 `json:"horiz_diff"`
	VertDiff  *float64 `json:"vert_diff"`
}

// ExitVeloRow is one batted-ball exit velocity line.
type ExitVeloRow struct {
	Hitter      string   `json:"hitter"`
	Team        string   `json:"team"`
	Pitcher     string   `json:"pitcher"`
	EV          *float64 `json:"ev"`
	Description string   `json:"description"`
}

// SnapshotMeta describes the currently published snapshot.
type SnapshotMeta struct {
	ID         string `json:"id"`
	BuiltAt    string `json:"built_at"` // RFC3339
	AgeSeconds int    `json:"age_seconds"`
	Date       string `json:"date"`
	Games      int    `json:"games"`
	PitchRows  int    `json:"pitch_rows"`
}
