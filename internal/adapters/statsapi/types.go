package statsapi

import "encoding/json"

// Wire payloads for the three endpoints this adapter consumes. Only the
// fields the pipeline reads are declared; everything else in the feed is
// ignored by the decoder. Optional readings stay pointers so missing
// tracking data survives as nil.

// SchedulePayload is the /schedule response.
type SchedulePayload struct {
	Dates []ScheduleDate `json:"dates"`
}

// ScheduleDate is one calendar date's games.
type ScheduleDate struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

// ScheduleGame is one scheduled game.
type ScheduleGame struct {
	GamePk   int    `json:"gamePk"`
	GameType string `json:"gameType"`
	GameDate string `json:"gameDate"`
	Venue    struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"venue"`
	Teams struct {
		Away ScheduleSide `json:"away"`
		Home ScheduleSide `json:"home"`
	} `json:"teams"`
	Status struct {
		CodedGameState    string `json:"codedGameState"`
		AbstractGameState string `json:"abstractGameState"`
	} `json:"status"`
}

// ScheduleSide is one side of a scheduled game.
type ScheduleSide struct {
	Team struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
}

// BoxscorePayload is the /game/{id}/boxscore response.
type BoxscorePayload struct {
	Teams struct {
		Away BoxTeam `json:"away"`
		Home BoxTeam `json:"home"`
	} `json:"teams"`
}

// BoxTeam is one team's boxscore side.
type BoxTeam struct {
	Team struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		League struct {
			Name string `json:"name"`
		} `json:"league"`
	} `json:"team"`
	Players map[string]BoxPlayer `json:"players"`
}

// BoxPlayer is one player's boxscore entry. The stat blocks arrive as
// empty objects for players without that role, so they are kept raw and
// decoded only when populated.
type BoxPlayer struct {
	Person struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
	} `json:"person"`
	BattingOrder string `json:"battingOrder"`
	Stats        struct {
		Batting  json.RawMessage `json:"batting"`
		Pitching json.RawMessage `json:"pitching"`
	} `json:"stats"`
}

// BattingStats is a populated boxscore batting block.
type BattingStats struct {
	AtBats               int `json:"atBats"`
	Runs                 int `json:"runs"`
	Hits                 int `json:"hits"`
	Doubles              int `json:"doubles"`
	Triples              int `json:"triples"`
	HomeRuns             int `json:"homeRuns"`
	RBI                  int `json:"rbi"`
	StolenBases          int `json:"stolenBases"`
	CaughtStealing       int `json:"caughtStealing"`
	BaseOnBalls          int `json:"baseOnBalls"`
	StrikeOuts           int `json:"strikeOuts"`
	IntentionalWalks     int `json:"intentionalWalks"`
	HitByPitch           int `json:"hitByPitch"`
	SacBunts             int `json:"sacBunts"`
	SacFlies             int `json:"sacFlies"`
	GroundIntoDoublePlay int `json:"groundIntoDoublePlay"`
}

// PitchingStats is a populated boxscore pitching block. Innings pitched
// arrives as a string in baseball notation ("6.2").
type PitchingStats struct {
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
	GamesPlayed      int    `json:"gamesPlayed"`
	GamesStarted     int    `json:"gamesStarted"`
	CompleteGames    int    `json:"completeGames"`
	Shutouts         int    `json:"shutouts"`
	Saves            int    `json:"saves"`
	Holds            int    `json:"holds"`
	BattersFaced     int    `json:"battersFaced"`
	InningsPitched   string `json:"inningsPitched"`
	Hits             int    `json:"hits"`
	EarnedRuns       int    `json:"earnedRuns"`
	Runs             int    `json:"runs"`
	HomeRuns         int    `json:"homeRuns"`
	StrikeOuts       int    `json:"strikeOuts"`
	BaseOnBalls      int    `json:"baseOnBalls"`
	IntentionalWalks int    `json:"intentionalWalks"`
	HitByPitch       int    `json:"hitByPitch"`
	WildPitches      int    `json:"wildPitches"`
	Balks            int    `json:"balks"`
}

// PlayByPlayPayload is the /game/{id}/playByPlay response.
type PlayByPlayPayload struct {
	AllPlays []Play `json:"allPlays"`
}

// Play is one plate appearance.
type Play struct {
	About struct {
		HalfInning string `json:"halfInning"`
		Inning     int    `json:"inning"`
		AtBatIndex int    `json:"atBatIndex"`
	} `json:"about"`
	Result struct {
		Type        string `json:"type"`
		EventType   string `json:"eventType"`
		Description string `json:"description"`
		RBI         *int   `json:"rbi"`
		AwayScore   *int   `json:"awayScore"`
		HomeScore   *int   `json:"homeScore"`
		IsOut       *bool  `json:"isOut"`
	} `json:"result"`
	Matchup struct {
		Batter    Person `json:"batter"`
		Pitcher   Person `json:"pitcher"`
		BatSide   Code   `json:"batSide"`
		PitchHand Code   `json:"pitchHand"`
	} `json:"matchup"`
	PlayEvents []PlayEvent `json:"playEvents"`
}

// Person is a player reference.
type Person struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

// Code is a coded attribute like bat side.
type Code struct {
	Code string `json:"code"`
}

// PlayEvent is one event within a plate appearance; non-pitch advisories
// carry a details.event and are skipped by the parser.
type PlayEvent struct {
	PitchNumber int `json:"pitchNumber"`
	Details     struct {
		Event string `json:"event"`
		Call  struct {
			Description string `json:"description"`
		} `json:"call"`
		IsInPlay bool `json:"isInPlay"`
		IsStrike bool `json:"isStrike"`
		IsBall   bool `json:"isBall"`
		Type     struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"type"`
	} `json:"details"`
	Count struct {
		Balls   int `json:"balls"`
		Strikes int `json:"strikes"`
	} `json:"count"`
	PitchData *PitchData `json:"pitchData"`
	HitData   *HitData   `json:"hitData"`
}

// PitchData is the tracked pitch physics block.
type PitchData struct {
	StartSpeed       *float64 `json:"startSpeed"`
	EndSpeed         *float64 `json:"endSpeed"`
	StrikeZoneTop    *float64 `json:"strikeZoneTop"`
	StrikeZoneBottom *float64 `json:"strikeZoneBottom"`
	StrikeZoneWidth  *float64 `json:"strikeZoneWidth"`
	StrikeZoneDepth  *float64 `json:"strikeZoneDepth"`
	Zone             *int     `json:"zone"`
	Coordinates      struct {
		X    *float64 `json:"x"`
		Y    *float64 `json:"y"`
		AX   *float64 `json:"aX"`
		AY   *float64 `json:"aY"`
		PfxX *float64 `json:"pfxX"`
		PfxZ *float64 `json:"pfxZ"`
		PX   *float64 `json:"pX"`
		PZ   *float64 `json:"pZ"`
	} `json:"coordinates"`
	Breaks struct {
		BreakAngle  *float64 `json:"breakAngle"`
		BreakLength *float64 `json:"breakLength"`
		BreakY      *float64 `json:"breakY"`
	} `json:"breaks"`
}

// HitData is the tracked batted-ball block.
type HitData struct {
	LaunchSpeed *float64 `json:"launchSpeed"`
	LaunchAngle *float64 `json:"launchAngle"`
	Trajectory  string   `json:"trajectory"`
	Hardness    string   `json:"hardness"`
	Location    *int     `json:"location"`
	Coordinates struct {
		CoordX *float64 `json:"coordX"`
		CoordY *float64 `json:"coordY"`
	} `json:"coordinates"`
}
