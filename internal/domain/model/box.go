package model

// BattingLine is one flattened boxscore batting row.
type BattingLine struct {
	GameDate     string
	GameID       int
	LeagueName   string
	LeagueLevel  string
	Team         string
	TeamID       int
	HomeTeam     string
	GameType     string
	VenueID      int
	LeagueID     int
	Player       string
	PlayerID     int
	BattingOrder string

	AB   int
	R    int
	H    int
	D2B  int
	T3B  int
	HR   int
	RBI  int
	SB   int
	CS   int
	BB   int
	SO   int
	IBB  int
	HBP  int
	SH   int
	SF   int
	GIDP int
}

// Singles derives 1B from the counting stats.
func (b BattingLine) Singles() int {
	return b.H - b.D2B - b.T3B - b.HR
}

// PitchingLine is one flattened boxscore pitching row.
type PitchingLine struct {
	GameDate    string
	GameID      int
	LeagueName  string
	LeagueLevel string
	Team        string
	TeamID      int
	HomeTeam    string
	GameType    string
	VenueID     int
	LeagueID    int
	Player      string
	PlayerID    int

	W   int
	L   int
	G   int
	GS  int
	CG  int
	SHO int
	SV  int
	HLD int
	BFP int
	IP  float64
	H   int
	ER  int
	R   int
	HR  int
	SO  int
	BB  int
	IBB int
	HBP int
	WP  int
	BK  int

	// QS marks a quality start: GS>0, IP>=6 and ER<=3.
	QS bool
}
