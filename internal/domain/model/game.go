// Package model contains domain models passed between layers.
package model

// Game status codes as reported by the schedule endpoint.
const (
	StatusLive  = "I"
	StatusFinal = "F"
)

// Game represents one scheduled game for the selected date.
type Game struct {
	Date        string // YYYY-MM-DD
	GameID      int
	GameType    string
	VenueID     int
	VenueName   string
	AwayTeam    string
	HomeTeam    string
	LeagueID    int
	LeagueLevel string // MLB, AAA, ...
	Status      string // coded state: I = in progress, F = final
	FullStatus  string
	StartTime   string
}

// Tracked reports whether the game belongs in a refresh cycle.
func (g Game) Tracked() bool {
	return g.Status == StatusLive || g.Status == StatusFinal
}
