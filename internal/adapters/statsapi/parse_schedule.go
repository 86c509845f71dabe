package statsapi

import "github.com/mlbdw/livetracker/internal/domain/model"

// sportLevels maps a schedule sport id to its display level.
var sportLevels = map[int]string{
	1:  "MLB",
	11: "AAA",
	12: "AA",
	13: "A+",
	14: "A",
	16: "ROK",
	17: "WIN",
}

// ParseSchedule flattens a schedule payload into games for one date and
// sport id.
func ParseSchedule(payload *SchedulePayload, date string, sportID int) []model.Game {
	if payload == nil {
		return nil
	}

	games := make([]model.Game, 0)
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			games = append(games, model.Game{
				Date:        date,
				GameID:      g.GamePk,
				GameType:    g.GameType,
				VenueID:     g.Venue.ID,
				VenueName:   g.Venue.Name,
				AwayTeam:    g.Teams.Away.Team.Name,
				HomeTeam:    g.Teams.Home.Team.Name,
				LeagueID:    sportID,
				LeagueLevel: sportLevels[sportID],
				Status:      g.Status.CodedGameState,
				FullStatus:  g.Status.AbstractGameState,
				StartTime:   g.GameDate,
			})
		}
	}
	return games
}
