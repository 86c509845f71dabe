// Package fixture builds synthetic stats-API payloads for tests and the
// local fake feed. The default game covers the interesting outcomes: a
// four-ball walk, a three-strike strikeout and a tracked single.
package fixture

import (
	"encoding/json"

	"github.com/mlbdw/livetracker/internal/adapters/statsapi"
	"github.com/mlbdw/livetracker/internal/domain/model"
)

// Fixed identifiers for the synthetic game.
const (
	GameID    = 745001
	Date      = "2026-08-30"
	AwayTeam  = "Boston Red Sox"
	HomeTeam  = "New York Yankees"
	AwayID    = 111
	HomeID    = 147
	PitcherID = 701
	Pitcher   = "Ace Arm"
	BatterID  = 601
	Batter    = "Lead Off"
)

// Game returns the synthetic game in a live state.
func Game() model.Game {
	return model.Game{
		Date:        Date,
		GameID:      GameID,
		GameType:    "R",
		VenueID:     3313,
		VenueName:   "Yankee Stadium",
		AwayTeam:    AwayTeam,
		HomeTeam:    HomeTeam,
		LeagueID:    1,
		LeagueLevel: "MLB",
		Status:      model.StatusLive,
		FullStatus:  "Live",
		StartTime:   Date + "T17:05:00Z",
	}
}

// SchedulePayload returns a one-game schedule for the synthetic game.
func SchedulePayload() *statsapi.SchedulePayload {
	g := Game()
	sg := statsapi.ScheduleGame{
		GamePk:   g.GameID,
		GameType: g.GameType,
		GameDate: g.StartTime,
	}
	sg.Venue.ID = g.VenueID
	sg.Venue.Name = g.VenueName
	sg.Teams.Away.Team.ID = AwayID
	sg.Teams.Away.Team.Name = g.AwayTeam
	sg.Teams.Home.Team.ID = HomeID
	sg.Teams.Home.Team.Name = g.HomeTeam
	sg.Status.CodedGameState = g.Status
	sg.Status.AbstractGameState = g.FullStatus

	return &statsapi.SchedulePayload{
		Dates: []statsapi.ScheduleDate{{Date: Date, Games: []statsapi.ScheduleGame{sg}}},
	}
}

// BoxscorePayload returns a boxscore with one away hitter and one home
// pitcher.
func BoxscorePayload() *statsapi.BoxscorePayload {
	payload := &statsapi.BoxscorePayload{}

	payload.Teams.Away.Team.ID = AwayID
	payload.Teams.Away.Team.Name = AwayTeam
	payload.Teams.Away.Team.League.Name = "American League"
	payload.Teams.Away.Players = map[string]statsapi.BoxPlayer{
		"ID601": boxHitter(),
	}

	payload.Teams.Home.Team.ID = HomeID
	payload.Teams.Home.Team.Name = HomeTeam
	payload.Teams.Home.Team.League.Name = "American League"
	payload.Teams.Home.Players = map[string]statsapi.BoxPlayer{
		"ID701": boxPitcher(),
	}

	return payload
}

func boxHitter() statsapi.BoxPlayer {
	p := statsapi.BoxPlayer{BattingOrder: "100"}
	p.Person.ID = BatterID
	p.Person.FullName = Batter
	p.Stats.Batting = mustJSON(statsapi.BattingStats{
		AtBats: 2, Hits: 1, Runs: 1, BaseOnBalls: 1, StrikeOuts: 1,
	})
	p.Stats.Pitching = json.RawMessage(`{}`)
	return p
}

func boxPitcher() statsapi.BoxPlayer {
	p := statsapi.BoxPlayer{}
	p.Person.ID = PitcherID
	p.Person.FullName = Pitcher
	p.Stats.Batting = json.RawMessage(`{}`)
	p.Stats.Pitching = mustJSON(statsapi.PitchingStats{
		GamesPlayed: 1, GamesStarted: 1, BattersFaced: 3,
		InningsPitched: "1.0", Hits: 1, StrikeOuts: 1, BaseOnBalls: 1,
	})
	return p
}

// PlayByPlayPayload returns three plate appearances for the same
// matchup: a walk, a strikeout and a tracked line-drive single.
func PlayByPlayPayload() *statsapi.PlayByPlayPayload {
	return &statsapi.PlayByPlayPayload{
		AllPlays: []statsapi.Play{
			walkPlay(0),
			strikeoutPlay(1),
			singlePlay(2),
		},
	}
}

func walkPlay(atBatIndex int) statsapi.Play {
	play := basePlay(atBatIndex, "walk", Batter+" walks.")
	play.PlayEvents = []statsapi.PlayEvent{
		ballPitch(1, 1), ballPitch(2, 2), ballPitch(3, 3), ballPitch(4, 4),
	}
	return play
}

func strikeoutPlay(atBatIndex int) statsapi.Play {
	play := basePlay(atBatIndex, "strikeout", Batter+" strikes out swinging.")
	play.PlayEvents = []statsapi.PlayEvent{
		calledStrike(1, 1), swingingStrike(2, 2), swingingStrike(3, 3),
	}
	return play
}

func singlePlay(atBatIndex int) statsapi.Play {
	play := basePlay(atBatIndex, "single", Batter+" singles on a line drive.")
	play.PlayEvents = []statsapi.PlayEvent{inPlaySingle(1)}
	return play
}

func basePlay(atBatIndex int, eventType, description string) statsapi.Play {
	play := statsapi.Play{}
	play.About.HalfInning = "top"
	play.About.Inning = 1
	play.About.AtBatIndex = atBatIndex
	play.Result.Type = "atBat"
	play.Result.EventType = eventType
	play.Result.Description = description
	play.Matchup.Batter = statsapi.Person{ID: BatterID, FullName: Batter}
	play.Matchup.Pitcher = statsapi.Person{ID: PitcherID, FullName: Pitcher}
	play.Matchup.BatSide.Code = "L"
	play.Matchup.PitchHand.Code = "R"
	return play
}

func ballPitch(number, balls int) statsapi.PlayEvent {
	pe := pitch(number, "Ball", "FF", "Four-Seam Fastball")
	pe.Details.IsBall = true
	pe.Count.Balls = balls
	return pe
}

func calledStrike(number, strikes int) statsapi.PlayEvent {
	pe := pitch(number, "Called Strike", "SL", "Slider")
	pe.Details.IsStrike = true
	pe.Count.Strikes = strikes
	return pe
}

func swingingStrike(number, strikes int) statsapi.PlayEvent {
	pe := pitch(number, "Swinging Strike", "SL", "Slider")
	pe.Details.IsStrike = true
	pe.Count.Strikes = strikes
	return pe
}

func inPlaySingle(number int) statsapi.PlayEvent {
	pe := pitch(number, "In play, no out", "FF", "Four-Seam Fastball")
	pe.Details.IsInPlay = true
	pe.HitData = &statsapi.HitData{
		LaunchSpeed: ptr(98.0),
		LaunchAngle: ptr(12.0),
		Trajectory:  "line_drive",
	}
	return pe
}

func pitch(number int, call, typeCode, typeName string) statsapi.PlayEvent {
	pe := statsapi.PlayEvent{PitchNumber: number}
	pe.Details.Call.Description = call
	pe.Details.Type.Code = typeCode
	pe.Details.Type.Description = typeName
	pe.PitchData = &statsapi.PitchData{
		StartSpeed:       ptr(94.5),
		StrikeZoneTop:    ptr(3.4),
		StrikeZoneBottom: ptr(1.6),
		Zone:             intPtr(5),
	}
	pe.PitchData.Coordinates.X = ptr(110.0)
	pe.PitchData.Coordinates.Y = ptr(180.0)
	pe.PitchData.Coordinates.PfxX = ptr(-4.1)
	pe.PitchData.Coordinates.PfxZ = ptr(8.7)
	return pe
}

func mustJSON(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}

func ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
