package statsapi

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mlbdw/livetracker/internal/domain/model"
)

const scheduleJSON = `{
  "dates": [{
    "date": "2026-08-30",
    "games": [{
      "gamePk": 745001,
      "gameType": "R",
      "gameDate": "2026-08-30T17:05:00Z",
      "venue": {"id": 3313, "name": "Yankee Stadium"},
      "teams": {
        "away": {"team": {"id": 111, "name": "Boston Red Sox"}},
        "home": {"team": {"id": 147, "name": "New York Yankees"}}
      },
      "status": {"codedGameState": "I", "abstractGameState": "Live"}
    }]
  }]
}`

const boxscoreJSON = `{
  "teams": {
    "away": {
      "team": {"id": 111, "name": "Boston Red Sox", "league": {"name": "American League"}},
      "players": {
        "ID601": {
          "person": {"id": 601, "fullName": "Lead Off"},
          "battingOrder": "100",
          "stats": {
            "batting": {"atBats": 4, "hits": 2, "doubles": 1, "runs": 1, "rbi": 1},
            "pitching": {}
          }
        }
      }
    },
    "home": {
      "team": {"id": 147, "name": "New York Yankees", "league": {"name": "American League"}},
      "players": {
        "ID701": {
          "person": {"id": 701, "fullName": "Ace Arm"},
          "stats": {
            "batting": {},
            "pitching": {"gamesStarted": 1, "inningsPitched": "6.0", "earnedRuns": 2, "hits": 4, "strikeOuts": 7, "baseOnBalls": 1}
          }
        }
      }
    }
  }
}`

const pbpJSON = `{
  "allPlays": [{
    "about": {"halfInning": "top", "inning": 1, "atBatIndex": 0},
    "result": {"type": "atBat", "eventType": "single", "description": "Lead Off singles on a line drive.", "rbi": 0, "isOut": false},
    "matchup": {
      "batter": {"id": 601, "fullName": "Lead Off"},
      "pitcher": {"id": 701, "fullName": "Ace Arm"},
      "batSide": {"code": "L"},
      "pitchHand": {"code": "R"}
    },
    "playEvents": [
      {"details": {"event": "Stolen Base 2B", "isInPlay": false}},
      {
        "pitchNumber": 1,
        "details": {
          "call": {"description": "In play, no out"},
          "isInPlay": true,
          "isStrike": true,
          "type": {"code": "FF", "description": "Four-Seam Fastball"}
        },
        "count": {"balls": 0, "strikes": 0},
        "pitchData": {
          "startSpeed": 95.2,
          "strikeZoneTop": 3.4,
          "strikeZoneBottom": 1.6,
          "zone": 5,
          "coordinates": {"x": 110.0, "y": 180.0, "pfxX": -4.1, "pfxZ": 8.7}
        },
        "hitData": {
          "launchSpeed": 98.0,
          "launchAngle": 12.0,
          "trajectory": "line_drive",
          "coordinates": {"coordX": 120.5, "coordY": 90.2}
        }
      }
    ]
  }]
}`

func testGame() model.Game {
	return model.Game{
		Date:        "2026-08-30",
		GameID:      745001,
		GameType:    "R",
		VenueID:     3313,
		VenueName:   "Yankee Stadium",
		AwayTeam:    "Boston Red Sox",
		HomeTeam:    "New York Yankees",
		LeagueID:    1,
		LeagueLevel: "MLB",
		Status:      model.StatusLive,
	}
}

func TestParseSchedule(t *testing.T) {
	Convey("Given a schedule payload", t, func() {
		var payload SchedulePayload
		So(json.Unmarshal([]byte(scheduleJSON), &payload), ShouldBeNil)

		Convey("When the schedule is parsed", func() {
			games := ParseSchedule(&payload, "2026-08-30", 1)

			Convey("Then games carry status, teams and level", func() {
				So(games, ShouldHaveLength, 1)
				So(games[0].GameID, ShouldEqual, 745001)
				So(games[0].Status, ShouldEqual, model.StatusLive)
				So(games[0].AwayTeam, ShouldEqual, "Boston Red Sox")
				So(games[0].HomeTeam, ShouldEqual, "New York Yankees")
				So(games[0].LeagueLevel, ShouldEqual, "MLB")
				So(games[0].Tracked(), ShouldBeTrue)
			})
		})
	})
}

func TestParseBoxscore(t *testing.T) {
	Convey("Given a boxscore payload with one hitter and one pitcher", t, func() {
		var payload BoxscorePayload
		So(json.Unmarshal([]byte(boxscoreJSON), &payload), ShouldBeNil)

		Convey("When the boxscore is parsed", func() {
			batting, pitching := ParseBoxscore(testGame(), &payload)

			Convey("Then empty stat blocks are skipped per role", func() {
				So(batting, ShouldHaveLength, 1)
				So(pitching, ShouldHaveLength, 1)
			})

			Convey("Then the batting line is flattened", func() {
				So(batting[0].Player, ShouldEqual, "Lead Off")
				So(batting[0].Team, ShouldEqual, "Boston Red Sox")
				So(batting[0].H, ShouldEqual, 2)
				So(batting[0].D2B, ShouldEqual, 1)
				So(batting[0].Singles(), ShouldEqual, 1)
				So(batting[0].LeagueName, ShouldEqual, "American League")
			})

			Convey("Then innings pitched and quality start are derived", func() {
				So(pitching[0].Player, ShouldEqual, "Ace Arm")
				So(pitching[0].IP, ShouldEqual, 6.0)
				So(pitching[0].QS, ShouldBeTrue)
			})
		})
	})
}

func TestParsePlayByPlay(t *testing.T) {
	Convey("Given a play-by-play payload with an advisory and a pitch", t, func() {
		var box BoxscorePayload
		So(json.Unmarshal([]byte(boxscoreJSON), &box), ShouldBeNil)
		var pbp PlayByPlayPayload
		So(json.Unmarshal([]byte(pbpJSON), &pbp), ShouldBeNil)

		Convey("When the feed is parsed", func() {
			events, statcast := ParsePlayByPlay(testGame(), &box, &pbp, "MLB")

			Convey("Then advisories are skipped and pitches kept", func() {
				So(events, ShouldHaveLength, 1)
			})

			Convey("Then Statcast tracking is detected from start speed", func() {
				So(statcast, ShouldBeTrue)
			})

			Convey("Then game, matchup and pitch context are flattened", func() {
				e := events[0]
				So(e.GameID, ShouldEqual, 745001)
				So(e.PitcherName, ShouldEqual, "Ace Arm")
				So(e.BatterName, ShouldEqual, "Lead Off")
				So(e.AtBatNumber, ShouldEqual, 1)
				So(e.PitchNumber, ShouldEqual, 1)
				So(e.InPlay, ShouldBeTrue)
				So(e.PitchName, ShouldEqual, "Four-Seam Fastball")
				So(*e.ReleaseSpeed, ShouldEqual, 95.2)
				So(*e.Zone, ShouldEqual, 5)
				So(*e.PlateX, ShouldEqual, 110.0)
				So(*e.LaunchSpeed, ShouldEqual, 98.0)
				So(e.Trajectory, ShouldEqual, "line_drive")
				So(e.AwayTeamID, ShouldEqual, 111)
				So(e.HomeTeamID, ShouldEqual, 147)
			})
		})
	})

	Convey("Given a feed without tracked pitch data", t, func() {
		pbp := PlayByPlayPayload{AllPlays: []Play{{PlayEvents: []PlayEvent{{PitchNumber: 1}}}}}

		Convey("When the feed is parsed", func() {
			events, statcast := ParsePlayByPlay(testGame(), nil, &pbp, "MLB")

			Convey("Then the pitch survives without Statcast tracking", func() {
				So(events, ShouldHaveLength, 1)
				So(statcast, ShouldBeFalse)
			})
		})
	})
}
