package aggregate

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mlbdw/livetracker/internal/domain/lookup"
	"github.com/mlbdw/livetracker/internal/domain/model"
	"github.com/mlbdw/livetracker/internal/domain/types"
)

func TestRate(t *testing.T) {
	Convey("Given a rate computation", t, func() {
		Convey("When the denominator is zero", func() {
			Convey("Then the rate is nil", func() {
				So(rate(3, 0), ShouldBeNil)
			})
		})
		Convey("When the denominator is non-zero", func() {
			Convey("Then the rate is rounded to three decimals", func() {
				got := rate(1, 3)
				So(got, ShouldNotBeNil)
				So(*got, ShouldEqual, 0.333)
			})
		})
	})
}

func TestPitcherSummaries(t *testing.T) {
	Convey("Given a pitcher with three batters faced", t, func() {
		rows := []model.DerivedPitch{
			summaryPitch("Ace Arm", 1, "NYY", func(p *model.DerivedPitch) {
				p.PA = true
				p.IsWalk = true
				p.IsBall = true
				p.PitchThrown = true
			}),
			summaryPitch("Ace Arm", 1, "NYY", func(p *model.DerivedPitch) {
				p.PA = true
				p.IsStrikeout = true
				p.IsStrike = true
				p.IsSwStr = true
				p.PitchThrown = true
			}),
			summaryPitch("Ace Arm", 1, "NYY", func(p *model.DerivedPitch) {
				p.PA = true
				p.IsHit = true
				p.BallInPlay = true
				p.IsStrike = true
				p.PitchThrown = true
			}),
		}

		Convey("When the summary table is built", func() {
			out := PitcherSummaries(rows, map[string]string{"Ace Arm": "1.0IP 1H 0ER 1K 1BB"}, []string{"Ace Arm"})

			Convey("Then counts and innings pitched follow the flag sums", func() {
				So(out, ShouldHaveLength, 1)
				So(out[0].Pitcher, ShouldEqual, "Ace Arm")
				So(out[0].TBF, ShouldEqual, 3)
				So(out[0].SO, ShouldEqual, 1)
				So(out[0].BB, ShouldEqual, 1)
				So(out[0].H, ShouldEqual, 1)
				// Outs = 3 PA - 1 hit - 1 walk = 1; IP = 1/3 rounded.
				So(out[0].IP, ShouldEqual, 0.33)
			})

			Convey("Then rates use pitch and balls-in-play denominators", func() {
				So(*out[0].SwStrPct, ShouldEqual, 0.333)
				So(*out[0].StrikePct, ShouldEqual, 0.667)
				So(*out[0].GBPct, ShouldEqual, 0)
			})

			Convey("Then zone rates with no zone pitches are null", func() {
				So(out[0].ChasePct, ShouldBeNil)
				So(out[0].ZoneContactPct, ShouldBeNil)
			})

			Convey("Then the boxscore line and current flag are joined", func() {
				So(out[0].Line, ShouldEqual, "1.0IP 1H 0ER 1K 1BB")
				So(out[0].CurrentPitcher, ShouldBeTrue)
			})
		})
	})

	Convey("Given two pitchers with different whiff counts", t, func() {
		rows := []model.DerivedPitch{
			summaryPitch("Low Whiff", 1, "BOS", func(p *model.DerivedPitch) {
				p.PitchThrown = true
			}),
			summaryPitch("High Whiff", 2, "NYY", func(p *model.DerivedPitch) {
				p.PitchThrown = true
				p.IsSwStr = true
			}),
		}

		Convey("When the summary table is built", func() {
			out := PitcherSummaries(rows, nil, nil)

			Convey("Then rows sort by whiffs descending", func() {
				So(out[0].Pitcher, ShouldEqual, "High Whiff")
				So(out[1].Pitcher, ShouldEqual, "Low Whiff")
			})
		})
	})
}

func TestCurrentPitchers(t *testing.T) {
	Convey("Given pitches across two pitching teams", t, func() {
		rows := []model.DerivedPitch{
			currentPitch("Starter A", "NYY", "I", 1, 1, 1),
			currentPitch("Starter B", "BOS", "I", 1, 2, 1),
			currentPitch("Reliever A", "NYY", "I", 7, 50, 3),
		}

		Convey("When current pitchers are resolved", func() {
			out := CurrentPitchers(rows)

			Convey("Then each team's chronologically last pitcher is current", func() {
				So(out, ShouldResemble, []string{"Reliever A", "Starter B"})
			})
		})

		Convey("When a team's last pitcher appears in a finished game", func() {
			rows = append(rows, currentPitch("Reliever A", "NYY", "F", 9, 70, 1))
			out := CurrentPitchers(rows)

			Convey("Then that pitcher is excluded", func() {
				So(out, ShouldResemble, []string{"Starter B"})
			})
		})

		Convey("When there are no rows", func() {
			Convey("Then the result is empty", func() {
				So(CurrentPitchers(nil), ShouldBeEmpty)
			})
		})
	})
}

func TestPitchMixSummaries(t *testing.T) {
	// Season baselines are keyed by the type code column, not the
	// display name.
	tables := lookup.NewTables(lookup.WithMovement(map[lookup.MovementKey]lookup.Movement{
		{Pitcher: "Ace Arm", Pitch: "SL"}: {AvgVelo: 85.0, AvgHoriz: 4.0, AvgVert: 1.0},
	}))

	Convey("Given two sliders with tracked movement", t, func() {
		rows := []model.DerivedPitch{
			mixPitch("Ace Arm", "SL", 86.0, 5.0, 2.0, true),
			mixPitch("Ace Arm", "SL", 87.0, 6.0, 3.0, false),
		}

		Convey("When the mix table is built", func() {
			out := PitchMixSummaries(rows, tables)

			Convey("Then rows group and display by type code", func() {
				So(out, ShouldHaveLength, 1)
				So(out[0].Pitch, ShouldEqual, "SL")
			})

			Convey("Then readings are averaged to one decimal", func() {
				So(out, ShouldHaveLength, 1)
				So(out[0].Pitches, ShouldEqual, 2)
				So(out[0].Whiffs, ShouldEqual, 1)
				So(*out[0].Velo, ShouldEqual, 86.5)
				So(*out[0].Horiz, ShouldEqual, 5.5)
				So(*out[0].Vert, ShouldEqual, 2.5)
			})

			Convey("Then baseline deltas join code-to-code", func() {
				So(*out[0].VeloDiff, ShouldEqual, 1.5)
				So(*out[0].HorizDiff, ShouldEqual, 1.5)
				So(*out[0].VertDiff, ShouldEqual, 1.5)
			})
		})
	})

	Convey("Given a pitch with no tracked readings", t, func() {
		row := model.DerivedPitch{}
		row.PitcherDisplay = "Ace Arm"
		row.PitchType = "CH"
		row.PitchName = "Changeup"
		row.PitchThrown = true

		Convey("When the mix table is built", func() {
			out := PitchMixSummaries([]model.DerivedPitch{row}, tables)

			Convey("Then movement columns are null, not zero", func() {
				So(out, ShouldHaveLength, 1)
				So(out[0].Velo, ShouldBeNil)
				So(out[0].VeloDiff, ShouldBeNil)
			})
		})
	})
}

func TestHitterLeaders(t *testing.T) {
	Convey("Given a batting line with a homer and a single", t, func() {
		line := model.BattingLine{
			Player: "Big Bat", Team: "New York Yankees",
			AB: 4, H: 2, HR: 1, R: 2, RBI: 3, BB: 1,
		}
		tables := lookup.NewTables(lookup.WithTeamNames(map[string]string{
			"New York Yankees": "NYY",
		}))

		Convey("When the leader table is built", func() {
			out := HitterLeaders([]model.BattingLine{line}, tables)

			Convey("Then fantasy points follow the classic weights", func() {
				// 1B*3 + HR*10 + BB*2 + R*2 + RBI*2 = 3+10+2+4+6.
				So(out, ShouldHaveLength, 1)
				So(out[0].DKPts, ShouldEqual, 25)
				So(out[0].Team, ShouldEqual, "NYY")
			})
		})
	})
}

func TestPitcherLeaders(t *testing.T) {
	tables := lookup.NewTables()

	Convey("Given a starter and a reliever", t, func() {
		starter := model.PitchingLine{
			Player: "Ace Arm", Team: "NYY", GS: 1,
			IP: 6.0, H: 4, ER: 2, SO: 7, BB: 1, W: 1,
		}
		reliever := model.PitchingLine{Player: "Pen Arm", Team: "NYY", G: 1, IP: 1.0}

		Convey("When the leader table is built", func() {
			out := PitcherLeaders([]model.PitchingLine{starter, reliever}, tables)

			Convey("Then only starters are kept", func() {
				So(out, ShouldHaveLength, 1)
				So(out[0].Pitcher, ShouldEqual, "Ace Arm")
			})

			Convey("Then the line and points are rendered", func() {
				So(out[0].Line, ShouldEqual, "6.0IP 4H 2ER 7K 1BB")
				// 6*2.25 + 7*2 + 4 - 2*2 - 4*0.6 - 1*0.6 = 24.5.
				So(out[0].DKPts, ShouldEqual, 24.5)
			})
		})
	})
}

func TestScoreboard(t *testing.T) {
	tables := lookup.NewTables(lookup.WithTeamNames(map[string]string{
		"New York Yankees": "NYY",
		"Boston Red Sox":   "BOS",
	}))

	Convey("Given a game in the fifth inning", t, func() {
		batting := []model.BattingLine{
			{GameID: 1, Team: "Boston Red Sox", HomeTeam: "New York Yankees", R: 2},
			{GameID: 1, Team: "New York Yankees", HomeTeam: "New York Yankees", R: 3},
		}
		pitching := []model.PitchingLine{
			{GameID: 1, Team: "Boston Red Sox", HomeTeam: "New York Yankees", IP: 4.1},
			{GameID: 1, Team: "New York Yankees", HomeTeam: "New York Yankees", IP: 5.0},
		}

		Convey("When the scoreboard is built", func() {
			out := Scoreboard(batting, pitching, tables)

			Convey("Then the line shows away at home with the slower inning", func() {
				So(out, ShouldResemble, []types.ScoreRow{
					{Game: "BOS @ NYY", Score: "2-3", Inning: "5"},
				})
			})
		})

		Convey("When both teams have nine innings in the books", func() {
			pitching[0].IP = 9.0
			pitching[1].IP = 9.0
			out := Scoreboard(batting, pitching, tables)

			Convey("Then the inning shows final", func() {
				So(out[0].Inning, ShouldEqual, "F")
			})
		})

		Convey("When both teams have eight innings in the books", func() {
			pitching[0].IP = 8.0
			pitching[1].IP = 8.0
			out := Scoreboard(batting, pitching, tables)

			Convey("Then entering the ninth already shows final", func() {
				So(out[0].Inning, ShouldEqual, "F")
			})
		})
	})
}

func TestExitVelos(t *testing.T) {
	Convey("Given batted balls with and without tracked exit velocity", t, func() {
		soft := 88.5
		hard := 104.2
		rows := []model.DerivedPitch{
			evPitch("Slow Roller", &soft, false),
			evPitch("No Track", nil, false),
			evPitch("Big Fly", &hard, true),
		}

		Convey("When exit velocities are extracted", func() {
			out := ExitVelos(rows)

			Convey("Then rows sort hardest first with untracked last", func() {
				So(out, ShouldHaveLength, 3)
				So(out[0].Hitter, ShouldEqual, "Big Fly")
				So(out[1].Hitter, ShouldEqual, "Slow Roller")
				So(out[2].EV, ShouldBeNil)
			})
		})

		Convey("When home runs are extracted", func() {
			out := HomeRuns(rows)

			Convey("Then only homers are kept", func() {
				So(out, ShouldHaveLength, 1)
				So(out[0].Hitter, ShouldEqual, "Big Fly")
			})
		})
	})
}

func summaryPitch(name string, id int, team string, set func(*model.DerivedPitch)) model.DerivedPitch {
	p := model.DerivedPitch{}
	p.PitcherDisplay = name
	p.PitcherID = id
	p.PitcherTeamAff = team
	set(&p)
	return p
}

func currentPitch(name, team, status string, inning, atBat, pitchNum int) model.DerivedPitch {
	p := model.DerivedPitch{}
	p.PitcherDisplay = name
	p.PitcherTeamAff = team
	p.GameStatus = status
	p.Inning = inning
	p.AtBatNumber = atBat
	p.PitchNumber = pitchNum
	return p
}

func mixPitch(name, code string, velo, horiz, vert float64, whiff bool) model.DerivedPitch {
	p := model.DerivedPitch{}
	p.PitcherDisplay = name
	p.PitchType = code
	p.PitchThrown = true
	p.IsSwStr = whiff
	p.IsStrike = true
	p.ReleaseSpeed = &velo
	p.PfxX = &horiz
	p.PfxZ = &vert
	return p
}

func evPitch(hitter string, ev *float64, homer bool) model.DerivedPitch {
	p := model.DerivedPitch{}
	p.BatterDisplay = hitter
	p.BallInPlay = true
	p.IsHomer = homer
	p.LaunchSpeed = ev
	p.PlayDescription = hitter + " puts it in play."
	return p
}
