package aggregate

import (
	"sort"
	"strconv"

	"github.com/mlbdw/livetracker/internal/domain/lookup"
	"github.com/mlbdw/livetracker/internal/domain/model"
	"github.com/mlbdw/livetracker/internal/domain/types"
)

type teamTotals struct {
	runs    int
	innings float64
}

type gameBoard struct {
	gameID int
	home   string
	teams  []string
	totals map[string]*teamTotals
}

// Scoreboard builds one line per game from the boxscore tables. Runs come
// from the batting lines, innings progressed from the pitching lines; the
// displayed inning is the slower team's completed innings plus one, or
// "F" once that computed inning reaches the ninth.
func Scoreboard(batting []model.BattingLine, pitching []model.PitchingLine, tables *lookup.Tables) []types.ScoreRow {
	boards := make(map[int]*gameBoard)
	order := make([]int, 0)

	board := func(gameID int, homeTeam string) *gameBoard {
		b, ok := boards[gameID]
		if !ok {
			b = &gameBoard{gameID: gameID, home: homeTeam, totals: map[string]*teamTotals{}}
			boards[gameID] = b
			order = append(order, gameID)
		}
		return b
	}
	team := func(b *gameBoard, name string) *teamTotals {
		t, ok := b.totals[name]
		if !ok {
			t = &teamTotals{}
			b.totals[name] = t
			b.teams = append(b.teams, name)
		}
		return t
	}

	for _, line := range batting {
		b := board(line.GameID, line.HomeTeam)
		team(b, line.Team).runs += line.R
	}
	for _, line := range pitching {
		b := board(line.GameID, line.HomeTeam)
		team(b, line.Team).innings += line.IP
	}

	out := make([]types.ScoreRow, 0, len(order))
	for _, gameID := range order {
		b := boards[gameID]
		if len(b.teams) != 2 {
			continue
		}

		away, home := b.teams[0], b.teams[1]
		if away == b.home {
			away, home = home, away
		}

		minInnings := b.totals[away].innings
		if b.totals[home].innings < minInnings {
			minInnings = b.totals[home].innings
		}
		curr := int(minInnings) + 1
		inning := strconv.Itoa(curr)
		if curr >= 9 {
			inning = "F"
		}

		out = append(out, types.ScoreRow{
			Game: tables.NormalizeTeam(away) + " @ " + tables.NormalizeTeam(home),
			Score: strconv.Itoa(b.totals[away].runs) + "-" +
				strconv.Itoa(b.totals[home].runs),
			Inning: inning,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Game < out[j].Game })
	return out
}
