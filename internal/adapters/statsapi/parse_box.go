package statsapi

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/mlbdw/livetracker/internal/domain/model"
)

// Quality start thresholds.
const (
	qsMinInnings    = 6.0
	qsMaxEarnedRuns = 3
)

// ParseBoxscore flattens a boxscore payload into per-player batting and
// pitching lines for one game. Players without a populated stat block
// for a role are skipped for that role.
func ParseBoxscore(game model.Game, payload *BoxscorePayload) ([]model.BattingLine, []model.PitchingLine) {
	if payload == nil {
		return nil, nil
	}

	leagueName := payload.Teams.Away.Team.League.Name
	batting := make([]model.BattingLine, 0)
	pitching := make([]model.PitchingLine, 0)

	for _, side := range []BoxTeam{payload.Teams.Away, payload.Teams.Home} {
		for _, player := range sortedPlayers(side.Players) {
			if stats, ok := decodeBatting(player.Stats.Batting); ok {
				batting = append(batting, battingLine(game, side, player, stats, leagueName))
			}
			if stats, ok := decodePitching(player.Stats.Pitching); ok {
				pitching = append(pitching, pitchingLine(game, side, player, stats, leagueName))
			}
		}
	}
	return batting, pitching
}

// sortedPlayers orders a side's player map by id for deterministic output.
func sortedPlayers(players map[string]BoxPlayer) []BoxPlayer {
	out := make([]BoxPlayer, 0, len(players))
	for _, p := range players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Person.ID < out[j].Person.ID })
	return out
}

func battingLine(game model.Game, side BoxTeam, player BoxPlayer, stats *BattingStats, leagueName string) model.BattingLine {
	return model.BattingLine{
		GameDate:     game.Date,
		GameID:       game.GameID,
		LeagueName:   leagueName,
		LeagueLevel:  game.LeagueLevel,
		Team:         side.Team.Name,
		TeamID:       side.Team.ID,
		HomeTeam:     game.HomeTeam,
		GameType:     game.GameType,
		VenueID:      game.VenueID,
		LeagueID:     game.LeagueID,
		Player:       player.Person.FullName,
		PlayerID:     player.Person.ID,
		BattingOrder: player.BattingOrder,

		AB:   stats.AtBats,
		R:    stats.Runs,
		H:    stats.Hits,
		D2B:  stats.Doubles,
		T3B:  stats.Triples,
		HR:   stats.HomeRuns,
		RBI:  stats.RBI,
		SB:   stats.StolenBases,
		CS:   stats.CaughtStealing,
		BB:   stats.BaseOnBalls,
		SO:   stats.StrikeOuts,
		IBB:  stats.IntentionalWalks,
		HBP:  stats.HitByPitch,
		SH:   stats.SacBunts,
		SF:   stats.SacFlies,
		GIDP: stats.GroundIntoDoublePlay,
	}
}

func pitchingLine(game model.Game, side BoxTeam, player BoxPlayer, stats *PitchingStats, leagueName string) model.PitchingLine {
	ip, _ := strconv.ParseFloat(stats.InningsPitched, 64)

	return model.PitchingLine{
		GameDate:    game.Date,
		GameID:      game.GameID,
		LeagueName:  leagueName,
		LeagueLevel: game.LeagueLevel,
		Team:        side.Team.Name,
		TeamID:      side.Team.ID,
		HomeTeam:    game.HomeTeam,
		GameType:    game.GameType,
		VenueID:     game.VenueID,
		LeagueID:    game.LeagueID,
		Player:      player.Person.FullName,
		PlayerID:    player.Person.ID,

		W:   stats.Wins,
		L:   stats.Losses,
		G:   stats.GamesPlayed,
		GS:  stats.GamesStarted,
		CG:  stats.CompleteGames,
		SHO: stats.Shutouts,
		SV:  stats.Saves,
		HLD: stats.Holds,
		BFP: stats.BattersFaced,
		IP:  ip,
		H:   stats.Hits,
		ER:  stats.EarnedRuns,
		R:   stats.Runs,
		HR:  stats.HomeRuns,
		SO:  stats.StrikeOuts,
		BB:  stats.BaseOnBalls,
		IBB: stats.IntentionalWalks,
		HBP: stats.HitByPitch,
		WP:  stats.WildPitches,
		BK:  stats.Balks,

		QS: stats.GamesStarted > 0 && ip >= qsMinInnings && stats.EarnedRuns <= qsMaxEarnedRuns,
	}
}

func decodeBatting(raw json.RawMessage) (*BattingStats, bool) {
	if !populated(raw) {
		return nil, false
	}
	var stats BattingStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func decodePitching(raw json.RawMessage) (*PitchingStats, bool) {
	if !populated(raw) {
		return nil, false
	}
	var stats PitchingStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

// populated reports whether a raw stat block holds any fields; the feed
// sends "{}" for roles a player did not fill.
func populated(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 &&
		!bytes.Equal(trimmed, []byte("{}")) &&
		!bytes.Equal(trimmed, []byte("null"))
}
