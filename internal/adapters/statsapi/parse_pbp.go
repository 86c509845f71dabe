package statsapi

import "github.com/mlbdw/livetracker/internal/domain/model"

// ParsePlayByPlay flattens a play-by-play payload into one pitch event
// per thrown pitch, skipping non-pitch advisories. The boolean result
// reports whether the game carries Statcast tracking, detected as any
// pitch with a start speed. Team and league context comes from the
// boxscore payload when available.
func ParsePlayByPlay(game model.Game, box *BoxscorePayload, pbp *PlayByPlayPayload, leagueLevel string) ([]model.PitchEvent, bool) {
	if pbp == nil {
		return nil, false
	}

	var leagueName string
	var awayTeam, homeTeam string
	var awayTeamID, homeTeamID int
	if box != nil {
		leagueName = box.Teams.Away.Team.League.Name
		awayTeam = box.Teams.Away.Team.Name
		awayTeamID = box.Teams.Away.Team.ID
		homeTeam = box.Teams.Home.Team.Name
		homeTeamID = box.Teams.Home.Team.ID
	}

	events := make([]model.PitchEvent, 0)
	statcast := false

	for _, play := range pbp.AllPlays {
		for _, pe := range play.PlayEvents {
			// Advisories (pitching changes, stolen bases, injuries) carry a
			// details.event and are not pitches.
			if pe.Details.Event != "" {
				continue
			}

			event := model.PitchEvent{
				GameID:      game.GameID,
				GameDate:    game.Date,
				GameType:    game.GameType,
				GameStatus:  game.Status,
				VenueID:     game.VenueID,
				VenueName:   game.VenueName,
				LeagueID:    game.LeagueID,
				LeagueName:  leagueName,
				LeagueLevel: leagueLevel,
				AwayTeam:    awayTeam,
				AwayTeamID:  awayTeamID,
				HomeTeam:    homeTeam,
				HomeTeamID:  homeTeamID,

				PitcherID:   play.Matchup.Pitcher.ID,
				PitcherName: play.Matchup.Pitcher.FullName,
				PitcherHand: play.Matchup.PitchHand.Code,
				BatterID:    play.Matchup.Batter.ID,
				BatterName:  play.Matchup.Batter.FullName,
				BatterSide:  play.Matchup.BatSide.Code,

				HalfInning:  play.About.HalfInning,
				Inning:      play.About.Inning,
				AtBatNumber: play.About.AtBatIndex + 1,
				PitchNumber: pe.PitchNumber,

				Description:     pe.Details.Call.Description,
				PlayType:        play.Result.Type,
				PlayResult:      play.Result.EventType,
				PlayDescription: play.Result.Description,
				RBI:             play.Result.RBI,
				AwayScore:       play.Result.AwayScore,
				HomeScore:       play.Result.HomeScore,
				IsOut:           play.Result.IsOut,
				InPlay:          pe.Details.IsInPlay,
				Balls:           pe.Count.Balls,
				Strikes:         pe.Count.Strikes,

				PitchName: pe.Details.Type.Description,
				PitchType: pe.Details.Type.Code,
			}

			if pd := pe.PitchData; pd != nil {
				event.ReleaseSpeed = pd.StartSpeed
				event.EndSpeed = pd.EndSpeed
				event.ZoneTop = pd.StrikeZoneTop
				event.ZoneBot = pd.StrikeZoneBottom
				event.ZoneWidth = pd.StrikeZoneWidth
				event.ZoneDepth = pd.StrikeZoneDepth
				event.Zone = pd.Zone
				event.PlateX = pd.Coordinates.X
				event.PlateY = pd.Coordinates.Y
				event.AX = pd.Coordinates.AX
				event.AY = pd.Coordinates.AY
				event.PfxX = pd.Coordinates.PfxX
				event.PfxZ = pd.Coordinates.PfxZ
				event.PX = pd.Coordinates.PX
				event.PZ = pd.Coordinates.PZ
				event.BreakAngle = pd.Breaks.BreakAngle
				event.BreakLength = pd.Breaks.BreakLength
				event.BreakY = pd.Breaks.BreakY
				if pd.StartSpeed != nil {
					statcast = true
				}
			}

			if hd := pe.HitData; hd != nil {
				event.LaunchSpeed = hd.LaunchSpeed
				event.LaunchAngle = hd.LaunchAngle
				event.Trajectory = hd.Trajectory
				event.Hardness = hd.Hardness
				event.HitLocation = hd.Location
				event.HitCoordX = hd.Coordinates.CoordX
				event.HitCoordY = hd.Coordinates.CoordY
			}

			events = append(events, event)
		}
	}
	return events, statcast
}
