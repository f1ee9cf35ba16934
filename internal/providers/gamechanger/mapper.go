package gamechanger

import (
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/league"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/stats"
)

func mapTeams(in []teamResponse) []league.Team {
	out := make([]league.Team, 0, len(in))
	for _, t := range in {
		orgs := make([]league.OrganizationRef, 0, len(t.Organizations))
		for _, o := range t.Organizations {
			orgs = append(orgs, league.OrganizationRef{
				OrganizationID: o.OrganizationID,
				Status:         o.Status,
			})
		}
		out = append(out, league.Team{
			ID:            t.RootTeamID,
			PublicID:      t.TeamPublicID,
			Name:          t.Name,
			Organizations: orgs,
		})
	}
	return out
}

func mapOrganization(in organizationResponse) league.Organization {
	return league.Organization{
		ID:         in.ID,
		Name:       in.Name,
		Sport:      in.Sport,
		SeasonName: in.SeasonName,
		SeasonYear: in.SeasonYear,
		City:       in.City,
		State:      in.State,
		Type:       in.Type,
	}
}

func mapPlayers(in []playerResponse) []league.Player {
	out := make([]league.Player, 0, len(in))
	for _, p := range in {
		out = append(out, league.Player{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Number:    p.Number,
		})
	}
	return out
}

func mapSeasonStats(in seasonStatsResponse) league.SeasonStats {
	players := make(map[string]league.PlayerStats, len(in.StatsData.Players))
	for id, ps := range in.StatsData.Players {
		players[id] = league.PlayerStats{
			Offense: mapOffense(ps.Stats.Offense),
			Defense: mapDefense(ps.Stats.Defense),
		}
	}
	return league.SeasonStats{Players: players}
}

func mapOffense(in *offenseResponse) *stats.OffenseCounters {
	if in == nil {
		return nil
	}
	return &stats.OffenseCounters{
		GamesPlayed:    int(in.GP),
		AtBats:         int(in.AB),
		Hits:           int(in.H),
		Walks:          int(in.BB),
		HitByPitch:     int(in.HBP),
		SacFlies:       int(in.SF),
		Singles:        int(in.B1),
		Doubles:        int(in.B2),
		Triples:        int(in.B3),
		HomeRuns:       int(in.HR),
		RBI:            int(in.RBI),
		Strikeouts:     int(in.SO),
		ReachedOnError: int(in.ROE),
		FieldersChoice: int(in.FC),
	}
}

func mapDefense(in *defenseResponse) *stats.DefenseCounters {
	if in == nil {
		return nil
	}
	return &stats.DefenseCounters{
		InningsPitched: in.IP,
		EarnedRuns:     int(in.ER),
		HitsAllowed:    int(in.H),
		RunsAllowed:    int(in.R),
		Walks:          int(in.BB),
		Strikeouts:     int(in.SO),
		StrikePct:      in.SPct,
		Putouts:        int(in.PO),
		Assists:        int(in.A),
		Errors:         int(in.E),
		DoublePlays:    int(in.DP),
		PitchingGames:  int(in.GPP),
		FieldingGames:  int(in.GPF),
	}
}

func mapTeamRecords(in []teamRecordResponse) []stats.TeamRecord {
	out := make([]stats.TeamRecord, 0, len(in))
	for _, r := range in {
		out = append(out, stats.TeamRecord{
			TeamID:      r.TeamID,
			Wins:        r.Overall.Wins,
			Losses:      r.Overall.Losses,
			Ties:        r.Overall.Ties,
			RunsScored:  r.Runs.Scored,
			RunsAllowed: r.Runs.Allowed,
		})
	}
	return out
}
