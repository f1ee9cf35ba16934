// Package aggregate runs the per-organization stat aggregation pipeline:
// fetch raw season counters for every team, derive rate lines, estimate
// scorer strictness across the full dataset, and normalize the affected
// rate stats.
package aggregate

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/league"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/stats"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/strictness"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/logging"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/metrics"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/providers"
)

// ProviderFunc yields the currently active league provider.
type ProviderFunc func() providers.LeagueProvider

// Service is the aggregation pipeline's composition root.
type Service struct {
	provider ProviderFunc
	logger   *slog.Logger
	recorder *metrics.Recorder
	factor   float64
}

// NewService constructs a Service. factor scales the strictness correction;
// pass strictness.DefaultFactor unless tuning.
func NewService(provider ProviderFunc, logger *slog.Logger, recorder *metrics.Recorder, factor float64) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		recorder: recorder,
		factor:   factor,
	}
}

// dataset accumulates one request's cross-team raw material. Strictness needs
// the complete set before any row can be finalized.
type dataset struct {
	batting  []stats.BattingLine
	pitching []stats.PitchingLine
	fielding []stats.FieldingLine
	teams    map[string]stats.TeamRef
	offense  map[string]*strictness.OffenseSample
	defense  map[string]*strictness.DefenseSample
}

func newDataset() *dataset {
	return &dataset{
		teams:   make(map[string]stats.TeamRef),
		offense: make(map[string]*strictness.OffenseSample),
		defense: make(map[string]*strictness.DefenseSample),
	}
}

// Aggregate builds the full stats payload for one organization. Per-team and
// per-field fetch failures are logged and skipped; auth failures abort.
func (s *Service) Aggregate(ctx context.Context, orgID string) (stats.Response, error) {
	start := time.Now()
	resp, err := s.aggregate(ctx, orgID)
	s.recorder.RecordAggregation(time.Since(start), len(resp.Teams), err)
	return resp, err
}

func (s *Service) aggregate(ctx context.Context, orgID string) (stats.Response, error) {
	p := s.provider()

	teams, err := p.OrganizationTeams(ctx, orgID)
	if err != nil {
		return stats.Response{}, err
	}

	ds := newDataset()
	for _, team := range teams {
		if team.ID == "" {
			continue
		}
		if err := s.collectTeam(ctx, p, team, ds); err != nil {
			return stats.Response{}, err
		}
	}

	teamRows, err := s.collectRecords(ctx, p, orgID, ds)
	if err != nil {
		return stats.Response{}, err
	}

	return s.finalize(ds, teamRows), nil
}

// collectTeam fetches one team's season stats and roster, derives per-player
// lines, and accumulates the team's raw strictness samples. Only auth errors
// propagate.
func (s *Service) collectTeam(ctx context.Context, p providers.LeagueProvider, team league.Team, ds *dataset) error {
	ref := stats.TeamRef{ID: team.ID, Name: team.Name}

	// Avatar is optional.
	if avatar, err := p.TeamAvatar(ctx, team.ID); err == nil {
		ref.Avatar = avatar
	}
	ds.teams[team.ID] = ref

	season, err := p.TeamSeasonStats(ctx, team.ID)
	if err != nil {
		if _, ok := providers.AsAuthError(err); ok {
			return err
		}
		logging.Warn(s.logger, "season stats fetch failed, skipping team",
			logging.FieldTeam, team.ID, "error", err)
		return nil
	}

	roster := s.fetchRoster(ctx, p, team)

	// Deterministic player order within a team.
	playerIDs := make([]string, 0, len(season.Players))
	for id := range season.Players {
		playerIDs = append(playerIDs, id)
	}
	sort.Strings(playerIDs)

	for _, playerID := range playerIDs {
		entry := season.Players[playerID]
		info, ok := roster[playerID]
		player := stats.PlayerRef{ID: playerID}
		if ok {
			player.Name = resolveName(info)
			player.Number = info.Number
		}
		if stats.IsUnknownPlayer(player.Name) {
			continue
		}

		if entry.Offense != nil {
			line := stats.DeriveBatting(player, ref, *entry.Offense)
			ds.batting = append(ds.batting, line)
			accumulateOffense(ds, team.ID, *entry.Offense)
		}
		if entry.Defense != nil {
			ds.pitching = append(ds.pitching, stats.DerivePitching(player, ref, *entry.Defense))
			fielding := stats.DeriveFielding(player, ref, *entry.Defense)
			ds.fielding = append(ds.fielding, fielding)
			accumulateDefense(ds, team.ID, *entry.Defense)
		}
	}
	return nil
}

// fetchRoster returns the public roster keyed by player ID; failures degrade
// to an empty roster, which excludes the team's players by the unknown-name
// rule.
func (s *Service) fetchRoster(ctx context.Context, p providers.LeagueProvider, team league.Team) map[string]league.Player {
	roster := make(map[string]league.Player)
	if team.PublicID == "" {
		return roster
	}

	players, err := p.TeamPublicPlayers(ctx, team.PublicID)
	if err != nil {
		logging.Warn(s.logger, "public roster fetch failed",
			logging.FieldTeam, team.ID, "error", err)
		return roster
	}
	for _, player := range players {
		roster[player.ID] = player
	}
	return roster
}

// collectRecords joins team records against the teams seen in this request.
// Fetch failure degrades to an empty teams collection.
func (s *Service) collectRecords(ctx context.Context, p providers.LeagueProvider, orgID string, ds *dataset) ([]stats.TeamRow, error) {
	records, err := p.OrganizationTeamRecords(ctx, orgID)
	if err != nil {
		if _, ok := providers.AsAuthError(err); ok {
			return nil, err
		}
		logging.Warn(s.logger, "team records fetch failed",
			logging.FieldOrganization, orgID, "error", err)
		return []stats.TeamRow{}, nil
	}

	rows := make([]stats.TeamRow, 0, len(records))
	for _, record := range records {
		info, ok := ds.teams[record.TeamID]
		if !ok {
			continue
		}
		rows = append(rows, stats.TeamRowFrom(record, info))
	}
	return rows, nil
}

// finalize runs the strictness estimate over the complete dataset and renders
// every row. Teams absent from an index get strictness 0 (no adjustment).
func (s *Service) finalize(ds *dataset, teamRows []stats.TeamRow) stats.Response {
	offenseIndex := strictness.EstimateOffense(offenseSamples(ds))
	defenseIndex := strictness.EstimateDefense(defenseSamples(ds))

	resp := stats.Response{
		Batting:  make([]stats.BattingRow, 0, len(ds.batting)),
		Pitching: make([]stats.PitchingRow, 0, len(ds.pitching)),
		Fielding: make([]stats.FieldingRow, 0, len(ds.fielding)),
		Teams:    teamRows,
	}

	for _, line := range ds.batting {
		score := offenseIndex[line.Team.ID]
		adjAvg := strictness.Normalize(line.Avg, score, s.factor)
		adjSlg := strictness.Normalize(line.Slugging, score, s.factor)
		resp.Batting = append(resp.Batting, stats.BattingRowFrom(line, score, adjAvg, adjSlg))
	}
	for _, line := range ds.pitching {
		resp.Pitching = append(resp.Pitching, stats.PitchingRowFrom(line, defenseIndex[line.Team.ID]))
	}
	for _, line := range ds.fielding {
		score := defenseIndex[line.Team.ID]
		adjPct := strictness.Normalize(line.FieldingPct, score, s.factor)
		resp.Fielding = append(resp.Fielding, stats.FieldingRowFrom(line, score, adjPct))
	}
	return resp
}

func accumulateOffense(ds *dataset, teamID string, c stats.OffenseCounters) {
	sample, ok := ds.offense[teamID]
	if !ok {
		sample = &strictness.OffenseSample{TeamID: teamID}
		ds.offense[teamID] = sample
	}
	sample.ReachedOnError += c.ReachedOnError
	sample.FieldersChoice += c.FieldersChoice
	sample.PlateAppearances += c.PlateAppearances()
}

func accumulateDefense(ds *dataset, teamID string, c stats.DefenseCounters) {
	sample, ok := ds.defense[teamID]
	if !ok {
		sample = &strictness.DefenseSample{TeamID: teamID}
		ds.defense[teamID] = sample
	}
	sample.Errors += c.Errors
	sample.Chances += c.Chances()
}

func offenseSamples(ds *dataset) []strictness.OffenseSample {
	out := make([]strictness.OffenseSample, 0, len(ds.offense))
	for _, sample := range ds.offense {
		out = append(out, *sample)
	}
	return out
}

func defenseSamples(ds *dataset) []strictness.DefenseSample {
	out := make([]strictness.DefenseSample, 0, len(ds.defense))
	for _, sample := range ds.defense {
		out = append(out, *sample)
	}
	return out
}

func resolveName(p league.Player) string {
	name := p.FirstName
	if p.LastName != "" {
		if name != "" {
			name += " "
		}
		name += p.LastName
	}
	return name
}
