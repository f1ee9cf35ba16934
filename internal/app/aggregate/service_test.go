package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/app/aggregate"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/league"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/stats"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/strictness"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/providers"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/testutil"
)

func providerFunc(p providers.LeagueProvider) aggregate.ProviderFunc {
	return func() providers.LeagueProvider { return p }
}

func newService(p providers.LeagueProvider) *aggregate.Service {
	return aggregate.NewService(providerFunc(p), testutil.DiscardLogger(), nil, strictness.DefaultFactor)
}

// twoTeamProvider models a league where team-a's scorer charges errors and
// fielder's choices aggressively (rate .10) and team-b's scorer rarely does
// (rate .02), with otherwise identical player lines.
func twoTeamProvider() *testutil.StubProvider {
	seasons := map[string]league.SeasonStats{
		"team-a": {Players: map[string]league.PlayerStats{
			"pa": {
				Offense: &stats.OffenseCounters{
					AtBats: 90, Hits: 27, Singles: 27, Walks: 10,
					ReachedOnError: 5, FieldersChoice: 5,
				},
				Defense: &stats.DefenseCounters{
					Putouts: 60, Assists: 30, Errors: 10,
					InningsPitched: 10, EarnedRuns: 5,
				},
			},
		}},
		"team-b": {Players: map[string]league.PlayerStats{
			"pb": {
				Offense: &stats.OffenseCounters{
					AtBats: 90, Hits: 27, Singles: 27, Walks: 10,
					ReachedOnError: 1, FieldersChoice: 1,
				},
				Defense: &stats.DefenseCounters{
					Putouts: 68, Assists: 30, Errors: 2,
					InningsPitched: 10, EarnedRuns: 5,
				},
			},
		}},
	}
	rosters := map[string][]league.Player{
		"pub-a": {{ID: "pa", FirstName: "Alma", LastName: "Reyes", Number: "7"}},
		"pub-b": {{ID: "pb", FirstName: "Bea", LastName: "Ortiz", Number: "9"}},
	}

	return &testutil.StubProvider{
		OrganizationTeamsFn: func(ctx context.Context, orgID string) ([]league.Team, error) {
			return []league.Team{
				{ID: "team-a", PublicID: "pub-a", Name: "Strict Hawks"},
				{ID: "team-b", PublicID: "pub-b", Name: "Lenient Owls"},
			}, nil
		},
		TeamSeasonStatsFn: func(ctx context.Context, teamID string) (league.SeasonStats, error) {
			return seasons[teamID], nil
		},
		TeamPublicPlayersFn: func(ctx context.Context, publicID string) ([]league.Player, error) {
			return rosters[publicID], nil
		},
		TeamAvatarFn: func(ctx context.Context, teamID string) (string, error) {
			return "", errors.New("no avatar")
		},
		OrganizationTeamRecordsFn: func(ctx context.Context, orgID string) ([]stats.TeamRecord, error) {
			return []stats.TeamRecord{
				{TeamID: "team-a", Wins: 10, Losses: 4, Ties: 1, RunsScored: 90, RunsAllowed: 60},
				{TeamID: "ghost", Wins: 1},
			}, nil
		},
	}
}

func TestAggregateNormalizesAcrossScorerStrictness(t *testing.T) {
	resp, err := newService(twoTeamProvider()).Aggregate(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}

	if len(resp.Batting) != 2 {
		t.Fatalf("batting rows = %+v", resp.Batting)
	}

	rows := map[string]stats.BattingRow{}
	for _, row := range resp.Batting {
		rows[row.TeamID] = row
	}

	strict := rows["team-a"]
	if strict.PlayerName != "Alma Reyes" {
		t.Errorf("player_name = %q", strict.PlayerName)
	}
	if strict.ScorerStrictness != 0.707 {
		t.Errorf("team-a scorer_strictness = %v, want 0.707", strict.ScorerStrictness)
	}
	if strict.BattingAvg != "0.300" {
		t.Errorf("team-a batting_avg = %q", strict.BattingAvg)
	}
	// 0.300 * (1 + 0.707*0.5*0.1) = 0.310605
	if strict.AdjBattingAvg != "0.311" {
		t.Errorf("team-a adj_batting_avg = %q, want lift to 0.311", strict.AdjBattingAvg)
	}

	lenient := rows["team-b"]
	if lenient.ScorerStrictness != -0.707 {
		t.Errorf("team-b scorer_strictness = %v, want -0.707", lenient.ScorerStrictness)
	}
	// 0.300 * (1 - 0.707*0.5*0.1) = 0.289395
	if lenient.AdjBattingAvg != "0.289" {
		t.Errorf("team-b adj_batting_avg = %q, want cut to 0.289", lenient.AdjBattingAvg)
	}
}

func TestAggregateFieldingAndPitching(t *testing.T) {
	resp, err := newService(twoTeamProvider()).Aggregate(context.Background(), "org-1")
	if err != nil {
		t.Fatal(err)
	}

	fielding := map[string]stats.FieldingRow{}
	for _, row := range resp.Fielding {
		fielding[row.TeamID] = row
	}
	strict := fielding["team-a"]
	if strict.FieldingPct != "0.900" {
		t.Errorf("team-a fielding_pct = %q", strict.FieldingPct)
	}
	// 0.900 * (1 + 0.707*0.5*0.1) = 0.931815
	if strict.AdjFieldingPct != "0.932" {
		t.Errorf("team-a adj_fielding_pct = %q", strict.AdjFieldingPct)
	}
	lenient := fielding["team-b"]
	if lenient.FieldingPct != "0.980" {
		t.Errorf("team-b fielding_pct = %q", lenient.FieldingPct)
	}
	// 0.980 * (1 - 0.707*0.5*0.1) = 0.945357
	if lenient.AdjFieldingPct != "0.945" {
		t.Errorf("team-b adj_fielding_pct = %q", lenient.AdjFieldingPct)
	}

	pitching := map[string]stats.PitchingRow{}
	for _, row := range resp.Pitching {
		pitching[row.TeamID] = row
	}
	// Pitching rows carry the defensive strictness score but no adjusted stats.
	if pitching["team-a"].ScorerStrictness != 0.707 {
		t.Errorf("team-a pitching strictness = %v", pitching["team-a"].ScorerStrictness)
	}
	// (5 * 7) / 10 innings
	if pitching["team-a"].ERA != "3.50" {
		t.Errorf("team-a era = %q", pitching["team-a"].ERA)
	}
}

func TestAggregateJoinsRecordsToKnownTeams(t *testing.T) {
	resp, err := newService(twoTeamProvider()).Aggregate(context.Background(), "org-1")
	if err != nil {
		t.Fatal(err)
	}

	if len(resp.Teams) != 1 {
		t.Fatalf("teams = %+v; the ghost record should be dropped", resp.Teams)
	}
	row := resp.Teams[0]
	if row.TeamID != "team-a" || row.TeamName != "Strict Hawks" {
		t.Errorf("team row = %+v", row)
	}
	if row.GamesPlayed != 15 || row.RunsPerGame != "6.00" {
		t.Errorf("record math = %d games, %q rpg", row.GamesPlayed, row.RunsPerGame)
	}
}

func TestAggregateSkipsTeamOnStatsFailure(t *testing.T) {
	p := twoTeamProvider()
	inner := p.TeamSeasonStatsFn
	p.TeamSeasonStatsFn = func(ctx context.Context, teamID string) (league.SeasonStats, error) {
		if teamID == "team-b" {
			return league.SeasonStats{}, &providers.UpstreamError{StatusCode: 500}
		}
		return inner(ctx, teamID)
	}

	resp, err := newService(p).Aggregate(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("one failing team should not fail the request: %v", err)
	}

	if len(resp.Batting) != 1 || resp.Batting[0].TeamID != "team-a" {
		t.Fatalf("batting = %+v", resp.Batting)
	}
	// With a single qualifying team there is no strictness index.
	if resp.Batting[0].ScorerStrictness != 0 {
		t.Errorf("strictness = %v, want 0 with one team", resp.Batting[0].ScorerStrictness)
	}
	if resp.Batting[0].AdjBattingAvg != resp.Batting[0].BattingAvg {
		t.Errorf("adjusted avg %q should match raw %q without an index",
			resp.Batting[0].AdjBattingAvg, resp.Batting[0].BattingAvg)
	}
}

func TestAggregateAbortsOnAuthError(t *testing.T) {
	p := twoTeamProvider()
	p.TeamSeasonStatsFn = func(ctx context.Context, teamID string) (league.SeasonStats, error) {
		return league.SeasonStats{}, &providers.AuthError{}
	}

	_, err := newService(p).Aggregate(context.Background(), "org-1")
	if _, ok := providers.AsAuthError(err); !ok {
		t.Fatalf("expected auth error to propagate, got %v", err)
	}
}

func TestAggregateDegradesWhenRecordsFail(t *testing.T) {
	p := twoTeamProvider()
	p.OrganizationTeamRecordsFn = func(ctx context.Context, orgID string) ([]stats.TeamRecord, error) {
		return nil, &providers.UpstreamError{StatusCode: 500}
	}

	resp, err := newService(p).Aggregate(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("records failure should degrade, got %v", err)
	}
	if len(resp.Teams) != 0 {
		t.Errorf("teams = %+v, want empty", resp.Teams)
	}
	if len(resp.Batting) != 2 {
		t.Errorf("batting should be unaffected, got %d rows", len(resp.Batting))
	}
}

func TestAggregateExcludesUnknownPlayers(t *testing.T) {
	p := twoTeamProvider()
	// Roster lookups fail, so every player resolves to an empty name.
	p.TeamPublicPlayersFn = func(ctx context.Context, publicID string) ([]league.Player, error) {
		return nil, &providers.UpstreamError{StatusCode: 500}
	}

	resp, err := newService(p).Aggregate(context.Background(), "org-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Batting) != 0 || len(resp.Pitching) != 0 || len(resp.Fielding) != 0 {
		t.Errorf("unnamed players should be excluded: %d/%d/%d rows",
			len(resp.Batting), len(resp.Pitching), len(resp.Fielding))
	}
}

func TestAggregateFailsWhenTeamListingFails(t *testing.T) {
	p := twoTeamProvider()
	p.OrganizationTeamsFn = func(ctx context.Context, orgID string) ([]league.Team, error) {
		return nil, &providers.UpstreamError{StatusCode: 502}
	}

	_, err := newService(p).Aggregate(context.Background(), "org-1")
	if _, ok := providers.AsUpstreamError(err); !ok {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
