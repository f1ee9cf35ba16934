package testutil

import (
	"context"
	"errors"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/league"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/stats"
)

// ErrStub is the default failure returned by unset StubProvider fields.
var ErrStub = errors.New("stubbed operation not configured")

// StubProvider implements providers.LeagueProvider with overridable funcs.
// Unset operations fail with ErrStub.
type StubProvider struct {
	TeamsFn                   func(ctx context.Context) ([]league.Team, error)
	OrganizationFn            func(ctx context.Context, orgID string) (league.Organization, error)
	OrganizationTeamsFn       func(ctx context.Context, orgID string) ([]league.Team, error)
	OrganizationTeamRecordsFn func(ctx context.Context, orgID string) ([]stats.TeamRecord, error)
	OrganizationAvatarFn      func(ctx context.Context, orgID string) (string, error)
	TeamSeasonStatsFn         func(ctx context.Context, teamID string) (league.SeasonStats, error)
	TeamPublicPlayersFn       func(ctx context.Context, publicID string) ([]league.Player, error)
	TeamAvatarFn              func(ctx context.Context, teamID string) (string, error)
}

func (s *StubProvider) Teams(ctx context.Context) ([]league.Team, error) {
	if s.TeamsFn == nil {
		return nil, ErrStub
	}
	return s.TeamsFn(ctx)
}

func (s *StubProvider) Organization(ctx context.Context, orgID string) (league.Organization, error) {
	if s.OrganizationFn == nil {
		return league.Organization{}, ErrStub
	}
	return s.OrganizationFn(ctx, orgID)
}

func (s *StubProvider) OrganizationTeams(ctx context.Context, orgID string) ([]league.Team, error) {
	if s.OrganizationTeamsFn == nil {
		return nil, ErrStub
	}
	return s.OrganizationTeamsFn(ctx, orgID)
}

func (s *StubProvider) OrganizationTeamRecords(ctx context.Context, orgID string) ([]stats.TeamRecord, error) {
	if s.OrganizationTeamRecordsFn == nil {
		return nil, ErrStub
	}
	return s.OrganizationTeamRecordsFn(ctx, orgID)
}

func (s *StubProvider) OrganizationAvatar(ctx context.Context, orgID string) (string, error) {
	if s.OrganizationAvatarFn == nil {
		return "", ErrStub
	}
	return s.OrganizationAvatarFn(ctx, orgID)
}

func (s *StubProvider) TeamSeasonStats(ctx context.Context, teamID string) (league.SeasonStats, error) {
	if s.TeamSeasonStatsFn == nil {
		return league.SeasonStats{}, ErrStub
	}
	return s.TeamSeasonStatsFn(ctx, teamID)
}

func (s *StubProvider) TeamPublicPlayers(ctx context.Context, publicID string) ([]league.Player, error) {
	if s.TeamPublicPlayersFn == nil {
		return nil, ErrStub
	}
	return s.TeamPublicPlayersFn(ctx, publicID)
}

func (s *StubProvider) TeamAvatar(ctx context.Context, teamID string) (string, error) {
	if s.TeamAvatarFn == nil {
		return "", ErrStub
	}
	return s.TeamAvatarFn(ctx, teamID)
}
