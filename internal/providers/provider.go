// Package providers defines how upstream league data is fetched and
// normalized, and the error kinds providers surface.
package providers

import (
	"context"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/league"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/stats"
)

// LeagueProvider exposes the league-data operations the service consumes.
// Implementations must bound every call (the shipped client applies an HTTP
// timeout and retries transient failures) and return *AuthError when the
// credential is rejected.
type LeagueProvider interface {
	// Teams lists the authenticated user's teams.
	Teams(ctx context.Context) ([]league.Team, error)

	// Organization fetches one organization's details.
	Organization(ctx context.Context, orgID string) (league.Organization, error)

	// OrganizationTeams lists the teams in an organization.
	OrganizationTeams(ctx context.Context, orgID string) ([]league.Team, error)

	// OrganizationTeamRecords fetches win/loss records for an organization's teams.
	OrganizationTeamRecords(ctx context.Context, orgID string) ([]stats.TeamRecord, error)

	// OrganizationAvatar returns the organization's avatar URL, or "" if none.
	OrganizationAvatar(ctx context.Context, orgID string) (string, error)

	// TeamSeasonStats fetches a team's raw season counters for every player.
	TeamSeasonStats(ctx context.Context, teamID string) (league.SeasonStats, error)

	// TeamPublicPlayers lists a team's public roster by its public ID.
	TeamPublicPlayers(ctx context.Context, publicID string) ([]league.Player, error)

	// TeamAvatar returns the team's avatar URL, or "" if none.
	TeamAvatar(ctx context.Context, teamID string) (string, error)
}
