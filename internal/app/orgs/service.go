// Package orgs lists the organizations visible to the authenticated user.
package orgs

import (
	"context"
	"log/slog"
	"sort"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/league"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/logging"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/providers"
)

// ProviderFunc yields the currently active league provider. Resolved per
// request so a credential rotation takes effect immediately.
type ProviderFunc func() providers.LeagueProvider

// Service builds the organizations listing.
type Service struct {
	provider ProviderFunc
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(provider ProviderFunc, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// List returns the organizations attached to the user's teams, with details
// and avatars, sorted by season year descending then name. An organization
// whose detail fetch fails is logged and skipped; auth failures abort.
func (s *Service) List(ctx context.Context) ([]league.Organization, error) {
	p := s.provider()

	teams, err := p.Teams(ctx)
	if err != nil {
		return nil, err
	}

	orgIDs := activeOrganizationIDs(teams)

	out := make([]league.Organization, 0, len(orgIDs))
	for _, orgID := range orgIDs {
		org, err := p.Organization(ctx, orgID)
		if err != nil {
			if _, ok := providers.AsAuthError(err); ok {
				return nil, err
			}
			logging.Warn(s.logger, "organization fetch failed, skipping",
				logging.FieldOrganization, orgID, "error", err)
			continue
		}

		// Avatar is optional.
		if avatar, err := p.OrganizationAvatar(ctx, orgID); err == nil {
			org.AvatarURL = avatar
		}

		out = append(out, org)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SeasonYear != out[j].SeasonYear {
			return out[i].SeasonYear > out[j].SeasonYear
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// activeOrganizationIDs collects the distinct active organization memberships
// across the user's teams, in deterministic order.
func activeOrganizationIDs(teams []league.Team) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, team := range teams {
		for _, ref := range team.Organizations {
			if ref.OrganizationID == "" || !ref.Active() {
				continue
			}
			if _, ok := seen[ref.OrganizationID]; ok {
				continue
			}
			seen[ref.OrganizationID] = struct{}{}
			ids = append(ids, ref.OrganizationID)
		}
	}
	return ids
}
