// Package league holds the normalized shapes returned by the league-data
// provider. Providers map their wire payloads into these once, at the
// boundary; the rest of the service never sees raw provider JSON.
package league

import "github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/stats"

// OrganizationRef is a team's membership in an organization.
type OrganizationRef struct {
	OrganizationID string
	Status         string
}

// Active reports whether the membership is current.
func (r OrganizationRef) Active() bool {
	return r.Status == "active"
}

// Team is a team as listed by the provider.
type Team struct {
	ID            string
	PublicID      string
	Name          string
	Organizations []OrganizationRef
}

// Organization is a league/organization with its season metadata. The JSON
// tags are the public API shape for the organizations listing.
type Organization struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Sport      string `json:"sport"`
	SeasonName string `json:"season_name"`
	SeasonYear int    `json:"season_year"`
	City       string `json:"city"`
	State      string `json:"state"`
	Type       string `json:"type"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}

// Player is a roster entry from a team's public player list.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Number    string
}

// PlayerStats carries one player's raw season counters. A nil side means the
// provider reported no stats for that side.
type PlayerStats struct {
	Offense *stats.OffenseCounters
	Defense *stats.DefenseCounters
}

// SeasonStats is a team's full season stat set, keyed by player ID.
type SeasonStats struct {
	Players map[string]PlayerStats
}
