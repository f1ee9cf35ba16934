// Package gamechanger implements the league provider against the GameChanger
// team-manager API.
package gamechanger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/league"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/stats"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/metrics"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/providers"
)

const maxBodyBytes = 4 << 20

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	MaxRetries int
	Recorder   *metrics.Recorder
}

// Client fetches league data from the GameChanger API and maps it to domain
// models. Transient failures (network errors, 5xx) are retried with
// exponential backoff; auth failures and other 4xx are permanent.
type Client struct {
	baseURL    string
	token      string
	httpClient httpDoer
	maxRetries uint64
	recorder   *metrics.Recorder
	backOffFor func(ctx context.Context) backoff.BackOff
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	maxRetries := resolveMaxRetries(cfg.MaxRetries)
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		token:      cfg.Token,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		maxRetries: maxRetries,
		recorder:   cfg.Recorder,
		backOffFor: func(ctx context.Context) backoff.BackOff {
			return newBackOff(ctx, maxRetries)
		},
	}
}

// Teams lists the authenticated user's teams.
func (c *Client) Teams(ctx context.Context) ([]league.Team, error) {
	var payload []teamResponse
	if err := c.get(ctx, "me.teams", "/me/teams", &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload), nil
}

// Organization fetches one organization's details.
func (c *Client) Organization(ctx context.Context, orgID string) (league.Organization, error) {
	var payload organizationResponse
	if err := c.get(ctx, "organizations.get", "/organizations/"+orgID, &payload); err != nil {
		return league.Organization{}, err
	}
	return mapOrganization(payload), nil
}

// OrganizationTeams lists the teams in an organization.
func (c *Client) OrganizationTeams(ctx context.Context, orgID string) ([]league.Team, error) {
	var payload []teamResponse
	if err := c.get(ctx, "organizations.teams", "/organizations/"+orgID+"/teams", &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload), nil
}

// OrganizationTeamRecords fetches win/loss records for an organization's teams.
func (c *Client) OrganizationTeamRecords(ctx context.Context, orgID string) ([]stats.TeamRecord, error) {
	var payload []teamRecordResponse
	if err := c.get(ctx, "organizations.team_records", "/organizations/"+orgID+"/team-records", &payload); err != nil {
		return nil, err
	}
	return mapTeamRecords(payload), nil
}

// OrganizationAvatar returns the organization's avatar URL, or "" if none.
func (c *Client) OrganizationAvatar(ctx context.Context, orgID string) (string, error) {
	var payload avatarResponse
	if err := c.get(ctx, "organizations.avatar_image", "/organizations/"+orgID+"/avatar-image", &payload); err != nil {
		return "", err
	}
	return payload.FullMediaURL, nil
}

// TeamSeasonStats fetches a team's raw season counters for every player.
func (c *Client) TeamSeasonStats(ctx context.Context, teamID string) (league.SeasonStats, error) {
	var payload seasonStatsResponse
	if err := c.get(ctx, "teams.season_stats", "/teams/"+teamID+"/season-stats", &payload); err != nil {
		return league.SeasonStats{}, err
	}
	return mapSeasonStats(payload), nil
}

// TeamPublicPlayers lists a team's public roster by its public ID.
func (c *Client) TeamPublicPlayers(ctx context.Context, publicID string) ([]league.Player, error) {
	var payload []playerResponse
	if err := c.get(ctx, "teams.public_players", "/public-teams/"+publicID+"/players", &payload); err != nil {
		return nil, err
	}
	return mapPlayers(payload), nil
}

// TeamAvatar returns the team's avatar URL, or "" if none.
func (c *Client) TeamAvatar(ctx context.Context, teamID string) (string, error) {
	var payload avatarResponse
	if err := c.get(ctx, "teams.avatar_image", "/teams/"+teamID+"/avatar-image", &payload); err != nil {
		return "", err
	}
	return payload.FullMediaURL, nil
}

func (c *Client) get(ctx context.Context, operation, path string, out any) error {
	start := time.Now()

	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return err
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			return backoff.Permanent(&providers.AuthError{Message: "token expired or invalid"})
		case resp.StatusCode >= 500:
			return &providers.UpstreamError{StatusCode: resp.StatusCode, Message: trimBody(body)}
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(&providers.UpstreamError{StatusCode: resp.StatusCode, Message: trimBody(body)})
		}

		if err := checkAuthPayload(body); err != nil {
			return backoff.Permanent(err)
		}
		if out != nil {
			if err := json.Unmarshal(body, out); err != nil {
				return backoff.Permanent(fmt.Errorf("gamechanger: decode %s: %w", path, err))
			}
		}
		return nil
	}

	err := backoff.Retry(attempt, c.backOffFor(ctx))
	c.recorder.RecordProviderCall(providerName, operation, time.Since(start), err)
	return err
}

// checkAuthPayload detects the authentication-missing marker some endpoints
// embed in an otherwise successful response.
func checkAuthPayload(body []byte) error {
	var marker authMarker
	if err := json.Unmarshal(body, &marker); err != nil {
		// Array payloads and other non-object bodies cannot carry the marker.
		return nil
	}
	if marker.MissingAuthentication || strings.Contains(strings.ToLower(marker.Message), "missing user authentication") {
		return &providers.AuthError{Message: "token expired or invalid"}
	}
	return nil
}

func trimBody(body []byte) string {
	const max = 256
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		s = s[:max]
	}
	return s
}
