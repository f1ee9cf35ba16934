package providers_test

import (
	"context"
	"testing"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/league"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/providers"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/testutil"
)

func stubForToken(valid map[string]bool) providers.BuildFunc {
	return func(token string) providers.LeagueProvider {
		return &testutil.StubProvider{
			TeamsFn: func(ctx context.Context) ([]league.Team, error) {
				if !valid[token] {
					return nil, &providers.AuthError{}
				}
				return []league.Team{{ID: "t-" + token}}, nil
			},
		}
	}
}

func TestHandleCurrentReturnsInitialProvider(t *testing.T) {
	h := providers.NewHandle(stubForToken(map[string]bool{"first": true}), "first")

	teams, err := h.Current().Teams(context.Background())
	if err != nil {
		t.Fatalf("Teams() error: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != "t-first" {
		t.Fatalf("teams = %+v", teams)
	}
}

func TestRotateSwapsOnValidToken(t *testing.T) {
	h := providers.NewHandle(stubForToken(map[string]bool{"first": true, "second": true}), "first")

	if err := h.Rotate(context.Background(), "second"); err != nil {
		t.Fatalf("Rotate() error: %v", err)
	}

	teams, err := h.Current().Teams(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if teams[0].ID != "t-second" {
		t.Fatalf("active provider still serves %q", teams[0].ID)
	}
}

func TestRotateKeepsOldProviderOnFailure(t *testing.T) {
	h := providers.NewHandle(stubForToken(map[string]bool{"first": true}), "first")

	err := h.Rotate(context.Background(), "bogus")
	if err == nil {
		t.Fatal("expected rotation to fail for an invalid token")
	}
	if _, ok := providers.AsAuthError(err); !ok {
		t.Fatalf("expected an auth error, got %v", err)
	}

	teams, err := h.Current().Teams(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if teams[0].ID != "t-first" {
		t.Fatalf("active provider changed to %q after failed rotation", teams[0].ID)
	}
}
