package providers

import (
	"context"
	"sync"
)

// BuildFunc constructs a provider for a given credential.
type BuildFunc func(token string) LeagueProvider

// Handle is the process-wide grip on the active provider. Credential rotation
// builds a candidate client, proves the token by listing the user's teams,
// and only then swaps it in; in-flight requests keep the client they started
// with.
type Handle struct {
	mu      sync.RWMutex
	build   BuildFunc
	current LeagueProvider
}

// NewHandle creates a Handle with a client built from the initial token.
func NewHandle(build BuildFunc, token string) *Handle {
	return &Handle{
		build:   build,
		current: build(token),
	}
}

// Current returns the active provider.
func (h *Handle) Current() LeagueProvider {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Rotate validates the new token and atomically replaces the active provider.
// On any validation failure the previous provider stays active.
func (h *Handle) Rotate(ctx context.Context, token string) error {
	candidate := h.build(token)
	if _, err := candidate.Teams(ctx); err != nil {
		return err
	}

	h.mu.Lock()
	h.current = candidate
	h.mu.Unlock()
	return nil
}
