// Package http wires the public API routes to the application services.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/cache"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/league"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/stats"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/logging"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/metrics"
)

// OrgLister builds the organizations listing.
type OrgLister interface {
	List(ctx context.Context) ([]league.Organization, error)
}

// StatsAggregator builds the full stats payload for one organization.
type StatsAggregator interface {
	Aggregate(ctx context.Context, orgID string) (stats.Response, error)
}

// TokenRotator swaps the active upstream credential.
type TokenRotator interface {
	Rotate(ctx context.Context, token string) error
}

const (
	cacheKeyOrganizations = "organizations"
	cacheKeyStatsPrefix   = "stats:"
)

// Handler wires HTTP routes to the application services.
type Handler struct {
	orgs     OrgLister
	stats    StatsAggregator
	rotator  TokenRotator
	cache    *cache.Cache
	recorder *metrics.Recorder
	logger   *slog.Logger

	orgsTTL  time.Duration
	statsTTL time.Duration
}

// HandlerConfig bundles Handler dependencies.
type HandlerConfig struct {
	Orgs     OrgLister
	Stats    StatsAggregator
	Rotator  TokenRotator
	Cache    *cache.Cache
	Recorder *metrics.Recorder
	Logger   *slog.Logger
	OrgsTTL  time.Duration
	StatsTTL time.Duration
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		orgs:     cfg.Orgs,
		stats:    cfg.Stats,
		rotator:  cfg.Rotator,
		cache:    cfg.Cache,
		recorder: cfg.Recorder,
		logger:   cfg.Logger,
		orgsTTL:  cfg.OrgsTTL,
		statsTTL: cfg.StatsTTL,
	}
}

// Root describes the service.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"message":          "GameChanger Stats API",
		"client_available": h.rotator != nil,
	}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"status":             "healthy",
		"client_initialized": h.rotator != nil,
	}, h.logger)
}

// Organizations returns the cached organization listing.
func (h *Handler) Organizations(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := logging.FromContext(r.Context(), h.logger)

	orgs, hit, err := cache.GetOrCompute(h.cache, cacheKeyOrganizations, h.orgsTTL, func() ([]league.Organization, error) {
		return h.orgs.List(r.Context())
	})
	h.recorder.RecordCacheLookup(cacheKeyOrganizations, hit)
	if err != nil {
		respondError(w, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, orgs, logger)
}

// Stats returns the cached aggregated stats payload for one organization.
func (h *Handler) Stats(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := logging.FromContext(r.Context(), h.logger)

	orgID := mux.Vars(r)["organization_id"]
	if strings.TrimSpace(orgID) == "" {
		writeError(w, nethttp.StatusBadRequest, "missing organization id", logger)
		return
	}

	key := cacheKeyStatsPrefix + orgID
	payload, hit, err := cache.GetOrCompute(h.cache, key, h.statsTTL, func() (stats.Response, error) {
		return h.stats.Aggregate(r.Context(), orgID)
	})
	h.recorder.RecordCacheLookup(key, hit)
	if err != nil {
		respondError(w, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, payload, logger)
}

type tokenUpdate struct {
	Token string `json:"token"`
}

// UpdateToken re-authenticates with a new upstream token and invalidates the
// response cache.
func (h *Handler) UpdateToken(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := logging.FromContext(r.Context(), h.logger)

	var body tokenUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, nethttp.StatusBadRequest, "invalid request body", logger)
		return
	}
	if strings.TrimSpace(body.Token) == "" {
		writeError(w, nethttp.StatusBadRequest, "token must not be empty", logger)
		return
	}

	if err := h.rotator.Rotate(r.Context(), body.Token); err != nil {
		respondRotationError(w, err, logger)
		return
	}

	h.cache.Flush()
	logging.Info(logger, "token rotated, response cache flushed")
	writeJSON(w, nethttp.StatusOK, map[string]string{
		"status":  "success",
		"message": "Token updated successfully",
	}, logger)
}
