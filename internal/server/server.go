// Package server assembles the service: config, telemetry, provider handle,
// cache, application services, and the HTTP listener.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/app/aggregate"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/app/orgs"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/cache"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/config"
	httpserver "github.com/TheAlanNix/gamechanger-stats-ui/internal/http"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/metrics"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/providers"
)

var metricsSetup = metrics.Setup

// Server owns the process lifecycle.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	recorder      *metrics.Recorder
	handle        *providers.Handle
	responseCache *cache.Cache
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	handle := providers.NewHandle(newProviderBuilder(cfg, recorder), cfg.Token)
	responseCache := cache.New()

	providerFn := func() providers.LeagueProvider { return handle.Current() }
	orgsService := orgs.NewService(providerFn, logger)
	aggregateService := aggregate.NewService(providerFn, logger, recorder, cfg.StrictnessFactor)

	handler := httpserver.NewHandler(httpserver.HandlerConfig{
		Orgs:     orgsService,
		Stats:    aggregateService,
		Rotator:  handle,
		Cache:    responseCache,
		Recorder: recorder,
		Logger:   logger,
		OrgsTTL:  cfg.OrgsCacheTTL,
		StatsTTL: cfg.StatsCacheTTL,
	})

	router := httpserver.NewRouter(handler)
	wrapped := httpserver.CORSMiddleware(cfg.CORSOrigin,
		httpserver.LoggingMiddleware(logger, recorder, router))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		recorder:      recorder,
		handle:        handle,
		responseCache: responseCache,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// Run starts the HTTP listeners and waits for context cancellation to shut
// down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}
