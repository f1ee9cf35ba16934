// Package config defines runtime configuration and its loading rules.
package config

import "time"

// Config holds runtime configuration for the server.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// Token is the initial GameChanger API token; rotatable at runtime via
	// POST /api/token.
	Token string `koanf:"token"`

	// UpstreamBaseURL overrides the GameChanger API base URL.
	UpstreamBaseURL string `koanf:"upstream_base_url"`

	// UpstreamTimeout bounds each upstream HTTP call.
	UpstreamTimeout time.Duration `koanf:"upstream_timeout"`

	// UpstreamRetries caps retry attempts for transient upstream failures.
	UpstreamRetries int `koanf:"upstream_retries"`

	// CORSOrigin is the allowed frontend origin.
	CORSOrigin string `koanf:"cors_origin"`

	// OrgsCacheTTL bounds how long the organizations listing is cached.
	OrgsCacheTTL time.Duration `koanf:"orgs_cache_ttl"`

	// StatsCacheTTL bounds how long an organization's stats payload is cached.
	StatsCacheTTL time.Duration `koanf:"stats_cache_ttl"`

	// StrictnessFactor scales the scorer-strictness correction.
	StrictnessFactor float64 `koanf:"strictness_factor"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects "text" or "json" output.
	LogFormat string `koanf:"log_format"`

	Metrics MetricsConfig `koanf:"metrics"`
}

// MetricsConfig controls the telemetry exporters and listener.
type MetricsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Port         string `koanf:"port"`
	ServiceName  string `koanf:"service_name"`
	OtlpEndpoint string `koanf:"otlp_endpoint"`
	OtlpInsecure bool   `koanf:"otlp_insecure"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:             defaultAddr,
		UpstreamBaseURL:  "",
		UpstreamTimeout:  defaultUpstreamTimeout,
		UpstreamRetries:  defaultUpstreamRetries,
		CORSOrigin:       defaultCORSOrigin,
		OrgsCacheTTL:     defaultOrgsCacheTTL,
		StatsCacheTTL:    defaultStatsCacheTTL,
		StrictnessFactor: defaultStrictnessFactor,
		LogLevel:         "info",
		LogFormat:        "text",
		Metrics: MetricsConfig{
			Enabled:     false,
			Port:        defaultMetricsPort,
			ServiceName: defaultServiceName,
		},
	}
}
