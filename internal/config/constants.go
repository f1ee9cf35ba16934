package config

import "time"

const (
	// envPrefix namespaces every configuration variable (GC_ADDR, GC_TOKEN, ...).
	envPrefix = "GC_"

	// envConfigFile optionally points at a YAML config file.
	envConfigFile = "GC_CONFIG"

	defaultAddr        = ":8000"
	defaultMetricsPort = "9090"
	defaultServiceName = "gamechanger-stats-api"
	defaultCORSOrigin  = "http://localhost:3000"

	defaultUpstreamTimeout = 10 * time.Second
	defaultUpstreamRetries = 2

	// Cache lifetimes: the organization list changes rarely; stats refresh
	// during game days.
	defaultOrgsCacheTTL  = time.Hour
	defaultStatsCacheTTL = 10 * time.Minute

	defaultStrictnessFactor = 0.5
)
