package gamechanger

import "time"

const providerName = "gamechanger"

const (
	defaultBaseURL     = "https://api.team-manager.gc.com"
	defaultHTTPTimeout = 10 * time.Second

	// Retry tuning for transient upstream failures.
	defaultMaxRetries      = 2
	defaultInitialInterval = 200 * time.Millisecond
)
