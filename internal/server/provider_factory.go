package server

import (
	"net/http"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/config"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/metrics"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/providers"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/providers/gamechanger"
)

// newProviderBuilder returns the BuildFunc the rotation handle uses to mint
// a client per credential. All clients share one HTTP client so connection
// pools survive rotation.
func newProviderBuilder(cfg config.Config, recorder *metrics.Recorder) providers.BuildFunc {
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	return func(token string) providers.LeagueProvider {
		return gamechanger.NewClient(gamechanger.Config{
			BaseURL:    cfg.UpstreamBaseURL,
			Token:      token,
			HTTPClient: httpClient,
			MaxRetries: cfg.UpstreamRetries,
			Recorder:   recorder,
		})
	}
}
