package gamechanger

import (
	"context"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveMaxRetries(n int) uint64 {
	if n < 0 {
		return 0
	}
	if n == 0 {
		return defaultMaxRetries
	}
	return uint64(n)
}

// newBackOff builds the retry policy for one request: exponential backoff,
// capped attempts, cancellable via ctx.
func newBackOff(ctx context.Context, maxRetries uint64) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = defaultInitialInterval
	return backoff.WithContext(backoff.WithMaxRetries(exp, maxRetries), ctx)
}
