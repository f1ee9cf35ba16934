package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/logging"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/testutil"
)

func TestLoggingMiddlewareAssignsRequestID(t *testing.T) {
	var sawID string
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		sawID = RequestIDFromContext(r.Context())
		w.WriteHeader(nethttp.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware(testutil.DiscardLogger(), nil, next).
		ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/api/health", nil))

	header := rec.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatal("X-Request-ID header not set")
	}
	if sawID != header {
		t.Errorf("context request ID %q != header %q", sawID, header)
	}
}

func TestLoggingMiddlewarePreservesCallerRequestID(t *testing.T) {
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-id-1")

	rec := httptest.NewRecorder()
	LoggingMiddleware(testutil.DiscardLogger(), nil, next).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-id-1" {
		t.Errorf("X-Request-ID = %q, want caller's id", got)
	}
}

func TestLoggingMiddlewareInjectsContextLogger(t *testing.T) {
	var gotLogger bool
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotLogger = logging.FromContext(r.Context(), nil) != nil
	})

	LoggingMiddleware(testutil.DiscardLogger(), nil, next).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(nethttp.MethodGet, "/", nil))

	if !gotLogger {
		t.Error("expected a request-scoped logger in context")
	}
}

func TestCORSMiddlewareSetsHeaders(t *testing.T) {
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	})

	rec := httptest.NewRecorder()
	CORSMiddleware("http://localhost:3000", next).
		ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/api/organizations", nil))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow-origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("allow-credentials = %q", got)
	}
}

func TestCORSMiddlewareShortCircuitsPreflight(t *testing.T) {
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		t.Error("preflight should not reach the handler")
	})

	rec := httptest.NewRecorder()
	CORSMiddleware("http://localhost:3000", next).
		ServeHTTP(rec, httptest.NewRequest(nethttp.MethodOptions, "/api/token", nil))

	if rec.Code != nethttp.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}
