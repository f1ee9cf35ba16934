package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/cache"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/league"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/domain/stats"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/providers"
	"github.com/TheAlanNix/gamechanger-stats-ui/internal/testutil"
)

type fakeOrgs struct {
	calls int
	list  []league.Organization
	err   error
}

func (f *fakeOrgs) List(ctx context.Context) ([]league.Organization, error) {
	f.calls++
	return f.list, f.err
}

type fakeStats struct {
	calls int
	resp  stats.Response
	err   error
}

func (f *fakeStats) Aggregate(ctx context.Context, orgID string) (stats.Response, error) {
	f.calls++
	return f.resp, f.err
}

type fakeRotator struct {
	gotToken string
	err      error
}

func (f *fakeRotator) Rotate(ctx context.Context, token string) error {
	f.gotToken = token
	return f.err
}

func newTestHandler(orgs OrgLister, aggregator StatsAggregator, rotator TokenRotator) (*Handler, *cache.Cache) {
	c := cache.New()
	h := NewHandler(HandlerConfig{
		Orgs:     orgs,
		Stats:    aggregator,
		Rotator:  rotator,
		Cache:    c,
		Logger:   testutil.DiscardLogger(),
		OrgsTTL:  time.Hour,
		StatsTTL: 10 * time.Minute,
	})
	return h, c
}

func serve(h *Handler, req *nethttp.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewRouter(h).ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(&fakeOrgs{}, &fakeStats{}, &fakeRotator{})

	rec := serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/health", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" || body["client_initialized"] != true {
		t.Errorf("body = %v", body)
	}
}

func TestOrganizationsServedFromCache(t *testing.T) {
	orgs := &fakeOrgs{list: []league.Organization{{ID: "org-1", Name: "Spring League"}}}
	h, _ := newTestHandler(orgs, &fakeStats{}, &fakeRotator{})

	first := serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/organizations", nil))
	second := serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/organizations", nil))

	if first.Code != nethttp.StatusOK || second.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, %d", first.Code, second.Code)
	}
	if orgs.calls != 1 {
		t.Errorf("lister called %d times, want 1 (second hit cached)", orgs.calls)
	}
	var list []league.Organization
	if err := json.Unmarshal(second.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != "org-1" {
		t.Errorf("list = %+v", list)
	}
}

func TestOrganizationsAuthErrorPayload(t *testing.T) {
	orgs := &fakeOrgs{err: &providers.AuthError{}}
	h, _ := newTestHandler(orgs, &fakeStats{}, &fakeRotator{})

	rec := serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/organizations", nil))

	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["auth_error"] != true {
		t.Errorf("body = %v, want auth_error marker", body)
	}
}

func TestStatsCachesPerOrganization(t *testing.T) {
	agg := &fakeStats{resp: stats.Response{
		Batting:  []stats.BattingRow{},
		Pitching: []stats.PitchingRow{},
		Fielding: []stats.FieldingRow{},
		Teams:    []stats.TeamRow{{TeamID: "t1", TeamName: "Hawks"}},
	}}
	h, _ := newTestHandler(&fakeOrgs{}, agg, &fakeRotator{})

	serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/stats/org-1", nil))
	rec := serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/stats/org-1", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if agg.calls != 1 {
		t.Errorf("aggregator called %d times, want 1", agg.calls)
	}

	var body stats.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Teams) != 1 || body.Teams[0].TeamName != "Hawks" {
		t.Errorf("teams = %+v", body.Teams)
	}
}

func TestStatsUpstreamErrorKeepsStatus(t *testing.T) {
	agg := &fakeStats{err: &providers.UpstreamError{StatusCode: 503, Message: "down"}}
	h, _ := newTestHandler(&fakeOrgs{}, agg, &fakeRotator{})

	rec := serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/stats/org-1", nil))

	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestUpdateTokenFlushesCache(t *testing.T) {
	orgs := &fakeOrgs{list: []league.Organization{{ID: "org-1"}}}
	rotator := &fakeRotator{}
	h, _ := newTestHandler(orgs, &fakeStats{}, rotator)

	// Prime the cache.
	serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/organizations", nil))

	rec := serve(h, httptest.NewRequest(nethttp.MethodPost, "/api/token",
		strings.NewReader(`{"token": "fresh"}`)))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if rotator.gotToken != "fresh" {
		t.Errorf("rotated token = %q", rotator.gotToken)
	}

	// Cache was flushed, so the lister runs again.
	serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/organizations", nil))
	if orgs.calls != 2 {
		t.Errorf("lister called %d times, want 2 after flush", orgs.calls)
	}
}

func TestUpdateTokenRejectsEmptyToken(t *testing.T) {
	h, _ := newTestHandler(&fakeOrgs{}, &fakeStats{}, &fakeRotator{})

	rec := serve(h, httptest.NewRequest(nethttp.MethodPost, "/api/token",
		strings.NewReader(`{"token": "  "}`)))

	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateTokenInvalidCredential(t *testing.T) {
	orgs := &fakeOrgs{list: []league.Organization{{ID: "org-1"}}}
	rotator := &fakeRotator{err: &providers.AuthError{}}
	h, _ := newTestHandler(orgs, &fakeStats{}, rotator)

	serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/organizations", nil))

	rec := serve(h, httptest.NewRequest(nethttp.MethodPost, "/api/token",
		strings.NewReader(`{"token": "bogus"}`)))

	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "Invalid token provided" {
		t.Errorf("message = %v", body["message"])
	}

	// Failed rotation must not flush the cache.
	serve(h, httptest.NewRequest(nethttp.MethodGet, "/api/organizations", nil))
	if orgs.calls != 1 {
		t.Errorf("lister called %d times, want 1 (cache intact)", orgs.calls)
	}
}

func TestUpdateTokenMalformedBody(t *testing.T) {
	h, _ := newTestHandler(&fakeOrgs{}, &fakeStats{}, &fakeRotator{})

	rec := serve(h, httptest.NewRequest(nethttp.MethodPost, "/api/token",
		strings.NewReader(`not json`)))

	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
