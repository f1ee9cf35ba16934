package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// cache lookups, and aggregation runs, and mirrors them to OpenTelemetry
// instruments when telemetry is enabled. All methods are nil-safe.
type Recorder struct {
	mu    sync.Mutex
	ops   map[string]*operationStats
	cache map[string]*cacheStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		ops:   make(map[string]*operationStats),
		cache: make(map[string]*cacheStats),
		otel:  otel,
	}
}

// RecordProviderCall increments counters for one upstream operation and stores
// the last observed latency.
func (r *Recorder) RecordProviderCall(provider, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureOp(operation)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderCall(provider, operation, duration, err)
	}
}

// RecordCacheLookup tracks a response-cache hit or miss for a cache key.
func (r *Recorder) RecordCacheLookup(key string, hit bool) {
	if r == nil {
		return
	}

	stats := r.ensureCache(key)
	r.mu.Lock()
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(key, hit)
	}
}

// RecordAggregation tracks one aggregation pipeline run.
func (r *Recorder) RecordAggregation(duration time.Duration, teams int, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordAggregation(duration, teams, err)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// OperationSnapshot is a copy of the counters for one upstream operation.
type OperationSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Operation(operation string) OperationSnapshot {
	if r == nil {
		return OperationSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.ops[operation]; ok && stats != nil {
		return OperationSnapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return OperationSnapshot{}
}

// CacheHits returns the recorded hit count for a cache key.
func (r *Recorder) CacheHits(key string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.cache[key]; ok {
		return stats.hits
	}
	return 0
}

// CacheMisses returns the recorded miss count for a cache key.
func (r *Recorder) CacheMisses(key string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.cache[key]; ok {
		return stats.misses
	}
	return 0
}

func (r *Recorder) ensureOp(operation string) *operationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.ops[operation]
	if !ok {
		stats = &operationStats{}
		r.ops[operation] = stats
	}
	return stats
}

func (r *Recorder) ensureCache(key string) *cacheStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.cache[key]
	if !ok {
		stats = &cacheStats{}
		r.cache[key] = stats
	}
	return stats
}
