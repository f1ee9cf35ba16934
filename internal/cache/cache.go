// Package cache provides the TTL-bounded response cache. Entries are whole
// endpoint responses keyed by endpoint and arguments; the cache is flushed
// wholesale when the upstream credential rotates.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value   any
	expires time.Time
}

// Cache is a thread-safe in-memory TTL cache with an injectable clock.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New constructs an empty Cache using the wall clock.
func New() *Cache {
	return NewWithClock(time.Now)
}

// NewWithClock constructs an empty Cache with the provided clock.
func NewWithClock(now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     now,
	}
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len returns the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) store(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expires: c.now().Add(ttl)}
}

// GetOrCompute returns the cached value for key when present and fresh;
// otherwise it runs compute and caches the result for ttl. Errors are never
// cached. Concurrent misses on the same key may compute more than once; the
// last writer wins, which is acceptable for idempotent response payloads.
func GetOrCompute[T any](c *Cache, key string, ttl time.Duration, compute func() (T, error)) (T, bool, error) {
	if cached, ok := c.lookup(key); ok {
		if value, ok := cached.(T); ok {
			return value, true, nil
		}
	}

	value, err := compute()
	if err != nil {
		var zero T
		return zero, false, err
	}
	c.store(key, value, ttl)
	return value, false, nil
}
