// Package cache provides a small in-memory TTL cache used to share
// fetched payloads between refresh cycles. Entries expire lazily on
// read; the cache never evicts proactively because the working set is
// bounded by the day's schedule.
package cache

import (
	"sync"
	"time"

	"github.com/mlbdw/livetracker/pkg/metrics"
)

const defaultTTL = 30 * time.Second

type entry[V any] struct {
	value   V
	expires time.Time
}

// Cache is a TTL cache with string keys.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	name    string
	now     func() time.Time
}

// Option applies a configuration option to the Cache.
type Option[V any] func(*Cache[V])

// WithTTL sets the entry lifetime.
func WithTTL[V any](ttl time.Duration) Option[V] {
	return func(c *Cache[V]) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithName sets the cache name used in metrics labels.
func WithName[V any](name string) Option[V] {
	return func(c *Cache[V]) {
		if name != "" {
			c.name = name
		}
	}
}

// WithClock sets the time source, for tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a cache with configuration options.
func New[V any](opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     defaultTTL,
		name:    "cache",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the live value for key. Expired entries are removed and
// reported as misses.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Before(e.expires) {
		metrics.RecordCacheHit(c.name)
		return e.value, true
	}

	if ok {
		c.mu.Lock()
		// Re-check under the write lock; another writer may have refreshed it.
		if e, ok = c.entries[key]; ok && !c.now().Before(e.expires) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
	}

	metrics.RecordCacheMiss(c.name)
	var zero V
	return zero, false
}

// Set stores value under key for the cache's TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
