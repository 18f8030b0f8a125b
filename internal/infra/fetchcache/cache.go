// Package fetchcache is a keyed TTL cache for remote responses. Entries
// are never purged, only treated as absent once expired; the working set
// is bounded by the number of distinct catalog keys.
package fetchcache

import (
	"context"
	"sync"
	"time"

	"storefront-api/internal/pkg/clock"
)

type LoaderFunc func(ctx context.Context) (any, error)

type entry struct {
	payload   any
	timestamp time.Time
	ttl       time.Duration
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   clock.Clock
}

func New(clk clock.Clock) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		clock:   clk,
	}
}

// Get returns the cached payload while the entry is fresh; otherwise it
// invokes loader and stores the result. Loader errors propagate and do
// not populate the cache. Distinct callers may race the loader for the
// same key; last write wins.
func (c *Cache) Get(ctx context.Context, key string, ttl time.Duration, loader LoaderFunc) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.clock.Now().Sub(e.timestamp) < e.ttl {
		c.mu.Unlock()
		return e.payload, nil
	}
	c.mu.Unlock()

	payload, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	// A load superseded by cancellation must not overwrite a newer result.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.mu.Lock()
	c.entries[key] = entry{payload: payload, timestamp: c.clock.Now(), ttl: ttl}
	c.mu.Unlock()

	return payload, nil
}

func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// IsStale reports whether the entry is absent or past its ttl.
func (c *Cache) IsStale(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return true
	}
	return c.clock.Now().Sub(e.timestamp) >= e.ttl
}

// Caller serializes loads for one consumer: starting a new load cancels
// the consumer's previous in-flight load. Cancellation is per caller,
// not global de-duplication across consumers.
type Caller struct {
	cache *Cache

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func (c *Cache) NewCaller() *Caller {
	return &Caller{cache: c}
}

func (cl *Caller) Get(ctx context.Context, key string, ttl time.Duration, loader LoaderFunc) (any, error) {
	ctx, cancel := context.WithCancel(ctx)

	cl.mu.Lock()
	if cl.cancel != nil {
		cl.cancel()
	}
	cl.gen++
	gen := cl.gen
	cl.cancel = cancel
	cl.mu.Unlock()

	defer func() {
		cancel()
		cl.mu.Lock()
		// A newer load may own cl.cancel by now; only clear our own.
		if cl.gen == gen {
			cl.cancel = nil
		}
		cl.mu.Unlock()
	}()

	return cl.cache.Get(ctx, key, ttl, loader)
}
