// Package cache holds short-lived copies of site data read on every page.
package cache

import (
	"context"
	"sync"
	"time"

	"housecash/config"
	"housecash/internal/domain/service"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL applies when no TTL is configured.
const DefaultTTL = time.Minute

type entry struct {
	value   any
	expires time.Time
}

// Cache is a mutex-guarded TTL map. Concurrent misses on one key share a
// single fetch. Entries are never invalidated by writes, only by expiry.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
	group singleflight.Group
	now   func() time.Time
}

// New creates a cache whose entries live for ttl.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		items: make(map[string]entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// NewFromConfig is the fx provider reading site.cacheTtl.
func NewFromConfig(cfg *config.Config) service.Cache {
	return New(cfg.Site.CacheTTL)
}

// Get returns a live entry.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(e.expires) {
		return nil, false
	}

	return e.value, true
}

// Set stores value under key for the cache TTL.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.items[key] = entry{value: value, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *Cache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]entry)
	c.mu.Unlock()
}

// GetOrFetch returns the cached value or runs fetch once for all waiting
// callers. Errors are returned to every waiter and not cached.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		// The fetch is shared, so one caller giving up must not fail the rest.
		v, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.Set(key, v)

		return v, nil
	})

	return v, err
}
