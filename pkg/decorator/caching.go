package decorator

import (
	"context"
	"sync"
	"time"
)

type (
	// CacheStatus represents the outcome of a cache lookup.
	CacheStatus string

	// CacheConfig holds configuration for the caching decorator.
	CacheConfig struct {
		Enabled bool
		TTL     time.Duration
	}

	// Cache stores query results for a bounded time.
	Cache[Q comparable, R Result] interface {
		Get(ctx context.Context, query Q) (R, bool)
		Set(ctx context.Context, query Q, result R, ttl time.Duration)
	}

	// MemoryCache is a process local Cache. Expired entries are replaced on the next Set.
	MemoryCache[Q comparable, R Result] struct {
		mu      sync.Mutex
		entries map[Q]memoryEntry[R]
		now     func() time.Time
	}

	memoryEntry[R Result] struct {
		value     R
		expiresAt time.Time
	}

	queryCachingDecorator[Q comparable, R Result] struct {
		base   QueryHandler[Q, R]
		cache  Cache[Q, R]
		config CacheConfig
		onLook func(CacheStatus)
	}
)

const (
	CacheStatusHit    CacheStatus = "HIT"
	CacheStatusMiss   CacheStatus = "MISS"
	CacheStatusBypass CacheStatus = "BYPASS"
)

func NewMemoryCache[Q comparable, R Result]() *MemoryCache[Q, R] {
	return &MemoryCache[Q, R]{
		entries: make(map[Q]memoryEntry[R]),
		now:     time.Now,
	}
}

func (c *MemoryCache[Q, R]) Get(_ context.Context, query Q) (R, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[query]
	if !ok || !c.now().Before(entry.expiresAt) {
		var zero R

		return zero, false
	}

	return entry.value, true
}

func (c *MemoryCache[Q, R]) Set(_ context.Context, query Q, result R, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[query] = memoryEntry[R]{
		value:     result,
		expiresAt: c.now().Add(ttl),
	}
}

// NewQueryCachingDecorator serves repeated queries from cache for config.TTL.
// Failed executions are never cached. onLook, when non-nil, observes every lookup outcome.
func NewQueryCachingDecorator[Q comparable, R Result](
	base QueryHandler[Q, R],
	cache Cache[Q, R],
	config CacheConfig,
	onLook func(CacheStatus),
) QueryHandler[Q, R] {
	return queryCachingDecorator[Q, R]{
		base:   base,
		cache:  cache,
		config: config,
		onLook: onLook,
	}
}

func (d queryCachingDecorator[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	if !d.config.Enabled || d.cache == nil || d.config.TTL <= 0 {
		d.observe(CacheStatusBypass)

		return d.base.Execute(ctx, query)
	}

	if cached, hit := d.cache.Get(ctx, query); hit {
		d.observe(CacheStatusHit)

		return cached, nil
	}

	d.observe(CacheStatusMiss)

	result, err := d.base.Execute(ctx, query)
	if err != nil {
		return result, err
	}

	d.cache.Set(ctx, query, result, d.config.TTL)

	return result, nil
}

func (d queryCachingDecorator[Q, R]) observe(status CacheStatus) {
	if d.onLook != nil {
		d.onLook(status)
	}
}
