package decorator

import (
	"context"
	"time"
)

type (
	// CacheStatus describes what the caching decorator did for a query.
	CacheStatus string

	cacheStatusKey struct{}

	// CacheConfig controls the caching decorator. A disabled config or a
	// nil cache turns the decorator into a pass-through.
	CacheConfig struct {
		Enabled bool
		TTL     time.Duration
	}

	// CacheGetter retrieves a previously stored result for a query.
	CacheGetter[Q Query, R Result] interface {
		Get(ctx context.Context, query Q) (R, bool, error)
	}

	// CacheSetter stores a query result for later lookups.
	CacheSetter[Q Query, R Result] interface {
		Set(ctx context.Context, query Q, result R, ttl time.Duration) error
	}

	// Cache combines lookup and store.
	Cache[Q Query, R Result] interface {
		CacheGetter[Q, R]
		CacheSetter[Q, R]
	}

	queryCachingDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		cache  Cache[Q, R]
		config CacheConfig
	}
)

const (
	CacheStatusHit    CacheStatus = "HIT"
	CacheStatusMiss   CacheStatus = "MISS"
	CacheStatusBypass CacheStatus = "BYPASS"
	CacheStatusError  CacheStatus = "ERROR"
)

// WithCacheStatus records the cache outcome on the context.
func WithCacheStatus(ctx context.Context, status CacheStatus) context.Context {
	return context.WithValue(ctx, cacheStatusKey{}, status)
}

// GetCacheStatus reads the cache outcome from the context, defaulting
// to BYPASS when the caching decorator never ran.
func GetCacheStatus(ctx context.Context) CacheStatus {
	if status, ok := ctx.Value(cacheStatusKey{}).(CacheStatus); ok {
		return status
	}

	return CacheStatusBypass
}

// NewQueryCachingDecorator wraps base with read-through caching.
// Results are written back asynchronously so a slow cache never delays
// the response, and cache failures degrade to serving from base.
func NewQueryCachingDecorator[Q Query, R Result](
	base QueryHandler[Q, R],
	cache Cache[Q, R],
	config CacheConfig,
) QueryHandler[Q, R] {
	return queryCachingDecorator[Q, R]{
		base:   base,
		cache:  cache,
		config: config,
	}
}

func (d queryCachingDecorator[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	if !d.config.Enabled || d.cache == nil {
		return d.base.Execute(WithCacheStatus(ctx, CacheStatusBypass), query)
	}

	if cached, hit, err := d.cache.Get(ctx, query); err == nil && hit {
		return cached, nil
	}

	result, err := d.base.Execute(WithCacheStatus(ctx, CacheStatusMiss), query)
	if err != nil {
		var zero R

		return zero, err
	}

	go func() {
		_ = d.cache.Set(context.Background(), query, result, d.config.TTL)
	}()

	return result, nil
}
