package cache

import (
	"context"
	"errors"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/metrics"
)

// InstrumentedCache counts hits, misses and errors of the wrapped cache
type InstrumentedCache struct {
	next    coreport.Cache
	metrics *metrics.Metrics
}

// NewInstrumentedCache wraps next
func NewInstrumentedCache(next coreport.Cache, m *metrics.Metrics) *InstrumentedCache {
	return &InstrumentedCache{
		next:    next,
		metrics: m,
	}
}

// Get delegates to the wrapped cache and records the outcome
func (c *InstrumentedCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.next.Get(ctx, key)
	switch {
	case err == nil:
		c.metrics.CacheLookup(metrics.CacheHit)
	case errors.Is(err, coreport.ErrCacheMiss):
		c.metrics.CacheLookup(metrics.CacheMiss)
	default:
		c.metrics.CacheLookup(metrics.CacheError)
	}
	return value, err
}

func (c *InstrumentedCache) Set(ctx context.Context, key string, value []byte, ttl coreport.Duration) error {
	return c.next.Set(ctx, key, value, ttl)
}

func (c *InstrumentedCache) Delete(ctx context.Context, key string) error {
	return c.next.Delete(ctx, key)
}

func (c *InstrumentedCache) DeletePrefix(ctx context.Context, prefix string) error {
	return c.next.DeletePrefix(ctx, prefix)
}
