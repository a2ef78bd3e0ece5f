package cache

import (
	"context"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
)

// NoopCache is used when caching is disabled. Every lookup misses.
type NoopCache struct{}

// NewNoopCache creates a NoopCache
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(context.Context, string) ([]byte, error) { return nil, coreport.ErrCacheMiss }
func (NoopCache) Set(context.Context, string, []byte, coreport.Duration) error { return nil }
func (NoopCache) Delete(context.Context, string) error { return nil }
func (NoopCache) DeletePrefix(context.Context, string) error { return nil }
