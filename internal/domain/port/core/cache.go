package core

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte oriented key/value cache with expiry
type Cache interface {
	// Get returns the value stored under key or ErrCacheMiss
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl Duration) error
	// Delete removes key
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every key starting with prefix
	DeletePrefix(ctx context.Context, prefix string) error
}
