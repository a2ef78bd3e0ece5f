// Package cache implements core.Cache on Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/go-redis/redis/v8"
)

// scanBatch is the COUNT hint used while walking a prefix
const scanBatch = 100

// Client is the subset of the go-redis client used by RedisCache
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Options configures the Redis connection
type Options struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisCache implements core.Cache on a Redis server
type RedisCache struct {
	client Client
	logger coreport.Logger
}

// NewRedisCache connects to Redis and checks the connection with PING
func NewRedisCache(ctx context.Context, opts Options, logger coreport.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s:%d: %w", opts.Host, opts.Port, err)
	}

	logger.Info("Connected to redis", map[string]any{
		"host": opts.Host,
		"port": opts.Port,
		"db":   opts.DB,
	})
	return NewRedisCacheWithClient(client, logger), nil
}

// NewRedisCacheWithClient wraps an existing client
func NewRedisCacheWithClient(client Client, logger coreport.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger,
	}
}

// Get returns the value stored under key or core.ErrCacheMiss
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, coreport.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key for ttl. A non-positive ttl keeps the key forever.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl coreport.Duration) error {
	expiration := ttl.Std()
	if expiration < 0 {
		expiration = 0
	}
	if err := c.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// DeletePrefix removes every key starting with prefix. It walks the keyspace with
// SCAN so large keyspaces do not block the server.
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, prefix+"*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan %s*: %w", prefix, err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del %s*: %w", prefix, err)
			}
			deleted += len(keys)
		}

		if next == 0 {
			break
		}
		cursor = next
	}

	c.logger.Debug("Cache prefix invalidated", map[string]any{
		"prefix":  prefix,
		"deleted": deleted,
	})
	return nil
}

// Ping checks the connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
