package cache

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/metrics"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient keeps values in memory and pages SCAN two keys at a time
type fakeClient struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failGet error
	scans   int
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeClient) Scan(_ context.Context, cursor uint64, match string, _ int64) *redis.ScanCmd {
	f.scans++
	prefix := strings.TrimSuffix(match, "*")
	var matched []string
	for k := range f.values {
		if strings.HasPrefix(k, prefix) {
			matched = append(matched, k)
		}
	}
	sort.Strings(matched)

	// deleted keys shift the remaining ones, so every page starts at the front
	end := min(2, len(matched))
	next := uint64(0)
	if len(matched) > end {
		next = cursor + 1
	}
	return redis.NewScanCmdResult(matched[:end], next, nil)
}

func (f *fakeClient) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeClient) Close() error { return nil }

func TestRedisCache_GetSet(t *testing.T) {
	client := newFakeClient()
	c := NewRedisCacheWithClient(client, logger.NewNoopLogger())
	ctx := context.Background()

	_, err := c.Get(ctx, "movies:index")
	assert.ErrorIs(t, err, coreport.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "movies:index", []byte(`[1]`), coreport.Duration(time.Hour)))
	assert.Equal(t, time.Hour, client.ttls["movies:index"])

	value, err := c.Get(ctx, "movies:index")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(value))

	require.NoError(t, c.Delete(ctx, "movies:index"))
	_, err = c.Get(ctx, "movies:index")
	assert.ErrorIs(t, err, coreport.ErrCacheMiss)
}

func TestRedisCache_GetError(t *testing.T) {
	client := newFakeClient()
	client.failGet = errors.New("connection refused")
	c := NewRedisCacheWithClient(client, logger.NewNoopLogger())

	_, err := c.Get(context.Background(), "movies:index")
	require.Error(t, err)
	assert.NotErrorIs(t, err, coreport.ErrCacheMiss)
}

func TestRedisCache_DeletePrefix(t *testing.T) {
	client := newFakeClient()
	c := NewRedisCacheWithClient(client, logger.NewNoopLogger())
	ctx := context.Background()

	for _, key := range []string{"movies:index", "movies:uid:1", "movies:uid:2", "movies:page:10:1", "customers:1"} {
		require.NoError(t, c.Set(ctx, key, []byte("x"), 0))
	}

	require.NoError(t, c.DeletePrefix(ctx, "movies:"))

	assert.Equal(t, map[string]string{"customers:1": "x"}, client.values)
	assert.Greater(t, client.scans, 1, "the keyspace is walked in pages")
}

func TestInstrumentedCache(t *testing.T) {
	client := newFakeClient()
	m := metrics.New()
	c := NewInstrumentedCache(NewRedisCacheWithClient(client, logger.NewNoopLogger()), m)
	ctx := context.Background()

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, coreport.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	value, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(value))

	require.NoError(t, c.DeletePrefix(ctx, "k"))
	require.NoError(t, c.Delete(ctx, "k"))
}

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, coreport.ErrCacheMiss)
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.DeletePrefix(ctx, "k"))
}
