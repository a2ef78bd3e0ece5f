package allowlist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAllowList(t *testing.T) *FileAllowList {
	t.Helper()
	return NewFileAllowList(filepath.Join(t.TempDir(), "api_keys.json"), logger.NewNoopLogger())
}

func TestFileAllowList_AddCreatesFile(t *testing.T) {
	list := newAllowList(t)
	ctx := context.Background()

	added, err := list.Add(ctx, "key-1")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = list.Add(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, added, "adding twice is idempotent")

	data, err := os.ReadFile(list.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"allowed_api_keys": ["key-1"]}`, string(data))
}

func TestFileAllowList_Contains(t *testing.T) {
	list := newAllowList(t)
	ctx := context.Background()

	_, err := list.Contains(ctx, "key-1")
	assert.ErrorIs(t, err, errs.ErrAllowListUnavailable, "missing file")

	_, err = list.Add(ctx, "key-1")
	require.NoError(t, err)

	ok, err := list.Contains(ctx, "key-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = list.Contains(ctx, "key-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileAllowList_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_keys.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"allowed_api_keys": ["a", "b"]}`), 0o644))
	list := NewFileAllowList(path, logger.NewNoopLogger())

	keys, err := list.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	_, err = list.List(context.Background())
	assert.ErrorIs(t, err, errs.ErrAllowListUnavailable)

	_, err = list.Add(context.Background(), "c")
	assert.ErrorIs(t, err, errs.ErrAllowListUnavailable)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(data), "a corrupt file is not overwritten")
}

func TestFileAllowList_ConcurrentAdds(t *testing.T) {
	list := newAllowList(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := list.Add(ctx, fmt.Sprintf("key-%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	keys, err := list.List(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 20)
}

func TestFileAllowList_CanceledContext(t *testing.T) {
	list := newAllowList(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := list.Add(ctx, "key")
	assert.ErrorIs(t, err, context.Canceled)
}
