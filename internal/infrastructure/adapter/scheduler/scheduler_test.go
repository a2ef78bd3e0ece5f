package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_Schedule(t *testing.T) {
	s := New(logger.NewNoopLogger(), nil)

	require.NoError(t, s.Schedule("pool_stats", "@every 30s", func() {}))
	require.NoError(t, s.Schedule("cleanup", "*/5 * * * *", func() {}))
	assert.Equal(t, []string{"cleanup", "pool_stats"}, s.Jobs())

	assert.Error(t, s.Schedule("pool_stats", "@every 1m", func() {}))
	assert.Error(t, s.Schedule("broken", "not a spec", func() {}))

	s.Remove("cleanup")
	assert.Equal(t, []string{"pool_stats"}, s.Jobs())
}

func TestScheduler_RunsJobs(t *testing.T) {
	s := New(logger.NewNoopLogger(), nil)
	ran := make(chan struct{}, 1)

	require.NoError(t, s.Schedule("tick", "@every 1s", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}))
	s.Start()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestCronLogger(t *testing.T) {
	fields := toFields([]any{"entry", 1, "next", "soon", "dangling"})
	assert.Equal(t, map[string]any{"entry": 1, "next": "soon"}, fields)

	assert.NotPanics(t, func() {
		cronLogger{logger: logger.NewNoopLogger()}.Error(errors.New("boom"), "panic", "job", "x")
	})
}
