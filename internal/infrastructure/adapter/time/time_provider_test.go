package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestFixedTimeProvider(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var tp core.TimeProvider = NewFixedTimeProvider(start)

	assert.Equal(t, start, tp.Now())

	tp.Sleep(core.Minute)
	assert.Equal(t, start.Add(time.Minute), tp.Now())
	assert.Equal(t, core.Minute, tp.Since(start))

	ctx, cancel := tp.WithTimeout(context.Background(), core.Second)
	defer cancel()
	_, ok := ctx.Deadline()
	assert.True(t, ok)
}

func TestRealTimeProvider(t *testing.T) {
	tp := NewRealTimeProvider()
	assert.Equal(t, time.UTC, tp.Now().Location())
	assert.GreaterOrEqual(t, tp.Since(tp.Now().Add(-time.Second)), core.Second)
}
