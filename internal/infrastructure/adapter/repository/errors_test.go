package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	assert.Equal(t, ErrorType(""), c.Classify(nil))
	assert.Equal(t, NotFoundError, c.Classify(fmt.Errorf("find: %w", gorm.ErrRecordNotFound)))
	assert.Equal(t, DuplicateKeyError, c.Classify(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, TimeoutError, c.Classify(context.DeadlineExceeded))
	assert.Equal(t, TransientError, c.Classify(&pgconn.PgError{Code: "40P01"}))
	assert.Equal(t, StorageError, c.Classify(errors.New("boom")))
}

func TestRetryOnTransientError(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
	c := NewErrorClassifier()
	log := logger.NewNoopLogger()

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, c, log, func() error {
			calls++
			return &pgconn.PgError{Code: "40001"}
		})
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, c, log, func() error {
			calls++
			return &pgconn.PgError{Code: "23505"}
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		slow := RetryConfig{MaxRetries: 3, RetryInterval: time.Second, MaxInterval: time.Second}
		err := RetryOnTransientError(ctx, slow, c, log, func() error {
			return &pgconn.PgError{Code: "40001"}
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 40 * time.Millisecond}
	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 20*time.Millisecond, calculateBackoffWithJitter(1, cfg))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(5, cfg))
}
