package logger

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level core.LogLevel) (*ZapLogger, *observer.ObservedLogs) {
	atomic := zap.NewAtomicLevelAt(toZapLevel(level))
	obsCore, logs := observer.New(atomic)
	return NewZapLoggerWithCore(obsCore, atomic), logs
}

func TestZapLogger_Fields(t *testing.T) {
	l, logs := newObservedLogger(core.LogLevelDebug)

	l.Info("Customer created", map[string]any{"customer_id": uint64(7), "error": errors.New("boom")})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Customer created", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, uint64(7), ctx["customer_id"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestZapLogger_SetLevel(t *testing.T) {
	l, logs := newObservedLogger(core.LogLevelInfo)

	l.Debug("hidden", nil)
	assert.Equal(t, 0, logs.Len())
	assert.Equal(t, core.LogLevelInfo, l.GetLevel())

	l.SetLevel(core.LogLevelDebug)
	l.Debug("visible", nil)
	assert.Equal(t, 1, logs.Len())

	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	l.Warn("dropped", nil)
	l.Error("kept", nil)
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, "kept", logs.All()[1].Message)
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(Options{Level: "warn", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	_, err = NewZapLogger(Options{Level: "info", Output: "/nonexistent-dir/log.txt"})
	assert.Error(t, err)
}

func TestNoopLogger(t *testing.T) {
	var l core.Logger = NewNoopLogger()
	l.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
	assert.NoError(t, l.Flush())
}
