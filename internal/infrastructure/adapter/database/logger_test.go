package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	zaplogger "github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func newObservedDBLogger(level string) (*DatabaseLogger, *timeadapter.FixedTimeProvider, *observer.ObservedLogs) {
	atomic := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	obsCore, logs := observer.New(atomic)
	tp := timeadapter.NewFixedTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewDatabaseLogger(zaplogger.NewZapLoggerWithCore(obsCore, atomic), tp, level), tp, logs
}

func TestDatabaseLogger_Trace(t *testing.T) {
	l, tp, logs := newObservedDBLogger("info")
	ctx := coreport.WithRequestID(context.Background(), "req-1")
	sql := `SELECT * FROM "customers" WHERE "customers"."id" = 7`

	begin := tp.Now()
	tp.Advance(10 * time.Millisecond)
	l.Trace(ctx, begin, func() (string, int64) { return sql, 1 }, nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.DebugLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "SELECT", fields["type"])
	assert.Equal(t, "customers", fields["table"])
	assert.Equal(t, "req-1", fields["request_id"])
}

func TestDatabaseLogger_TraceSlowAndErrors(t *testing.T) {
	l, tp, logs := newObservedDBLogger("warn")
	fc := func() (string, int64) { return `UPDATE "payments" SET "amount"=1`, 1 }

	begin := tp.Now()
	tp.Advance(time.Second)
	l.Trace(context.Background(), begin, fc, nil)
	l.Trace(context.Background(), begin, fc, errors.New("boom"))
	l.Trace(context.Background(), tp.Now(), fc, gorm.ErrRecordNotFound)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, "Slow SQL query", logs.All()[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestDatabaseLogger_Silent(t *testing.T) {
	l, tp, logs := newObservedDBLogger("silent")

	l.Trace(context.Background(), tp.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	l.Error(context.Background(), "failed %s", "x")

	assert.Equal(t, 0, logs.Len())
}

func TestExtractTableName(t *testing.T) {
	testCases := []struct {
		sql  string
		want string
	}{
		{`INSERT INTO "movies" ("uid") VALUES ($1)`, "movies"},
		{`update customers set name = $1`, "customers"},
		{`SELECT count(*) FROM "public"."methods"`, "methods"},
		{`SELECT 1`, ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, extractTableName(tc.sql), tc.sql)
	}
}
