package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSlowThreshold is the query duration above which a statement is logged as slow
const DefaultSlowThreshold = 200 * time.Millisecond

// DatabaseLogger forwards GORM logs to the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a GORM logger. level is one of silent, error, warn, info or debug.
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string) *DatabaseLogger {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      parseGormLevel(level),
		slowThreshold: DefaultSlowThreshold,
		timeProvider:  timeProvider,
	}
}

func parseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn", "warning":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// WithSlowThreshold returns a copy of the logger with another slow query threshold
func (l *DatabaseLogger) WithSlowThreshold(threshold time.Duration) *DatabaseLogger {
	newLogger := *l
	newLogger.slowThreshold = threshold
	return &newLogger
}

func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Trace logs an executed statement. Errors and slow statements are always reported,
// regular statements only at debug level.
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.since(begin)
	sql, rows := fc()

	fields := l.baseFields(ctx)
	fields["elapsed_ms"] = float64(elapsed.Microseconds()) / 1000
	fields["rows"] = rows
	fields["sql"] = sql
	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if table := extractTableName(sql); table != "" {
		fields["table"] = table
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.logLevel >= logger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Error("SQL error", fields)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		fields["threshold_ms"] = l.slowThreshold.Milliseconds()
		l.coreLogger.Warn("Slow SQL query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL query", fields)
	}
}

func (l *DatabaseLogger) since(begin time.Time) time.Duration {
	if l.timeProvider != nil {
		return l.timeProvider.Since(begin).Std()
	}
	return time.Since(begin)
}

func (l *DatabaseLogger) baseFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if id := coreport.RequestIDFromContext(ctx); id != "" {
		fields["request_id"] = id
	}
	return fields
}

// extractQueryType returns the leading SQL verb
func extractQueryType(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return ""
	}

	switch verb := strings.ToUpper(fields[0]); verb {
	case "SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "ALTER", "DROP", "BEGIN", "COMMIT", "ROLLBACK", "SET":
		return verb
	default:
		return ""
	}
}

// extractTableName returns the first table named after FROM, INTO or UPDATE.
// It is a heuristic for log grouping, not a parser.
func extractTableName(sql string) string {
	tokens := strings.Fields(sql)
	for i := 0; i < len(tokens)-1; i++ {
		switch strings.ToUpper(tokens[i]) {
		case "FROM", "INTO", "UPDATE":
			name := strings.Trim(tokens[i+1], `"(;`)
			if dot := strings.LastIndex(name, `"."`); dot >= 0 {
				name = name[dot+3:]
			}
			return strings.ToLower(name)
		}
	}
	return ""
}
