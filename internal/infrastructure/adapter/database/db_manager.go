package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	domainErr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/metrics"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// JobScheduler runs named jobs on a cron spec
type JobScheduler interface {
	Schedule(name, spec string, job func()) error
}

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	errorMapper  *ErrorMapper
	poolMonitor  *PoolMonitor
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// NewManagerWithDB wraps an already opened connection
func NewManagerWithDB(db *gorm.DB, config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	m := NewManager(config, logger, timeProvider)
	m.db = db
	m.poolMonitor = NewPoolMonitor(db, logger, config.QueryTimeout)
	return m
}

// Connect opens the connection pool, retrying RetryAttempts times
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"dsn":      m.config.Redacted(),
		"attempts": m.config.RetryAttempts,
	})

	var (
		gormDB *gorm.DB
		err    error
	)
	for attempt := 1; attempt <= m.config.RetryAttempts; attempt++ {
		if attempt > 1 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt,
				"of":      m.config.RetryAttempts,
				"delay":   m.config.RetryDelay.String(),
			})
			m.timeProvider.Sleep(coreport.Duration(m.config.RetryDelay))
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("database connection aborted: %w", ctxErr)
		}

		gormDB, err = gorm.Open(postgres.New(postgres.Config{DSN: m.config.DSN()}), m.gormConfig())
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt,
		})
	}
	if err != nil {
		return nil, m.errorMapper.MapError(
			fmt.Errorf("failed to connect after %d attempts: %w", m.config.RetryAttempts, err), "connect")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	m.configurePool(sqlDB)

	m.db = gormDB
	m.poolMonitor = NewPoolMonitor(gormDB, m.logger, m.config.QueryTimeout)

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})
	return m.db, nil
}

func (m *Manager) gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:                 NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
		NowFunc:                func() time.Time { return m.timeProvider.Now() },
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	}
}

func (m *Manager) configurePool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("%w: not connected", domainErr.ErrDatabaseConnection)
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return m.errorMapper.MapError(err, "ping")
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return m.errorMapper.MapError(sqlDB.PingContext(ctx), "ping")
}

// StartMonitoring exports pool statistics to m and schedules the pool health job
func (m *Manager) StartMonitoring(scheduler JobScheduler, mtr *metrics.Metrics) error {
	if m.db == nil {
		return fmt.Errorf("database is not connected")
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	if err := mtr.RegisterDBStats(sqlDB, m.config.Database); err != nil {
		m.logger.Warn("Failed to register database metrics", map[string]any{"error": err.Error()})
	}

	return scheduler.Schedule("db_pool_stats", m.config.PoolStatsSpec, m.poolMonitor.Run)
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	m.logger.Info("Closing database connection", nil)

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context bounded by the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger)
}
