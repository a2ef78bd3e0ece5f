package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"gorm.io/gorm"
)

// poolSaturationWarning is the share of MaxOpenConnections in use that triggers a warning
const poolSaturationWarning = 0.8

// PoolStats is a snapshot of the connection pool
type PoolStats struct {
	OpenConnections    int           `json:"open_connections"`
	IdleConnections    int           `json:"idle_connections"`
	MaxOpenConnections int           `json:"max_open_connections"`
	InUse              int           `json:"in_use"`
	WaitCount          int64         `json:"wait_count"`
	WaitDuration       time.Duration `json:"wait_duration"`
	MaxIdleClosed      int64         `json:"max_idle_closed"`
	MaxLifetimeClosed  int64         `json:"max_lifetime_closed"`
}

// PoolMonitor samples the connection pool and pings the server. It runs as a scheduled job.
type PoolMonitor struct {
	db          *gorm.DB
	logger      coreport.Logger
	pingTimeout time.Duration

	mu   sync.RWMutex
	last PoolStats
}

// NewPoolMonitor creates a pool monitor
func NewPoolMonitor(db *gorm.DB, logger coreport.Logger, pingTimeout time.Duration) *PoolMonitor {
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	return &PoolMonitor{
		db:          db,
		logger:      logger,
		pingTimeout: pingTimeout,
	}
}

// Run collects one sample and logs failures
func (p *PoolMonitor) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), p.pingTimeout)
	defer cancel()

	if _, err := p.Collect(ctx); err != nil {
		p.logger.Error("Database pool check failed", map[string]any{"error": err.Error()})
	}
}

// Collect samples the pool, caches the result and pings the server
func (p *PoolMonitor) Collect(ctx context.Context) (PoolStats, error) {
	stats, err := p.Snapshot()
	if err != nil {
		return stats, err
	}

	fields := map[string]any{
		"in_use":    stats.InUse,
		"idle":      stats.IdleConnections,
		"max_open":  stats.MaxOpenConnections,
		"wait_time": stats.WaitDuration.String(),
	}
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*poolSaturationWarning {
		p.logger.Warn("Database connection pool nearly exhausted", fields)
	} else {
		p.logger.Debug("Database connection pool stats", fields)
	}

	sqlDB, err := p.db.DB()
	if err != nil {
		return stats, fmt.Errorf("failed to get database connection: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return stats, fmt.Errorf("database ping failed: %w", err)
	}
	return stats, nil
}

// Snapshot reads the current pool statistics and caches them
func (p *PoolMonitor) Snapshot() (PoolStats, error) {
	sqlDB, err := p.db.DB()
	if err != nil {
		return PoolStats{}, fmt.Errorf("failed to get database connection: %w", err)
	}

	raw := sqlDB.Stats()
	stats := PoolStats{
		OpenConnections:    raw.OpenConnections,
		IdleConnections:    raw.Idle,
		MaxOpenConnections: raw.MaxOpenConnections,
		InUse:              raw.InUse,
		WaitCount:          raw.WaitCount,
		WaitDuration:       raw.WaitDuration,
		MaxIdleClosed:      raw.MaxIdleClosed,
		MaxLifetimeClosed:  raw.MaxLifetimeClosed,
	}

	p.mu.Lock()
	p.last = stats
	p.mu.Unlock()
	return stats, nil
}

// Stats returns the last collected sample
func (p *PoolMonitor) Stats() PoolStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}
