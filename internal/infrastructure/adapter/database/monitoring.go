package database

import (
	"context"
)

// Health statuses
const (
	StatusUp   = "up"
	StatusDown = "down"
)

// HealthReport describes the database state for the health endpoint
type HealthReport struct {
	Status    string    `json:"status"`
	LatencyMS int64     `json:"latency_ms"`
	Pool      PoolStats `json:"pool"`
	Error     string    `json:"error,omitempty"`
}

// Health pings the database and reports latency together with fresh pool statistics
func (m *Manager) Health(ctx context.Context) HealthReport {
	start := m.timeProvider.Now()
	err := m.Ping(ctx)
	report := HealthReport{
		Status:    StatusUp,
		LatencyMS: m.timeProvider.Since(start).Std().Milliseconds(),
	}

	if m.poolMonitor != nil {
		if stats, statsErr := m.poolMonitor.Snapshot(); statsErr == nil {
			report.Pool = stats
		}
	}

	if err != nil {
		report.Status = StatusDown
		report.Error = err.Error()
		m.logger.Warn("Database health check failed", map[string]any{
			"error":      err.Error(),
			"latency_ms": report.LatencyMS,
		})
	}
	return report
}
