package database

import (
	"strconv"

	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/config"
)

// FromAppConfig builds the database config from the loaded application config
func FromAppConfig(conf *config.Config) *Config {
	db := conf.Database

	cfg := &Config{
		Driver:          db.Driver,
		Host:            db.Host,
		Port:            ParsePort(db.Port),
		Username:        db.Username,
		Password:        db.Password,
		Database:        db.Database,
		SSLMode:         db.SSLMode,
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
		ConnMaxIdleTime: db.ConnMaxIdleTime,
		QueryTimeout:    db.QueryTimeout,
		LogLevel:        conf.Logger.Level,
		RetryAttempts:   db.RetryAttempts,
		RetryDelay:      db.RetryDelay,
		PoolStatsSpec:   conf.Scheduler.PoolStatsSpec,
	}
	if cfg.Driver == "" {
		cfg.Driver = "postgres"
	}
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	return cfg
}

// ParsePort parses a port string, falling back to 5432
func ParsePort(portStr string) int {
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return 5432
	}
	return port
}
