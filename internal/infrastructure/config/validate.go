package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate ensures all required configuration values are present.
// The returned warnings are not fatal and should be logged by the caller.
func (c *Config) Validate() (warnings []string, err error) {
	var missingConfigs []string

	if c.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if c.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if c.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if c.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or PA_DB_HOST)")
	}
	if c.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or PA_DB_PORT)")
	}
	if c.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PA_DB_USER)")
	}
	if c.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or PA_DB_NAME)")
	}
	if c.Database.Password == "" && c.Environment == Production {
		missingConfigs = append(missingConfigs, "database.password (or PA_DB_PASSWORD)")
	}
	if c.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if c.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}
	if c.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or PA_JWT_SECRET)")
	}
	if c.Auth.AllowListPath == "" {
		missingConfigs = append(missingConfigs, "auth.allowListPath")
	}
	if c.Cache.Enabled && c.Cache.Host == "" {
		missingConfigs = append(missingConfigs, "cache.host (or PA_REDIS_HOST)")
	}

	switch c.Environment {
	case "":
		missingConfigs = append(missingConfigs, "environment")
	case Development, Production, Test:
	default:
		return nil, fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if len(missingConfigs) > 0 {
		return nil, fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if c.Auth.APIKeyLength < 16 {
		return nil, fmt.Errorf("auth.apiKeyLength must be at least 16, got %d", c.Auth.APIKeyLength)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return nil, fmt.Errorf("rateLimit.requestsPerSecond and rateLimit.burst must be positive")
	}

	if c.Auth.JWTSecret == DefaultJWTSecret {
		if c.Environment == Production {
			return nil, fmt.Errorf("auth.jwtSecret must be changed from the default in production")
		}
		warnings = append(warnings, "auth.jwtSecret is the default development key")
	}

	if c.Environment == Production {
		switch strings.ToLower(c.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if c.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if c.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
	}

	return warnings, nil
}
