package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "PA"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the given directories and applies env overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.corsOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.jwtSecret", DefaultJWTSecret)
	v.SetDefault("auth.tokenTTL", 0)
	v.SetDefault("auth.allowListPath", "./api_keys.json")
	v.SetDefault("auth.apiKeyLength", 32)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.host", "127.0.0.1")
	v.SetDefault("cache.port", 6379)
	v.SetDefault("cache.ttl", 3600)

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerSecond", 20)
	v.SetDefault("rateLimit.burst", 40)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("scheduler.poolStatsSpec", "@every 30s")
	v.SetDefault("scheduler.rateLimitCleanupSpec", "@every 5m")

	v.SetDefault("migration.autoMigrate", true)
	v.SetDefault("migration.seedMethods", true)
}

// getEnvironment determines the environment from PA_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes the documented environment variables win over file values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"PA_DB_HOST":         "database.host",
		"PA_DB_PORT":         "database.port",
		"PA_DB_USER":         "database.username",
		"PA_DB_PASSWORD":     "database.password",
		"PA_DB_NAME":         "database.database",
		"PA_DB_SSLMODE":      "database.sslMode",
		"PA_SERVER_HOST":     "server.host",
		"PA_LOG_LEVEL":       "logger.level",
		"PA_ALLOW_LIST_PATH": "auth.allowListPath",
		"PA_REDIS_HOST":      "cache.host",
		"PA_REDIS_PASSWORD":  "cache.password",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"PA_SERVER_PORT":       "server.port",
		"PA_REDIS_PORT":        "cache.port",
		"PA_DB_MAX_OPEN_CONNS": "database.maxOpenConns",
		"PA_DB_MAX_IDLE_CONNS": "database.maxIdleConns",
	}
	for env, key := range intOverrides {
		if val := getEnvInt(env, 0); val > 0 {
			v.Set(key, val)
		}
	}

	// JWT_SECRET is still read for deployments that predate the prefix.
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		v.Set("auth.jwtSecret", secret)
	}
	if secret := os.Getenv("PA_JWT_SECRET"); secret != "" {
		v.Set("auth.jwtSecret", secret)
	}
}

func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw integers read from yaml into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second

	config.Auth.TokenTTL = config.Auth.TokenTTL * time.Minute
	config.Cache.TTL = config.Cache.TTL * time.Second
}
