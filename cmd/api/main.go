package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	authUseCase "github.com/amirhossein-jamali/payment-api/internal/domain/usecase/auth"
	customerUseCase "github.com/amirhossein-jamali/payment-api/internal/domain/usecase/customer"
	methodUseCase "github.com/amirhossein-jamali/payment-api/internal/domain/usecase/method"
	movieUseCase "github.com/amirhossein-jamali/payment-api/internal/domain/usecase/movie"
	paymentUseCase "github.com/amirhossein-jamali/payment-api/internal/domain/usecase/payment"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/allowlist"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

const redisConnectTimeout = 5 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	for _, warning := range warnings {
		appLogger.Warn("Configuration warning", map[string]any{"warning": warning})
	}

	tp := timeProvider.NewRealTimeProvider()
	appMetrics := metrics.New()

	// Connect to the database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	db, err := dbManager.Connect(context.Background())
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	if cfg.Migration.AutoMigrate {
		migrationMgr := migration.NewMigrationManager(db, appLogger, tp)
		if err := migrationMgr.MigrateAll(context.Background()); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db, appLogger)
	paymentRepo := repository.NewPaymentRepository(db, appLogger)
	methodRepo := repository.NewMethodRepository(db, appLogger)
	movieRepo := repository.NewMovieRepository(db, appLogger)
	uow := dbManager.CreateUnitOfWork()

	movieCache, closeCache := newCache(cfg, appLogger, appMetrics)
	defer closeCache()

	tokenIssuer, err := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token issuer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	allowList := allowlist.NewFileAllowList(cfg.Auth.AllowListPath, appLogger)

	// Initialize use cases
	customerUseCaseImpl := customerUseCase.NewCustomerUseCase(customerRepo, tokenIssuer, tp, appLogger)
	paymentUseCaseImpl := paymentUseCase.NewPaymentUseCase(paymentRepo, customerRepo, uow, tp, appLogger)
	methodUseCaseImpl := methodUseCase.NewMethodUseCase(methodRepo, tp, appLogger)
	movieUseCaseImpl := movieUseCase.NewMovieUseCase(movieRepo, movieCache, coreport.Duration(cfg.Cache.TTL), tp, appLogger)
	authUseCaseImpl := authUseCase.NewAuthUseCase(uow, allowList, tokenIssuer, tp, appLogger, cfg.Auth.APIKeyLength)

	if cfg.Migration.SeedMethods {
		if err := migration.SeedDefaultMethods(context.Background(), methodUseCaseImpl); err != nil {
			appLogger.Error("Failed to create default methods", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize API handlers
	handlers := routes.Handlers{
		Customer: handler.NewCustomerHandler(customerUseCaseImpl, appLogger),
		Payment:  handler.NewPaymentHandler(paymentUseCaseImpl, appLogger),
		Method:   handler.NewMethodHandler(methodUseCaseImpl, appLogger),
		Movie:    handler.NewMovieHandler(movieUseCaseImpl, appLogger),
		Auth:     handler.NewAuthHandler(authUseCaseImpl, appLogger),
		System:   handler.NewSystemHandler(dbManager, appLogger),
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, tp, appMetrics, appLogger)
	}

	// Background jobs
	jobs := scheduler.New(appLogger, appMetrics)
	if err := dbManager.StartMonitoring(jobs, appMetrics); err != nil {
		appLogger.Warn("Failed to start database monitoring", map[string]any{
			"error": err.Error(),
		})
	}
	if rateLimiter != nil {
		if err := jobs.Schedule("rate_limit_cleanup", cfg.Scheduler.RateLimitCleanupSpec, rateLimiter.Cleanup); err != nil {
			appLogger.Warn("Failed to schedule rate limiter cleanup", map[string]any{
				"error": err.Error(),
			})
		}
	}
	jobs.Start()

	router := gin.New()
	routes.SetupMiddlewares(router, routes.MiddlewareOptions{
		Logger:       appLogger,
		TimeProvider: tp,
		Metrics:      appMetrics,
		CORSOrigins:  cfg.Server.CORSOrigins,
		RateLimiter:  rateLimiter,
	})
	routes.SetupRoutes(router, handlers, middleware.Auth(authUseCaseImpl, appMetrics, appLogger))
	if cfg.Metrics.Enabled {
		routes.SetupMetrics(router, cfg.Metrics.Path, appMetrics)
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if err := jobs.Stop(ctx); err != nil {
		appLogger.Warn("Background jobs did not stop in time", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newCache connects the movie cache. An unreachable redis degrades to a no-op cache.
func newCache(cfg *config.Config, appLogger coreport.Logger, m *metrics.Metrics) (coreport.Cache, func()) {
	if !cfg.Cache.Enabled {
		return cache.NewInstrumentedCache(cache.NewNoopCache(), m), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	redisCache, err := cache.NewRedisCache(ctx, cache.Options{
		Host:     cfg.Cache.Host,
		Port:     cfg.Cache.Port,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	}, appLogger)
	if err != nil {
		appLogger.Warn("Redis unavailable, movie cache disabled", map[string]any{
			"addr":  fmt.Sprintf("%s:%d", cfg.Cache.Host, cfg.Cache.Port),
			"error": err.Error(),
		})
		return cache.NewInstrumentedCache(cache.NewNoopCache(), m), func() {}
	}

	return cache.NewInstrumentedCache(redisCache, m), func() {
		if err := redisCache.Close(); err != nil {
			appLogger.Warn("Failed to close redis", map[string]any{"error": err.Error()})
		}
	}
}
