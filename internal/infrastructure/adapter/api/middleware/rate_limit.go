package middleware

import (
	"sync"
	"time"

	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// DefaultLimiterIdleTTL is how long an unused client limiter is kept
const DefaultLimiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps a token bucket per client IP
type RateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientLimiter
	limit        rate.Limit
	burst        int
	idleTTL      time.Duration
	timeProvider coreport.TimeProvider
	metrics      *metrics.Metrics
	logger       coreport.Logger
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with the given burst per client
func NewRateLimiter(
	requestsPerSecond float64,
	burst int,
	timeProvider coreport.TimeProvider,
	m *metrics.Metrics,
	logger coreport.Logger,
) *RateLimiter {
	return &RateLimiter{
		clients:      make(map[string]*clientLimiter),
		limit:        rate.Limit(requestsPerSecond),
		burst:        burst,
		idleTTL:      DefaultLimiterIdleTTL,
		timeProvider: timeProvider,
		metrics:      m,
		logger:       logger,
	}
}

// Allow spends one token of key's bucket
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.timeProvider.Now()

	rl.mu.Lock()
	client, ok := rl.clients[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = client
	}
	client.lastSeen = now
	rl.mu.Unlock()

	return client.limiter.AllowN(now, 1)
}

// Middleware rejects clients over budget with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if rl.Allow(ip) {
			c.Next()
			return
		}

		rl.metrics.RateLimited()
		rl.logger.Warn("Rate limit exceeded", map[string]any{
			"ip":         ip,
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": coreport.RequestIDFromContext(c.Request.Context()),
		})
		abortWithError(c, domainerr.ErrRateLimited)
	}
}

// Cleanup drops limiters idle for longer than the idle TTL. It runs as a scheduled job.
func (rl *RateLimiter) Cleanup() {
	cutoff := rl.timeProvider.Now().Add(-rl.idleTTL)

	rl.mu.Lock()
	removed := 0
	for key, client := range rl.clients {
		if client.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
			removed++
		}
	}
	remaining := len(rl.clients)
	rl.mu.Unlock()

	if removed > 0 {
		rl.logger.Debug("Rate limiters cleaned up", map[string]any{
			"removed":   removed,
			"remaining": remaining,
		})
	}
}

// Size returns the number of tracked clients
func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}
