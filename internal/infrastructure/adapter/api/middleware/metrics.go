package middleware

import (
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies by route template
func Metrics(m *metrics.Metrics, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		done := m.RequestStarted()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		done(c.Request.Method, route, c.Writer.Status(), timeProvider.Since(start).Std())
	}
}
