package middleware

import (
	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": coreport.RequestIDFromContext(c.Request.Context()),
					"user_agent": c.Request.UserAgent(),
				})

				status, body := dto.NewErrorResponse(domainerr.ErrInternalServer)
				c.AbortWithStatusJSON(status, body)
			}
		}()

		c.Next()
	}
}

// abortWithError writes the mapped response of err and stops the chain
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, body := dto.NewErrorResponse(err)
	c.AbortWithStatusJSON(status, body)
}
