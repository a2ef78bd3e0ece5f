package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/docs"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// HealthChecker reports the state of the database
type HealthChecker interface {
	Health(ctx context.Context) database.HealthReport
}

// SystemHandler serves the greeting, health and documentation endpoints
type SystemHandler struct {
	health HealthChecker
	logger coreport.Logger
}

// NewSystemHandler creates a new system handler instance
func NewSystemHandler(health HealthChecker, logger coreport.Logger) *SystemHandler {
	return &SystemHandler{
		health: health,
		logger: logger,
	}
}

// Home handles GET /
func (h *SystemHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Hello world!")
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	report := h.health.Health(c.Request.Context())

	status := http.StatusOK
	if report.Status != database.StatusUp {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

// Docs handles GET /docs
func (h *SystemHandler) Docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", docs.SwaggerUI())
}

// SwaggerJSON handles GET /swagger.json
func (h *SystemHandler) SwaggerJSON(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", docs.OpenAPI())
}
