package routes

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Customer *handler.CustomerHandler
	Payment  *handler.PaymentHandler
	Method   *handler.MethodHandler
	Movie    *handler.MovieHandler
	Auth     *handler.AuthHandler
	System   *handler.SystemHandler
}

// MiddlewareOptions configures the global middleware chain
type MiddlewareOptions struct {
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	Metrics      *metrics.Metrics
	CORSOrigins  []string

	// RateLimiter is optional; nil disables rate limiting
	RateLimiter *middleware.RateLimiter
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, opts MiddlewareOptions) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(opts.Logger))
	router.Use(middleware.Logger(opts.Logger, opts.TimeProvider))
	router.Use(middleware.Metrics(opts.Metrics, opts.TimeProvider))
	router.Use(middleware.CORS(opts.CORSOrigins))
	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.Middleware())
	}
}

// SetupRoutes configures all the routes for the API. authMiddleware guards the /v1 group.
func SetupRoutes(router *gin.Engine, h Handlers, authMiddleware gin.HandlerFunc) {
	router.GET("/", h.System.Home)
	router.GET("/health", h.System.Health)
	router.GET("/docs", h.System.Docs)
	router.GET("/swagger.json", h.System.SwaggerJSON)

	router.POST("/register", h.Customer.Create)
	router.POST("/auth/register", h.Auth.Register)

	v1 := router.Group("/v1", authMiddleware)
	{
		customers := v1.Group("/customers")
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.POST("/:id/deactivate", h.Customer.Deactivate)
		customers.POST("/:id/reactivate", h.Customer.Reactivate)

		payments := v1.Group("/payments")
		payments.GET("", h.Payment.List)
		payments.POST("", h.Payment.Create)
		payments.GET("/:id", h.Payment.Get)
		payments.PUT("/:id", h.Payment.Update)
		payments.DELETE("/:id", h.Payment.Delete)

		methods := v1.Group("/methods")
		methods.GET("", h.Method.List)
		methods.POST("", h.Method.Create)
		methods.GET("/:id", h.Method.Get)
		methods.PUT("/:id", h.Method.Update)
		methods.DELETE("/:id", h.Method.Delete)
		methods.POST("/:id/deactivate", h.Method.Deactivate)
		methods.POST("/:id/reactivate", h.Method.Reactivate)

		movies := v1.Group("/movies")
		movies.GET("", h.Movie.List)
		movies.POST("", h.Movie.Create)
		movies.GET("/:uid", h.Movie.Get)
		movies.PUT("/:uid", h.Movie.Replace)
		movies.PATCH("/:uid", h.Movie.Patch)
		movies.DELETE("/:uid", h.Movie.Delete)
	}

	router.HandleMethodNotAllowed = true
	router.NoRoute(pageNotFound)
	router.NoMethod(pageNotFound)
}

// SetupMetrics exposes the prometheus registry of m at path
func SetupMetrics(router *gin.Engine, path string, m *metrics.Metrics) {
	router.GET(path, gin.WrapH(m.Handler()))
}

func pageNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{
		Code:  domainerr.ErrorCode(domainerr.ErrNotFound),
		Error: "page not found",
	})
}
