package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/metrics"
	timeadapter "github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/time"
	mockusecase "github.com/amirhossein-jamali/payment-api/mocks/port/usecase"
)

type upHealth struct{}

func (upHealth) Health(context.Context) database.HealthReport {
	return database.HealthReport{Status: database.StatusUp}
}

type testApp struct {
	router    *gin.Engine
	customers *mockusecase.MockCustomerUseCase
	methods   *mockusecase.MockMethodUseCase
	auth      *mockusecase.MockAuthUseCase
}

func newTestApp(t *testing.T) testApp {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()
	clock := timeadapter.NewFixedTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := metrics.New()

	app := testApp{
		router:    gin.New(),
		customers: mockusecase.NewMockCustomerUseCase(t),
		methods:   mockusecase.NewMockMethodUseCase(t),
		auth:      mockusecase.NewMockAuthUseCase(t),
	}

	SetupMiddlewares(app.router, MiddlewareOptions{
		Logger:       log,
		TimeProvider: clock,
		Metrics:      m,
		CORSOrigins:  []string{"*"},
	})
	SetupRoutes(app.router, Handlers{
		Customer: handler.NewCustomerHandler(app.customers, log),
		Payment:  handler.NewPaymentHandler(mockusecase.NewMockPaymentUseCase(t), log),
		Method:   handler.NewMethodHandler(app.methods, log),
		Movie:    handler.NewMovieHandler(mockusecase.NewMockMovieUseCase(t), log),
		Auth:     handler.NewAuthHandler(app.auth, log),
		System:   handler.NewSystemHandler(upHealth{}, log),
	}, middleware.Auth(app.auth, m, log))
	SetupMetrics(app.router, "/metrics", m)
	return app
}

func (a testApp) do(method, path string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestRoutes_Public(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello world!", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/swagger.json").Code)

	w = app.do(http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRoutes_NotFound(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":4040,"error":"page not found"}`, w.Body.String())

	w = app.do(http.MethodPatch, "/health")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "page not found")
}

func TestRoutes_V1RequiresCredentials(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/v1/customers")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized! Register at /register")

	app.auth.EXPECT().AuthenticateAPIKey(mock.Anything, "k3y").Return(nil)
	app.methods.EXPECT().ListMethods(mock.Anything).Return([]*entity.Method{}, nil)

	w = app.do(http.MethodGet, "/v1/methods", middleware.APIKeyHeader, "k3y")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
