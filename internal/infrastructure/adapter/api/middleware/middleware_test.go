package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/time"
	mockusecase "github.com/amirhossein-jamali/payment-api/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuth(t *testing.T) {
	setup := func(t *testing.T) (*mockusecase.MockAuthUseCase, *gin.Engine) {
		uc := mockusecase.NewMockAuthUseCase(t)
		r := gin.New()
		r.Use(Auth(uc, nil, logger.NewNoopLogger()))
		r.GET("/v1/ping", func(c *gin.Context) {
			email := ""
			if claims, ok := TokenClaims(c); ok {
				email = claims.Email
			}
			c.String(http.StatusOK, "pong "+email)
		})
		return uc, r
	}
	claims := &core.TokenClaims{Email: "ann@example.com", Name: "Ann"}

	t.Run("jwt_token header", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().AuthenticateToken(mock.Anything, "tok").Return(claims, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(TokenHeader, "tok")
		w := serve(r, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong ann@example.com", w.Body.String())
	})

	t.Run("bearer token", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().AuthenticateToken(mock.Anything, "tok").Return(claims, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := serve(r, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("api key", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().AuthenticateAPIKey(mock.Anything, "k3y").Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(APIKeyHeader, "k3y")
		w := serve(r, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong ", w.Body.String())
	})

	t.Run("bad token falls back to api key", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().AuthenticateToken(mock.Anything, "forged").Return(nil, domainerr.NewAuthError("invalid token", nil))
		uc.EXPECT().AuthenticateAPIKey(mock.Anything, "k3y").Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(TokenHeader, "forged")
		req.Header.Set(APIKeyHeader, "k3y")
		w := serve(r, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejected key", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().AuthenticateAPIKey(mock.Anything, "bad").Return(domainerr.NewAuthError("api key not allowed", nil))

		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(APIKeyHeader, "bad")
		w := serve(r, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.UnauthorizedMessage, decodeError(t, w).Error)
	})

	t.Run("no credentials", func(t *testing.T) {
		_, r := setup(t)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.UnauthorizedMessage, resp.Error)
		assert.Equal(t, domainerr.CodeUnauthorized, resp.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	clock := timeadapter.NewFixedTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rl := NewRateLimiter(1, 2, clock, nil, logger.NewNoopLogger())

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	request := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		return serve(r, req).Code
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1"))
	assert.Equal(t, http.StatusOK, request("10.0.0.2"), "clients have separate budgets")

	clock.Advance(time.Second)
	assert.Equal(t, http.StatusOK, request("10.0.0.1"), "tokens refill with time")

	assert.Equal(t, 2, rl.Size())
	clock.Advance(DefaultLimiterIdleTTL + time.Second)
	rl.Cleanup()
	assert.Equal(t, 0, rl.Size())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, core.RequestIDFromContext(c.Request.Context()))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logger.NewNoopLogger()))
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Internal server error", resp.Error)
	assert.Equal(t, domainerr.CodeInternalServer, resp.Code)
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Success", statusText(http.StatusCreated))
	assert.Equal(t, "Redirect", statusText(http.StatusFound))
	assert.Equal(t, "Client Error", statusText(http.StatusNotFound))
	assert.Equal(t, "Server Error", statusText(http.StatusBadGateway))
}
