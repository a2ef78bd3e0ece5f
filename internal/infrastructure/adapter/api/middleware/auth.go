package middleware

import (
	"strings"

	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// Credential headers
const (
	TokenHeader  = "jwt_token"
	APIKeyHeader = "X-API-Key"
)

const claimsKey = "token_claims"

// Auth lets a request through when it carries a valid customer token or an allowed API key.
// The token claims are stored in the context for TokenClaims.
func Auth(authUseCase usecase.AuthUseCase, m *metrics.Metrics, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		token := requestToken(c)
		key := strings.TrimSpace(c.GetHeader(APIKeyHeader))

		if token != "" {
			claims, err := authUseCase.AuthenticateToken(ctx, token)
			if err == nil {
				c.Set(claimsKey, claims)
				c.Next()
				return
			}
			m.AuthFailed("jwt")
			logger.Debug("Token rejected", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": coreport.RequestIDFromContext(ctx),
				"error":      err.Error(),
			})
		}

		if key != "" {
			err := authUseCase.AuthenticateAPIKey(ctx, key)
			if err == nil {
				c.Next()
				return
			}
			m.AuthFailed("api_key")
			logger.Debug("API key rejected", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": coreport.RequestIDFromContext(ctx),
				"error":      err.Error(),
			})
		}

		if token == "" && key == "" {
			m.AuthFailed("none")
		}
		abortWithError(c, domainerr.NewAuthError("no valid credentials", nil))
	}
}

// TokenClaims returns the claims of the token that authenticated the request, if any
func TokenClaims(c *gin.Context) (*coreport.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*coreport.TokenClaims)
	return claims, ok && claims != nil
}

// requestToken reads the jwt_token header, falling back to a bearer Authorization header
func requestToken(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(TokenHeader)); token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
