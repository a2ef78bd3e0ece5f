package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
)

// AuthUseCase defines registration and credential checks
type AuthUseCase interface {
	// RegisterUser stores a new API consumer and adds its key to the allow-list atomically
	RegisterUser(ctx context.Context, email string) (*entity.User, error)

	// AuthenticateToken verifies a customer token
	AuthenticateToken(ctx context.Context, token string) (*core.TokenClaims, error)

	// AuthenticateAPIKey checks key against the allow-list
	AuthenticateAPIKey(ctx context.Context, key string) error
}
