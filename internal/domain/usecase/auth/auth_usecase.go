package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/persistence"
)

// UseCase handles API consumer registration and credential checks
type UseCase struct {
	uow          persistence.UnitOfWork
	allowList    persistence.APIKeyAllowList
	tokenIssuer  coreport.TokenIssuer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	keyLength    int
}

// NewAuthUseCase creates a new auth UseCase. A non-positive keyLength selects entity.DefaultAPIKeyLength.
func NewAuthUseCase(
	uow persistence.UnitOfWork,
	allowList persistence.APIKeyAllowList,
	tokenIssuer coreport.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	keyLength int,
) *UseCase {
	if keyLength <= 0 {
		keyLength = entity.DefaultAPIKeyLength
	}
	return &UseCase{
		uow:          uow,
		allowList:    allowList,
		tokenIssuer:  tokenIssuer,
		timeProvider: timeProvider,
		logger:       logger,
		keyLength:    keyLength,
	}
}

// RegisterUser stores a new API consumer and allows its key. The user row is
// rolled back when the key cannot be added to the allow-list.
func (u *UseCase) RegisterUser(ctx context.Context, email string) (*entity.User, error) {
	if !entity.IsValidEmail(email) {
		return nil, errs.ErrInvalidEmail
	}

	key, err := entity.GenerateAPIKey(u.keyLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}

	user, err := entity.NewUser(email, key, u.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.register(txCtx, user); err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Failed to rollback user registration", map[string]any{
				"email": user.Email,
				"error": rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}

func (u *UseCase) register(txCtx context.Context, user *entity.User) error {
	if err := u.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
		return err
	}

	if _, err := u.allowList.Add(txCtx, user.APIKey); err != nil {
		u.logger.Error("Failed to add API key to the allow list", map[string]any{
			"email": user.Email,
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// AuthenticateToken verifies a customer token
func (u *UseCase) AuthenticateToken(_ context.Context, token string) (*coreport.TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errs.NewAuthError("missing token", nil)
	}

	claims, err := u.tokenIssuer.Verify(token)
	if err != nil {
		return nil, errs.NewAuthError("invalid token", err)
	}
	return claims, nil
}

// AuthenticateAPIKey checks key against the allow-list
func (u *UseCase) AuthenticateAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errs.NewAuthError("missing api key", nil)
	}

	allowed, err := u.allowList.Contains(ctx, key)
	if err != nil {
		u.logger.Error("API key allow list unavailable", map[string]any{
			"error": err.Error(),
		})
		return errs.NewAuthError("allow list unavailable", err)
	}
	if !allowed {
		return errs.NewAuthError("api key not allowed", nil)
	}
	return nil
}
