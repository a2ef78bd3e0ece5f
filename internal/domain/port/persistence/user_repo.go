package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
)

// UserRepository stores registered API consumers
type UserRepository interface {
	// Create saves a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: If the email is already registered
	Create(ctx context.Context, user *entity.User) error

	// GetByEmail retrieves a user by email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user is registered with email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
