package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
)

// MethodRepository defines the storage operations for payment methods
type MethodRepository interface {
	Create(ctx context.Context, method *entity.Method) error
	Update(ctx context.Context, method *entity.Method) error
	GetByID(ctx context.Context, id uint64) (*entity.Method, error)
	// GetByName returns ErrMethodNotFound when no method carries name
	GetByName(ctx context.Context, name string) (*entity.Method, error)
	List(ctx context.Context) ([]*entity.Method, error)
	Delete(ctx context.Context, id uint64) error
}
