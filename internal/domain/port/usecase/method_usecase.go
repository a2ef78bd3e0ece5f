package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
)

// CreateMethodInput carries the fields of a new payment method
type CreateMethodInput struct {
	Name        string
	Description string
}

// UpdateMethodInput carries a partial method update
type UpdateMethodInput struct {
	Name        *string
	Description *string
	Active      *bool
}

// IsEmpty reports whether the update changes nothing
func (in UpdateMethodInput) IsEmpty() bool {
	return in.Name == nil && in.Description == nil && in.Active == nil
}

// MethodUseCase defines payment method business operations
type MethodUseCase interface {
	CreateMethod(ctx context.Context, input CreateMethodInput) (*entity.Method, error)
	ListMethods(ctx context.Context) ([]*entity.Method, error)
	GetMethod(ctx context.Context, id uint64) (*entity.Method, error)
	UpdateMethod(ctx context.Context, id uint64, input UpdateMethodInput) (*entity.Method, error)
	DeleteMethod(ctx context.Context, id uint64) error
	SetMethodActive(ctx context.Context, id uint64, active bool) error

	// CreateDefaultMethods seeds the built-in methods that are missing
	CreateDefaultMethods(ctx context.Context) error
}
