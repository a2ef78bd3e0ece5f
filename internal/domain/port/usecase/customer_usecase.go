package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
)

// CreateCustomerInput carries the fields of a new customer
type CreateCustomerInput struct {
	Name    string
	Email   string
	Balance string
}

// UpdateCustomerInput carries a partial customer update. Nil fields are left unchanged.
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Balance *string
	Active  *bool
}

// IsEmpty reports whether the update changes nothing
func (in UpdateCustomerInput) IsEmpty() bool {
	return in.Name == nil && in.Email == nil && in.Balance == nil && in.Active == nil
}

// CustomerUseCase defines customer business operations
type CustomerUseCase interface {
	// CreateCustomer validates, stores and issues a token for a new customer
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	GetCustomer(ctx context.Context, id entity.Identifier) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id uint64, input UpdateCustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id entity.Identifier) error
	DeactivateCustomer(ctx context.Context, id entity.Identifier) error
	ReactivateCustomer(ctx context.Context, id entity.Identifier) error
}
