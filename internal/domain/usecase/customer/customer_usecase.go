package customer

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/persistence"
)

// UseCase handles customer-related business logic
type UseCase struct {
	customerRepo persistence.CustomerRepository
	tokenIssuer  coreport.TokenIssuer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCustomerUseCase creates a new customer UseCase
func NewCustomerUseCase(
	customerRepo persistence.CustomerRepository,
	tokenIssuer coreport.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		customerRepo: customerRepo,
		tokenIssuer:  tokenIssuer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListCustomers returns every customer
func (u *UseCase) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	return u.customerRepo.List(ctx)
}

// GetCustomer resolves a customer by id or email. Emails are sanitized the
// same way they are stored.
func (u *UseCase) GetCustomer(ctx context.Context, id entity.Identifier) (*entity.Customer, error) {
	if id.IsEmail() {
		return u.customerRepo.GetByEmail(ctx, entity.SanitizeText(id.Email))
	}
	return u.customerRepo.GetByID(ctx, id.ID)
}
