package customer

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
)

// CreateCustomer validates the input, issues the customer token and stores the customer
func (u *UseCase) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*entity.Customer, error) {
	customer, err := entity.NewCustomer(input.Name, input.Email, input.Balance, u.timeProvider)
	if err != nil {
		u.logger.Debug("Rejected customer input", map[string]any{
			"email": input.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	token, err := u.tokenIssuer.Issue(customer.TokenClaims())
	if err != nil {
		u.logger.Error("Failed to issue customer token", map[string]any{
			"email": customer.Email,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrTokenIssue, err)
	}
	customer.JWT = token

	if err := u.customerRepo.Create(ctx, customer); err != nil {
		u.logger.Error("Failed to create customer", map[string]any{
			"email": customer.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Customer created", map[string]any{
		"customer_id": customer.ID,
		"email":       customer.Email,
	})

	return customer, nil
}
