package customer

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
)

// UpdateCustomer applies a partial update. The customer is resolved before the
// input is validated, so an unknown id wins over a bad payload.
func (u *UseCase) UpdateCustomer(ctx context.Context, id uint64, input usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := u.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.IsEmpty() {
		return nil, errs.ErrInvalidJSON
	}

	if input.Name != nil {
		if err := customer.Rename(*input.Name, u.timeProvider); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if err := customer.ChangeEmail(*input.Email, u.timeProvider); err != nil {
			return nil, err
		}
	}
	if input.Balance != nil {
		if err := customer.SetBalance(*input.Balance, u.timeProvider); err != nil {
			return nil, err
		}
	}
	if input.Active != nil {
		if *input.Active {
			customer.Reactivate(u.timeProvider)
		} else {
			customer.Deactivate(u.timeProvider)
		}
	}

	// The token embeds name and email
	if input.Name != nil || input.Email != nil {
		token, err := u.tokenIssuer.Issue(customer.TokenClaims())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrTokenIssue, err)
		}
		customer.JWT = token
	}

	if err := u.customerRepo.Update(ctx, customer); err != nil {
		u.logger.Error("Failed to update customer", map[string]any{
			"customer_id": id,
			"error":       err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Customer updated", map[string]any{
		"customer_id": id,
	})
	return customer, nil
}
