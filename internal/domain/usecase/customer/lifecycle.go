package customer

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
)

// DeleteCustomer removes a customer addressed by id or email
func (u *UseCase) DeleteCustomer(ctx context.Context, id entity.Identifier) error {
	customer, err := u.GetCustomer(ctx, id)
	if err != nil {
		return err
	}

	if err := u.customerRepo.Delete(ctx, customer.ID); err != nil {
		return err
	}

	u.logger.Info("Customer deleted", map[string]any{
		"customer_id": customer.ID,
	})
	return nil
}

// DeactivateCustomer marks a customer inactive
func (u *UseCase) DeactivateCustomer(ctx context.Context, id entity.Identifier) error {
	return u.setActive(ctx, id, false)
}

// ReactivateCustomer marks a customer active
func (u *UseCase) ReactivateCustomer(ctx context.Context, id entity.Identifier) error {
	return u.setActive(ctx, id, true)
}

func (u *UseCase) setActive(ctx context.Context, id entity.Identifier, active bool) error {
	customer, err := u.GetCustomer(ctx, id)
	if err != nil {
		return err
	}

	if active {
		customer.Reactivate(u.timeProvider)
	} else {
		customer.Deactivate(u.timeProvider)
	}

	if err := u.customerRepo.Update(ctx, customer); err != nil {
		return err
	}

	u.logger.Info("Customer activation changed", map[string]any{
		"customer_id": customer.ID,
		"active":      active,
	})
	return nil
}
