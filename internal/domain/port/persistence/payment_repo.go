package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
)

// PaymentRepository defines the storage operations for payments
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error

	// Update persists description, amount and recipient of an existing payment
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the payment doesn't exist
	Update(ctx context.Context, payment *entity.Payment) error

	// GetByID retrieves a payment by ID
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the payment doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Payment, error)

	List(ctx context.Context) ([]*entity.Payment, error)

	// Delete removes a payment by ID
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the payment doesn't exist
	Delete(ctx context.Context, id uint64) error
}
