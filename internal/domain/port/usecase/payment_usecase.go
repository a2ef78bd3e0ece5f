package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
)

// CreatePaymentInput carries the fields of a new payment.
// PayerEmail identifies the paying customer when the caller is authenticated by token.
type CreatePaymentInput struct {
	Description string
	Amount      string
	Recipient   uint64
	PayerEmail  string
}

// UpdatePaymentInput carries a partial payment update
type UpdatePaymentInput struct {
	Description *string
	Amount      *string
	Recipient   *uint64
}

// IsEmpty reports whether the update changes nothing
func (in UpdatePaymentInput) IsEmpty() bool {
	return in.Description == nil && in.Amount == nil && in.Recipient == nil
}

// PaymentUseCase defines payment business operations
type PaymentUseCase interface {
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*entity.Payment, error)
	ListPayments(ctx context.Context) ([]*entity.Payment, error)
	GetPayment(ctx context.Context, id uint64) (*entity.Payment, error)
	UpdatePayment(ctx context.Context, id uint64, input UpdatePaymentInput) (*entity.Payment, error)
	DeletePayment(ctx context.Context, id uint64) error
}
