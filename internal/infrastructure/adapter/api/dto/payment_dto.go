package dto

import (
	"time"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
)

// CreatePaymentRequest is the body of POST /v1/payments
type CreatePaymentRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      Amount `json:"amount" binding:"required"`
	Recipient   uint64 `json:"recipient" binding:"required"`
}

// ToInput converts the request into use case input for the given payer
func (r CreatePaymentRequest) ToInput(payerEmail string) usecase.CreatePaymentInput {
	return usecase.CreatePaymentInput{
		Description: r.Description,
		Amount:      r.Amount.String(),
		Recipient:   r.Recipient,
		PayerEmail:  payerEmail,
	}
}

// UpdatePaymentRequest is the body of PUT /v1/payments/:id
type UpdatePaymentRequest struct {
	Description *string `json:"description"`
	Amount      *Amount `json:"amount"`
	Recipient   *uint64 `json:"recipient"`
}

// ToInput converts the request into use case input
func (r UpdatePaymentRequest) ToInput() usecase.UpdatePaymentInput {
	return usecase.UpdatePaymentInput{
		Description: r.Description,
		Amount:      amountPtr(r.Amount),
		Recipient:   r.Recipient,
	}
}

// PaymentResponse is the public view of a payment
type PaymentResponse struct {
	ID           uint64    `json:"id"`
	Amount       string    `json:"amount"`
	FromCustomer *uint64   `json:"fromCustomer"`
	ToCustomer   uint64    `json:"toCustomer"`
	CreatedAt    time.Time `json:"createdAt"`
	Description  string    `json:"description"`
}

func NewPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		Amount:       p.GetAmount(),
		FromCustomer: p.FromCustomer,
		ToCustomer:   p.ToCustomer,
		CreatedAt:    p.CreatedAt,
		Description:  p.Description,
	}
}

func NewPaymentListResponse(payments []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, NewPaymentResponse(p))
	}
	return out
}
