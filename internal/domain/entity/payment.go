package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
)

// Payment is a transfer of an amount to a recipient customer
type Payment struct {
	ID           uint64
	Description  string
	amount       int64 // cents
	CreatedAt    time.Time
	FromCustomer *uint64 // nil when the payer is not a known customer
	ToCustomer   uint64
}

// NewPayment validates a new payment. description, amount and recipient are required.
func NewPayment(description, amount string, recipient uint64, from *uint64, timeProvider coreport.TimeProvider) (*Payment, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errs.NewValidationError("description", "is required")
	}
	if strings.TrimSpace(amount) == "" {
		return nil, errs.NewValidationError("amount", "is required")
	}
	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, errs.NewValidationErrorWithCause("amount", err.Error(), err)
	}
	if recipient == 0 {
		return nil, errs.NewValidationError("recipient", "is required")
	}

	return &Payment{
		Description:  SanitizeText(description),
		amount:       cents,
		CreatedAt:    timeProvider.Now(),
		FromCustomer: from,
		ToCustomer:   recipient,
	}, nil
}

// RestorePayment rebuilds a payment from stored values without validation
func RestorePayment(id uint64, description string, amountInCents int64, createdAt time.Time, from *uint64, to uint64) *Payment {
	return &Payment{
		ID:           id,
		Description:  description,
		amount:       amountInCents,
		CreatedAt:    createdAt,
		FromCustomer: from,
		ToCustomer:   to,
	}
}

// Amount returns the amount in cents
func (p *Payment) Amount() int64 {
	return p.amount
}

// GetAmount returns the amount as a string with 2 decimal places
func (p *Payment) GetAmount() string {
	return AmountInCentsToString(p.amount)
}

// SetDescription replaces the description
func (p *Payment) SetDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValidationError("description", "cannot be empty")
	}
	p.Description = SanitizeText(description)
	return nil
}

// SetAmount replaces the amount with a decimal value
func (p *Payment) SetAmount(amount string) error {
	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return errs.NewValidationErrorWithCause("amount", err.Error(), err)
	}
	p.amount = cents
	return nil
}

// SetRecipient replaces the receiving customer
func (p *Payment) SetRecipient(recipient uint64) error {
	if recipient == 0 {
		return errs.NewValidationError("recipient", "must be a positive customer id")
	}
	p.ToCustomer = recipient
	return nil
}
