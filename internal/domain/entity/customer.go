package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
)

// Customer is an account holder that can send and receive payments
type Customer struct {
	ID        uint64
	Name      string
	Email     string
	balance   int64 // cents
	Active    bool
	JWT       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer validates and sanitizes the input of a new, active customer.
// An empty balance means zero.
func NewCustomer(name, email, balance string, timeProvider coreport.TimeProvider) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError("name", "is required")
	}
	if !IsValidEmail(email) {
		return nil, errs.NewValidationError("email", "must be a valid email address")
	}

	var balanceInCents int64
	if strings.TrimSpace(balance) != "" {
		cents, err := ValidateAndConvertAmount(balance)
		if err != nil {
			return nil, errs.NewValidationErrorWithCause("balance", err.Error(), err)
		}
		balanceInCents = cents
	}

	now := timeProvider.Now()
	return &Customer{
		Name:      SanitizeText(name),
		Email:     SanitizeText(email),
		balance:   balanceInCents,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreCustomer rebuilds a customer from stored values without validation
func RestoreCustomer(id uint64, name, email string, balanceInCents int64, active bool, jwt string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		ID:        id,
		Name:      name,
		Email:     email,
		balance:   balanceInCents,
		Active:    active,
		JWT:       jwt,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Balance returns the current balance in cents
func (c *Customer) Balance() int64 {
	return c.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (c *Customer) GetBalance() string {
	return AmountInCentsToString(c.balance)
}

// Rename replaces the customer name
func (c *Customer) Rename(name string, timeProvider coreport.TimeProvider) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValidationError("name", "cannot be empty")
	}
	c.Name = SanitizeText(name)
	c.UpdatedAt = timeProvider.Now()
	return nil
}

// ChangeEmail replaces the customer email
func (c *Customer) ChangeEmail(email string, timeProvider coreport.TimeProvider) error {
	if !IsValidEmail(email) {
		return errs.NewValidationError("email", "must be a valid email address")
	}
	c.Email = SanitizeText(email)
	c.UpdatedAt = timeProvider.Now()
	return nil
}

// SetBalance replaces the balance with a decimal amount
func (c *Customer) SetBalance(balance string, timeProvider coreport.TimeProvider) error {
	cents, err := ValidateAndConvertAmount(balance)
	if err != nil {
		return errs.NewValidationErrorWithCause("balance", err.Error(), err)
	}
	c.balance = cents
	c.UpdatedAt = timeProvider.Now()
	return nil
}

// Deactivate marks the customer inactive
func (c *Customer) Deactivate(timeProvider coreport.TimeProvider) {
	c.Active = false
	c.UpdatedAt = timeProvider.Now()
}

// Reactivate marks the customer active again
func (c *Customer) Reactivate(timeProvider coreport.TimeProvider) {
	c.Active = true
	c.UpdatedAt = timeProvider.Now()
}

// TokenClaims returns the claims embedded in the customer's JWT
func (c *Customer) TokenClaims() coreport.TokenClaims {
	return coreport.TokenClaims{Email: c.Email, Name: c.Name}
}
