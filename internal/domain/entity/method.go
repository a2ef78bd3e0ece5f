package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
)

// Method is a payment method such as a card or a bank transfer
type Method struct {
	ID          uint64
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewMethod creates an active method. name is required.
func NewMethod(name, description string, timeProvider coreport.TimeProvider) (*Method, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError("name", "is required")
	}

	now := timeProvider.Now()
	return &Method{
		Name:        SanitizeText(name),
		Description: SanitizeText(description),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Rename replaces the method name
func (m *Method) Rename(name string, timeProvider coreport.TimeProvider) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValidationError("name", "cannot be empty")
	}
	m.Name = SanitizeText(name)
	m.UpdatedAt = timeProvider.Now()
	return nil
}

// Describe replaces the method description
func (m *Method) Describe(description string, timeProvider coreport.TimeProvider) {
	m.Description = SanitizeText(description)
	m.UpdatedAt = timeProvider.Now()
}

// SetActive switches the method on or off
func (m *Method) SetActive(active bool, timeProvider coreport.TimeProvider) {
	m.Active = active
	m.UpdatedAt = timeProvider.Now()
}
