package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
)

// User is an API consumer identified by email and holding an API key
type User struct {
	ID        uint64
	Email     string
	APIKey    string
	CreatedAt time.Time
}

// NewUser validates the email of a registering API consumer
func NewUser(email, apiKey string, timeProvider coreport.TimeProvider) (*User, error) {
	if !IsValidEmail(email) {
		return nil, errs.ErrInvalidEmail
	}
	if apiKey == "" {
		return nil, errs.NewValidationError("api_key", "is required")
	}

	return &User{
		Email:     strings.TrimSpace(email),
		APIKey:    apiKey,
		CreatedAt: timeProvider.Now(),
	}, nil
}
