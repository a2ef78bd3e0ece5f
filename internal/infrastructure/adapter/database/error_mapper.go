package database

import (
	"context"
	"errors"
	"fmt"

	domainErr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/database/pgerror"
	"gorm.io/gorm"
)

// ErrorMapper maps connection and transaction level failures to domain errors.
// Entity level failures are mapped by the repositories.
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error raised during operation to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainErr.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)
	case errors.Is(err, gorm.ErrInvalidTransaction):
		return domainErr.NewDatabaseError(domainErr.DBCodeUnknown, operation, err)
	}

	return pgerror.Wrap(err, operation)
}

// IsTransient reports whether operation may succeed when retried
func (m *ErrorMapper) IsTransient(err error) bool {
	return pgerror.IsTransient(err)
}
