package repository

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/database/pgerror"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	NotFoundError     ErrorType = "not_found"
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	TimeoutError      ErrorType = "timeout"
	StorageError      ErrorType = "storage"
)

// ErrorClassifier sorts driver errors by how the service reacts to them
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case pgerror.IsUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey):
		return DuplicateKeyError
	case errors.Is(err, context.DeadlineExceeded):
		return TimeoutError
	case pgerror.IsTransient(err):
		return TransientError
	default:
		return StorageError
	}
}

// entityErrors names the domain errors an entity's repository reports
type entityErrors struct {
	entity    string
	notFound  error
	duplicate error
}

var (
	customerErrors = entityErrors{entity: "customer", notFound: errs.ErrCustomerNotFound, duplicate: errs.ErrDuplicateEmail}
	paymentErrors  = entityErrors{entity: "payment", notFound: errs.ErrPaymentNotFound}
	methodErrors   = entityErrors{entity: "method", notFound: errs.ErrMethodNotFound}
	movieErrors    = entityErrors{entity: "movie", notFound: errs.ErrMovieNotFound, duplicate: errs.ErrDuplicateMovie}
	userErrors     = entityErrors{entity: "user", notFound: errs.ErrUserNotFound, duplicate: errs.ErrDuplicateEmail}
)

func notFound(ee entityErrors, identifier any) error {
	return errs.NewNotFoundError(ee.entity, fmt.Sprint(identifier), ee.notFound)
}

// handleDatabaseError standardizes database error handling for every repository
func handleDatabaseError(
	logger coreport.Logger,
	classifier *ErrorClassifier,
	ee entityErrors,
	operation string,
	identifier any,
	err error,
) error {
	switch classifier.Classify(err) {
	case NotFoundError:
		logger.Debug(fmt.Sprintf("%s not found", ee.entity), map[string]any{
			"operation":  operation,
			"identifier": identifier,
		})
		return notFound(ee, identifier)

	case DuplicateKeyError:
		logger.Warn(fmt.Sprintf("Duplicate %s", ee.entity), map[string]any{
			"operation":  operation,
			"identifier": identifier,
			"constraint": pgerror.ConstraintName(err),
		})
		if ee.duplicate != nil {
			return fmt.Errorf("%s: %w", operation, ee.duplicate)
		}

	case TimeoutError:
		logger.Error(fmt.Sprintf("Database timeout when %s", operation), map[string]any{
			"identifier": identifier,
			"error":      err.Error(),
		})
		return fmt.Errorf("%w: %s operation timed out", errs.ErrDatabaseConnection, operation)
	}

	dbErr := pgerror.Wrap(err, operation)
	var typed *errs.DatabaseError
	fields := map[string]any{"identifier": identifier}
	if errors.As(dbErr, &typed) {
		for k, v := range typed.LogFields() {
			fields[k] = v
		}
	}
	logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return dbErr
}
