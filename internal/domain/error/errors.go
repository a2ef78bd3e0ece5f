package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidInput       = 4001
	CodeInvalidJSON        = 4002
	CodeMalformedJSON      = 4003
	CodeInvalidEmail       = 4004
	CodeInvalidAmount      = 4005
	CodeInvalidIdentifier  = 4006
	CodeInvalidSortField   = 4007
	CodeInvalidFilterField = 4008
	CodeInvalidPageSize    = 4009
	CodeUnauthorized       = 4010
	CodeNotFound           = 4040
	CodeCustomerNotFound   = 4041
	CodePaymentNotFound    = 4042
	CodeMethodNotFound     = 4043
	CodeMovieNotFound      = 4044
	CodeUserNotFound       = 4045
	CodeDuplicateEmail     = 4090
	CodeDuplicateMovie     = 4091
	CodeRateLimited        = 4290

	// 5xxx - Server errors
	CodeInternalServer       = 5000
	CodeDatabase             = 5001
	CodeAllowListUnavailable = 5002
	CodeTokenIssue           = 5003
	CodeDatabaseConnection   = 5030
)

// Base error types
var (
	// ErrInvalidInput is returned when a payload field fails validation
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidJSON is returned when the request carries no usable JSON payload
	ErrInvalidJSON = errors.New("invalid JSON data")

	// ErrMalformedJSON is returned when the request body cannot be decoded
	ErrMalformedJSON = errors.New("invalid JSON format")

	// ErrInvalidEmail is returned when an email address is missing or malformed
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidAmount is returned when an amount is not a non-negative number with at most two decimals
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when the amount is too large to be stored in cents
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidIdentifier is returned when a path identifier is neither a positive id nor an email
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidSortField is returned when sorting by a field outside the movie field list
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidFilterField is returned when filtering by a field outside the movie field list
	ErrInvalidFilterField = errors.New("invalid filter field")

	// ErrInvalidPageSize is returned when a page size or page number is out of range
	ErrInvalidPageSize = errors.New("invalid page size")

	// ErrUnauthorized is returned when neither a valid token nor an allowed API key is presented
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrMethodNotFound   = errors.New("method not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrDuplicateEmail is returned when a customer or user email is already taken
	ErrDuplicateEmail = errors.New("email already taken")

	// ErrDuplicateMovie is returned when a movie uid already exists
	ErrDuplicateMovie = errors.New("movie already exists")

	// ErrRateLimited is returned when a client exceeds its request budget
	ErrRateLimited = errors.New("too many requests")

	// ErrAllowListUnavailable is returned when the API key allow-list cannot be read
	ErrAllowListUnavailable = errors.New("api key allow list unavailable")

	// ErrTokenIssue is returned when a JWT cannot be signed
	ErrTokenIssue = errors.New("failed to issue token")

	// ErrDatabase wraps every database failure that has no more specific domain meaning
	ErrDatabase = errors.New("database error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidJSON):
		return CodeInvalidJSON
	case errors.Is(err, ErrMalformedJSON):
		return CodeMalformedJSON
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidIdentifier):
		return CodeInvalidIdentifier
	case errors.Is(err, ErrInvalidSortField):
		return CodeInvalidSortField
	case errors.Is(err, ErrInvalidFilterField):
		return CodeInvalidFilterField
	case errors.Is(err, ErrInvalidPageSize):
		return CodeInvalidPageSize
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrCustomerNotFound):
		return CodeCustomerNotFound
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrMethodNotFound):
		return CodeMethodNotFound
	case errors.Is(err, ErrMovieNotFound):
		return CodeMovieNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrDuplicateMovie):
		return CodeDuplicateMovie
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrAllowListUnavailable):
		return CodeAllowListUnavailable
	case errors.Is(err, ErrTokenIssue):
		return CodeTokenIssue
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrDatabase):
		return CodeDatabase
	default:
		return CodeInternalServer
	}
}

// ValidationError describes a single rejected payload field
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error, defaulting to ErrInvalidInput
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidInput
	}
	return e.Err
}

// Is reports every validation error as invalid input
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
}

// NewValidationError creates a validation error for field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewValidationErrorWithCause creates a validation error that also matches cause
func NewValidationErrorWithCause(field, reason string, cause error) error {
	return &ValidationError{Field: field, Reason: reason, Err: cause}
}

// NotFoundError carries the entity and the identifier that could not be resolved
type NotFoundError struct {
	Entity     string
	Identifier string
	Err        error
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Identifier)
}

// Unwrap returns the entity specific sentinel
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Is matches the generic ErrNotFound as well as the wrapped sentinel
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LogFields returns a map of fields for structured logging
func (e *NotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "not_found",
		"entity":     e.Entity,
		"identifier": e.Identifier,
		"error_code": ErrorCode(e),
	}
}

// NewNotFoundError creates a detailed not found error
func NewNotFoundError(entity, identifier string, sentinel error) error {
	return &NotFoundError{Entity: entity, Identifier: identifier, Err: sentinel}
}

// DatabaseError carries the numbered database error code of a failed operation
type DatabaseError struct {
	Code      int
	Operation string
	Err       error
}

// Error implements the error interface
func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error %d during %s: %v", e.Code, e.Operation, e.Err)
}

// Unwrap returns the driver error
func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// Is matches ErrDatabase, and ErrDatabaseConnection for connection failures
func (e *DatabaseError) Is(target error) bool {
	if target == ErrDatabase {
		return true
	}
	return target == ErrDatabaseConnection && (e.Code == DBCodeCantConnect || e.Code == DBCodeTooManyConnections)
}

// Message returns the client facing message for the error code
func (e *DatabaseError) Message() string {
	return DatabaseErrorMessage(e.Code)
}

// LogFields returns a map of fields for structured logging
func (e *DatabaseError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "database_error",
		"db_code":    e.Code,
		"operation":  e.Operation,
		"error_code": CodeDatabase,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewDatabaseError creates a database error for operation
func NewDatabaseError(code int, operation string, err error) error {
	return &DatabaseError{Code: code, Operation: operation, Err: err}
}

// AuthError explains why a request was rejected by authentication
type AuthError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unauthorized: %s: %v", e.Reason, e.Err)
	}
	return "unauthorized: " + e.Reason
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is ErrUnauthorized
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// LogFields returns a map of fields for structured logging
func (e *AuthError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "auth_error",
		"reason":     e.Reason,
		"error_code": CodeUnauthorized,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewAuthError creates an authentication error
func NewAuthError(reason string, err error) error {
	return &AuthError{Reason: reason, Err: err}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrMethodNotFound) ||
		errors.Is(err, ErrMovieNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if the error was caused by client input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrAmountOverflow)
}

// IsDuplicateError checks if the error reports a unique constraint conflict
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicateMovie)
}
