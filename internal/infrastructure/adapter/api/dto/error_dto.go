package dto

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
)

// UnauthorizedMessage is returned to callers without a valid token or API key
const UnauthorizedMessage = "Unauthorized! Register at /register"

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// MessageResponse carries the outcome of a write
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse maps a domain error to its HTTP status and response body
func NewErrorResponse(err error) (int, ErrorResponse) {
	status, message := statusAndMessage(err)
	return status, ErrorResponse{
		Code:  domainerr.ErrorCode(err),
		Error: message,
	}
}

func statusAndMessage(err error) (int, string) {
	var dbErr *domainerr.DatabaseError

	switch {
	case errors.Is(err, domainerr.ErrInvalidJSON):
		return http.StatusBadRequest, "Invalid JSON data"
	case errors.Is(err, domainerr.ErrMalformedJSON):
		return http.StatusBadRequest, "Invalid JSON format"
	case errors.Is(err, domainerr.ErrInvalidEmail):
		return http.StatusBadRequest, "Invalid email"
	case errors.Is(err, domainerr.ErrInvalidSortField),
		errors.Is(err, domainerr.ErrInvalidFilterField),
		errors.Is(err, domainerr.ErrInvalidPageSize):
		return http.StatusBadRequest, err.Error()
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest, "Invalid input data"
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized, UnauthorizedMessage
	case errors.Is(err, domainerr.ErrCustomerNotFound):
		return http.StatusNotFound, "Customer not found"
	case errors.Is(err, domainerr.ErrPaymentNotFound):
		return http.StatusNotFound, "Payment not found"
	case errors.Is(err, domainerr.ErrMethodNotFound):
		return http.StatusNotFound, "Method not found"
	case errors.Is(err, domainerr.ErrMovieNotFound):
		return http.StatusNotFound, "Movie not found"
	case errors.Is(err, domainerr.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domainerr.ErrNotFound), errors.Is(err, domainerr.ErrInvalidIdentifier):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, domainerr.ErrDuplicateEmail):
		return http.StatusConflict, "Email already taken"
	case errors.Is(err, domainerr.ErrDuplicateMovie):
		return http.StatusConflict, "Movie already exists"
	case errors.Is(err, domainerr.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many requests"
	case errors.As(err, &dbErr):
		return http.StatusInternalServerError, dbErr.Message()
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable, domainerr.DatabaseErrorMessage(domainerr.DBCodeCantConnect)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
