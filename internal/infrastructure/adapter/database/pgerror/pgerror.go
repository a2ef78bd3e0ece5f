// Package pgerror translates postgres driver errors into the numbered
// database error codes reported by the API.
package pgerror

import (
	"context"
	"errors"

	domainErr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE values the service reacts to
const (
	UniqueViolation       = "23505"
	ForeignKeyViolation   = "23503"
	NotNullViolation      = "23502"
	StringDataTruncation  = "22001"
	InvalidPassword       = "28P01"
	InvalidAuthorization  = "28000"
	ProgramLimitExceeded  = "54000"
	UndefinedTable        = "42P01"
	InvalidForeignKey     = "42830"
	SyntaxError           = "42601"
	ConnectionFailure     = "08006"
	ConnectionUnavailable = "08001"
	TooManyConnections    = "53300"
	SerializationFailure  = "40001"
	DeadlockDetected      = "40P01"
)

var sqlStateCodes = map[string]int{
	UniqueViolation:       domainErr.DBCodeDuplicateEntry,
	InvalidPassword:       domainErr.DBCodeAccessDenied,
	InvalidAuthorization:  domainErr.DBCodeAccessDenied,
	ProgramLimitExceeded:  domainErr.DBCodeKeyTooLong,
	UndefinedTable:        domainErr.DBCodeNoSuchTable,
	InvalidForeignKey:     domainErr.DBCodeCannotAddForeignKey,
	StringDataTruncation:  domainErr.DBCodeDataTruncated,
	NotNullViolation:      domainErr.DBCodeNoDefaultValue,
	ConnectionUnavailable: domainErr.DBCodeCantConnect,
	ConnectionFailure:     domainErr.DBCodeCantConnect,
	TooManyConnections:    domainErr.DBCodeTooManyConnections,
	SyntaxError:           domainErr.DBCodeSyntaxError,
	ForeignKeyViolation:   domainErr.DBCodeNoReferencedRow2,
}

// SQLState returns the SQLSTATE carried by err, or an empty string
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// ConstraintName returns the violated constraint, if the server reported one
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// Code maps err to the numbered database error code, DBCodeUnknown when unmapped
func Code(err error) int {
	if err == nil {
		return domainErr.DBCodeUnknown
	}
	if code, ok := sqlStateCodes[SQLState(err)]; ok {
		return code
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return domainErr.DBCodeCantConnect
	}
	return domainErr.DBCodeUnknown
}

// IsUniqueViolation reports a duplicate key error
func IsUniqueViolation(err error) bool {
	return SQLState(err) == UniqueViolation
}

// IsTransient reports whether repeating the statement may succeed
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	switch SQLState(err) {
	case SerializationFailure, DeadlockDetected, TooManyConnections, ConnectionFailure, ConnectionUnavailable:
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return pgconn.SafeToRetry(err) || pgconn.Timeout(err)
}

// Wrap turns a driver error into a DatabaseError for operation
func Wrap(err error, operation string) error {
	if err == nil {
		return nil
	}
	return domainErr.NewDatabaseError(Code(err), operation, err)
}
