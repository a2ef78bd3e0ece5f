package pgerror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	testCases := []struct {
		state    string
		expected int
	}{
		{UniqueViolation, 1062},
		{InvalidPassword, 1045},
		{InvalidAuthorization, 1045},
		{ProgramLimitExceeded, 1071},
		{UndefinedTable, 1146},
		{InvalidForeignKey, 1215},
		{StringDataTruncation, 1265},
		{NotNullViolation, 1364},
		{ConnectionUnavailable, 2002},
		{ConnectionFailure, 2002},
		{TooManyConnections, 1040},
		{SyntaxError, 1064},
		{ForeignKeyViolation, 1452},
		{"XX000", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.state, func(t *testing.T) {
			err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: tc.state})
			assert.Equal(t, tc.expected, Code(err))
		})
	}

	assert.Equal(t, domainErr.DBCodeUnknown, Code(nil))
	assert.Equal(t, domainErr.DBCodeUnknown, Code(errors.New("plain")))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&pgconn.PgError{Code: SerializationFailure}))
	assert.True(t, IsTransient(&pgconn.PgError{Code: DeadlockDetected}))
	assert.True(t, IsTransient(&pgconn.PgError{Code: TooManyConnections}))
	assert.False(t, IsTransient(&pgconn.PgError{Code: UniqueViolation}))
	assert.False(t, IsTransient(errors.New("boom")))
	assert.False(t, IsTransient(context.Canceled))
	assert.False(t, IsTransient(nil))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))

	cause := &pgconn.PgError{Code: UniqueViolation, ConstraintName: "idx_customers_email"}
	err := Wrap(cause, "create customer")

	var dbErr *domainErr.DatabaseError
	assert.True(t, errors.As(err, &dbErr))
	assert.Equal(t, 1062, dbErr.Code)
	assert.Equal(t, "Email already taken", dbErr.Message())
	assert.ErrorIs(t, err, domainErr.ErrDatabase)
	assert.True(t, IsUniqueViolation(err))
	assert.Equal(t, "idx_customers_email", ConstraintName(err))
}
