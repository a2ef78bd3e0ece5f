package database

import (
	"context"
	"errors"
	"testing"

	domainErr "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"NotFound", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"Timeout", context.DeadlineExceeded, domainErr.ErrDatabaseConnection},
		{"Duplicate", &pgconn.PgError{Code: "23505"}, domainErr.ErrDatabase},
		{"TooManyConnections", &pgconn.PgError{Code: "53300"}, domainErr.ErrDatabaseConnection},
		{"Other", errors.New("boom"), domainErr.ErrDatabase},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tc.err, "test"), tc.expected)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "test"))
}

func TestErrorMapper_IsTransient(t *testing.T) {
	mapper := NewErrorMapper()

	assert.True(t, mapper.IsTransient(&pgconn.PgError{Code: "40001"}))
	assert.False(t, mapper.IsTransient(&pgconn.PgError{Code: "23505"}))
	assert.False(t, mapper.IsTransient(context.Canceled))
}
