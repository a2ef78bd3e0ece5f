package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewUserRepository(db, logger.NewNoopLogger())
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WithArgs("dev@example.com", "key123", fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "api_key", "created_at"}).
			AddRow(3, "dev@example.com", "key123", fixedNow))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user := &entity.User{Email: "dev@example.com", APIKey: "key123", CreatedAt: fixedNow}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, uint64(3), user.ID)

	dup := &entity.User{Email: "dev@example.com", APIKey: "other", CreatedAt: fixedNow}
	assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrDuplicateEmail)

	found, err := repo.GetByEmail(ctx, "dev@example.com")
	require.NoError(t, err)
	assert.Equal(t, "key123", found.APIKey)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}
