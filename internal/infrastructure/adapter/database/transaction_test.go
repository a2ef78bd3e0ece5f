package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnitOfWork(t *testing.T) (*UnitOfWork, sqlmock.Sqlmock) {
	db, mock := dbtest.NewMockDB(t)
	return NewUnitOfWork(db, logger.NewNoopLogger()), mock
}

func TestUnitOfWork_Commit(t *testing.T) {
	uow, mock := newUnitOfWork(t)
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "payments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)

	payment := entity.RestorePayment(0, "rent", 1000, createdAt, nil, 2)
	require.NoError(t, uow.GetPaymentRepository(txCtx).Create(txCtx, payment))
	require.NoError(t, uow.Commit(txCtx))
	assert.Equal(t, uint64(11), payment.ID)

	assert.NoError(t, uow.Rollback(txCtx), "rollback after commit is tolerated")
}

func TestUnitOfWork_Rollback(t *testing.T) {
	uow, mock := newUnitOfWork(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	assert.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWork_NoTransaction(t *testing.T) {
	uow, _ := newUnitOfWork(t)

	assert.ErrorIs(t, uow.Commit(context.Background()), ErrNoTransaction)
	assert.ErrorIs(t, uow.Rollback(context.Background()), ErrNoTransaction)
	assert.NotNil(t, uow.GetCustomerRepository(context.Background()))
	assert.NotNil(t, uow.GetUserRepository(context.Background()))
}

func TestUnitOfWork_BeginFailure(t *testing.T) {
	uow, mock := newUnitOfWork(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := uow.Begin(context.Background())
	assert.ErrorIs(t, err, errs.ErrDatabase)
}

func TestUnitOfWork_CommitFailure(t *testing.T) {
	uow, mock := newUnitOfWork(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, uow.Commit(txCtx), errs.ErrDatabase)
}
