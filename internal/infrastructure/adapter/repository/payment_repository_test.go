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

var paymentColumns = []string{"id", "description", "amount", "created_at", "from_customer_id", "to_customer_id"}

func newPaymentRepo(t *testing.T) (*PaymentRepository, sqlmock.Sqlmock) {
	db, mock := dbtest.NewMockDB(t)
	return NewPaymentRepository(db, logger.NewNoopLogger()), mock
}

func TestPaymentRepository_Create(t *testing.T) {
	repo, mock := newPaymentRepo(t)
	payer := uint64(1)
	payment := entity.RestorePayment(0, "rent", 120000, fixedNow, &payer, 2)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "payments"`)).
		WithArgs("rent", int64(120000), fixedNow, int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(40))

	require.NoError(t, repo.Create(context.Background(), payment))
	assert.Equal(t, uint64(40), payment.ID)
}

func TestPaymentRepository_Create_UnknownRecipient(t *testing.T) {
	repo, mock := newPaymentRepo(t)
	payment := entity.RestorePayment(0, "rent", 100, fixedNow, nil, 404)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "payments"`)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), payment)

	assert.ErrorIs(t, err, errs.ErrDatabase)
	assert.Contains(t, err.Error(), "1452")
}

func TestPaymentRepository_GetByID(t *testing.T) {
	repo, mock := newPaymentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "payments" WHERE "payments"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows(paymentColumns).AddRow(8, "gift", 999, fixedNow, nil, 2))

	payment, err := repo.GetByID(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, "9.99", payment.GetAmount())
	assert.Nil(t, payment.FromCustomer)
	assert.Equal(t, uint64(2), payment.ToCustomer)
}

func TestPaymentRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newPaymentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "payments"`)).
		WillReturnRows(sqlmock.NewRows(paymentColumns))

	_, err := repo.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
}

func TestPaymentRepository_Update(t *testing.T) {
	repo, mock := newPaymentRepo(t)
	payment := entity.RestorePayment(8, "gift", 500, fixedNow, nil, 3)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "payments" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), payment)
	assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
}

func TestPaymentRepository_ListAndDelete(t *testing.T) {
	repo, mock := newPaymentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "payments" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow(1, "a", 100, fixedNow, 2, 3).
			AddRow(2, "b", 200, fixedNow, nil, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "payments" WHERE "payments"."id" = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	payments, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 2)
	require.NotNil(t, payments[0].FromCustomer)
	assert.Equal(t, uint64(2), *payments[0].FromCustomer)

	assert.NoError(t, repo.Delete(context.Background(), 1))
}
