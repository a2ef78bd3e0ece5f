package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/payment-api/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/payment-api/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

type fixture struct {
	payments  *persistencemocks.MockPaymentRepository
	customers *persistencemocks.MockCustomerRepository
	uow       *persistencemocks.MockUnitOfWork
	clock     *coremocks.MockTimeProvider
	logger    *coremocks.MockLogger
	uc        *UseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		payments:  persistencemocks.NewMockPaymentRepository(t),
		customers: persistencemocks.NewMockCustomerRepository(t),
		uow:       persistencemocks.NewMockUnitOfWork(t),
		clock:     coremocks.NewMockTimeProvider(t),
		logger:    coremocks.NewMockLogger(t),
	}
	f.clock.EXPECT().Now().Return(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	f.uc = NewPaymentUseCase(f.payments, f.customers, f.uow, f.clock, f.logger)
	return f
}

func customer(id uint64, email string) *entity.Customer {
	return entity.RestoreCustomer(id, "name", email, 0, true, "", time.Time{}, time.Time{})
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey{}, "tx")

	t.Run("Payer resolved from token email", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetCustomerRepository(txCtx).Return(f.customers).Once()
		f.uow.EXPECT().GetPaymentRepository(txCtx).Return(f.payments).Once()
		f.customers.EXPECT().GetByEmail(txCtx, "payer@example.com").Return(customer(1, "payer@example.com"), nil).Once()
		f.customers.EXPECT().GetByID(txCtx, uint64(2)).Return(customer(2, "payee@example.com"), nil).Once()
		f.payments.EXPECT().Create(txCtx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.FromCustomer != nil && *p.FromCustomer == 1 && p.ToCustomer == 2 && p.Amount() == 2500
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		// Execute
		payment, err := f.uc.CreatePayment(ctx, usecase.CreatePaymentInput{
			Description: "dinner", Amount: "25", Recipient: 2, PayerEmail: "payer@example.com",
		})

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, "25.00", payment.GetAmount())
	})

	t.Run("Unknown payer is stored without payer", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetCustomerRepository(txCtx).Return(f.customers).Once()
		f.uow.EXPECT().GetPaymentRepository(txCtx).Return(f.payments).Once()
		f.customers.EXPECT().GetByEmail(txCtx, "ghost@example.com").Return(nil, errs.ErrCustomerNotFound).Once()
		f.customers.EXPECT().GetByID(txCtx, uint64(2)).Return(customer(2, "payee@example.com"), nil).Once()
		f.payments.EXPECT().Create(txCtx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.FromCustomer == nil
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		_, err := f.uc.CreatePayment(ctx, usecase.CreatePaymentInput{
			Description: "gift", Amount: "1", Recipient: 2, PayerEmail: "ghost@example.com",
		})

		require.NoError(t, err)
	})

	t.Run("Missing recipient rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetCustomerRepository(txCtx).Return(f.customers).Once()
		f.customers.EXPECT().GetByID(txCtx, uint64(42)).Return(nil, errs.ErrCustomerNotFound).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.uc.CreatePayment(ctx, usecase.CreatePaymentInput{Description: "x", Amount: "1", Recipient: 42})

		assert.ErrorIs(t, err, errs.ErrCustomerNotFound)
	})

	t.Run("Invalid input does not open a transaction", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.CreatePayment(ctx, usecase.CreatePaymentInput{Amount: "1", Recipient: 2})

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Begin failure", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().Begin(ctx).Return(nil, errors.New("pool exhausted")).Once()

		_, err := f.uc.CreatePayment(ctx, usecase.CreatePaymentInput{Description: "x", Amount: "1", Recipient: 2})

		assert.EqualError(t, err, "pool exhausted")
	})
}

func TestUpdatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Changes only provided fields", func(t *testing.T) {
		f := newFixture(t)
		stored := entity.RestorePayment(4, "rent", 1000, time.Time{}, nil, 2)
		amount := "12.50"
		f.payments.EXPECT().GetByID(mock.Anything, uint64(4)).Return(stored, nil).Once()
		f.payments.EXPECT().Update(mock.Anything, stored).Return(nil).Once()

		payment, err := f.uc.UpdatePayment(ctx, 4, usecase.UpdatePaymentInput{Amount: &amount})

		require.NoError(t, err)
		assert.Equal(t, "rent", payment.Description)
		assert.Equal(t, int64(1250), payment.Amount())
	})

	t.Run("New recipient must exist", func(t *testing.T) {
		f := newFixture(t)
		stored := entity.RestorePayment(4, "rent", 1000, time.Time{}, nil, 2)
		recipient := uint64(77)
		f.payments.EXPECT().GetByID(mock.Anything, uint64(4)).Return(stored, nil).Once()
		f.customers.EXPECT().GetByID(mock.Anything, uint64(77)).Return(nil, errs.ErrCustomerNotFound).Once()

		_, err := f.uc.UpdatePayment(ctx, 4, usecase.UpdatePaymentInput{Recipient: &recipient})

		assert.ErrorIs(t, err, errs.ErrCustomerNotFound)
	})

	t.Run("Unknown payment", func(t *testing.T) {
		f := newFixture(t)
		f.payments.EXPECT().GetByID(mock.Anything, uint64(5)).Return(nil, errs.ErrPaymentNotFound).Once()

		_, err := f.uc.UpdatePayment(ctx, 5, usecase.UpdatePaymentInput{})

		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
	})

	t.Run("Empty update", func(t *testing.T) {
		f := newFixture(t)
		f.payments.EXPECT().GetByID(mock.Anything, uint64(4)).Return(entity.RestorePayment(4, "rent", 1, time.Time{}, nil, 2), nil).Once()

		_, err := f.uc.UpdatePayment(ctx, 4, usecase.UpdatePaymentInput{})

		assert.ErrorIs(t, err, errs.ErrInvalidJSON)
	})
}

func TestDeletePayment(t *testing.T) {
	f := newFixture(t)
	f.payments.EXPECT().Delete(mock.Anything, uint64(3)).Return(nil).Once()
	f.payments.EXPECT().Delete(mock.Anything, uint64(4)).Return(errs.ErrPaymentNotFound).Once()

	assert.NoError(t, f.uc.DeletePayment(context.Background(), 3))
	assert.ErrorIs(t, f.uc.DeletePayment(context.Background(), 4), errs.ErrPaymentNotFound)
}
