package payment

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
)

// UseCase handles payment-related business logic
type UseCase struct {
	paymentRepo  persistence.PaymentRepository
	customerRepo persistence.CustomerRepository
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPaymentUseCase creates a new payment UseCase
func NewPaymentUseCase(
	paymentRepo persistence.PaymentRepository,
	customerRepo persistence.CustomerRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreatePayment stores a payment to an existing recipient. The payer is the
// customer behind PayerEmail when it resolves, otherwise the payment has no payer.
func (u *UseCase) CreatePayment(ctx context.Context, input usecase.CreatePaymentInput) (*entity.Payment, error) {
	payment, err := entity.NewPayment(input.Description, input.Amount, input.Recipient, nil, u.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.storePayment(txCtx, payment, input.PayerEmail); err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Failed to rollback payment creation", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("Payment created", map[string]any{
		"payment_id":  payment.ID,
		"to_customer": payment.ToCustomer,
		"amount":      payment.GetAmount(),
	})
	return payment, nil
}

func (u *UseCase) storePayment(txCtx context.Context, payment *entity.Payment, payerEmail string) error {
	customers := u.uow.GetCustomerRepository(txCtx)

	if payerEmail != "" {
		payer, err := customers.GetByEmail(txCtx, payerEmail)
		switch {
		case err == nil:
			payment.FromCustomer = &payer.ID
		case errs.IsNotFoundError(err):
			u.logger.Warn("Token holder is not a stored customer", map[string]any{
				"email": payerEmail,
			})
		default:
			return err
		}
	}

	if _, err := customers.GetByID(txCtx, payment.ToCustomer); err != nil {
		return err
	}

	return u.uow.GetPaymentRepository(txCtx).Create(txCtx, payment)
}

// ListPayments returns every payment
func (u *UseCase) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	return u.paymentRepo.List(ctx)
}

// GetPayment returns a payment by ID
func (u *UseCase) GetPayment(ctx context.Context, id uint64) (*entity.Payment, error) {
	return u.paymentRepo.GetByID(ctx, id)
}

// UpdatePayment applies a partial update
func (u *UseCase) UpdatePayment(ctx context.Context, id uint64, input usecase.UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := u.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.IsEmpty() {
		return nil, errs.ErrInvalidJSON
	}

	if input.Description != nil {
		if err := payment.SetDescription(*input.Description); err != nil {
			return nil, err
		}
	}
	if input.Amount != nil {
		if err := payment.SetAmount(*input.Amount); err != nil {
			return nil, err
		}
	}
	if input.Recipient != nil {
		if err := payment.SetRecipient(*input.Recipient); err != nil {
			return nil, err
		}
		if _, err := u.customerRepo.GetByID(ctx, payment.ToCustomer); err != nil {
			return nil, err
		}
	}

	if err := u.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	u.logger.Info("Payment updated", map[string]any{
		"payment_id": id,
	})
	return payment, nil
}

// DeletePayment removes a payment
func (u *UseCase) DeletePayment(ctx context.Context, id uint64) error {
	if err := u.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Payment deleted", map[string]any{
		"payment_id": id,
	})
	return nil
}
