package repository

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PaymentRepository implements persistence.PaymentRepository using GORM
type PaymentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	retry           RetryConfig
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		retry:           DefaultRetryConfig(),
	}
}

func paymentToEntity(m *model.Payment) *entity.Payment {
	return entity.RestorePayment(m.ID, m.Description, m.Amount, m.CreatedAt, m.FromCustomerID, m.ToCustomerID)
}

func (r *PaymentRepository) handleDatabaseError(operation string, identifier any, err error) error {
	return handleDatabaseError(r.logger, r.errorClassifier, paymentErrors, operation, identifier, err)
}

// Create saves a new payment and assigns its ID
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.Payment{
		Description:    payment.Description,
		Amount:         payment.Amount(),
		CreatedAt:      payment.CreatedAt,
		FromCustomerID: payment.FromCustomer,
		ToCustomerID:   payment.ToCustomer,
	}

	if err := r.db.WithContext(ctx).Create(&paymentModel).Error; err != nil {
		return r.handleDatabaseError("creating payment", payment.ToCustomer, err)
	}

	payment.ID = paymentModel.ID
	r.logger.Info("Payment created successfully", map[string]any{
		"payment_id":   payment.ID,
		"amount":       payment.GetAmount(),
		"recipient_id": payment.ToCustomer,
	})
	return nil
}

// Update persists description, amount and recipient of an existing payment
func (r *PaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]any{
			"description":    payment.Description,
			"amount":         payment.Amount(),
			"to_customer_id": payment.ToCustomer,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating payment", payment.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(paymentErrors, payment.ID)
	}
	return nil
}

// GetByID retrieves a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uint64) (*entity.Payment, error) {
	var paymentModel model.Payment
	err := RetryOnTransientError(ctx, r.retry, r.errorClassifier, r.logger, func() error {
		return r.db.WithContext(ctx).First(&paymentModel, id).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("getting payment", id, err)
	}
	return paymentToEntity(&paymentModel), nil
}

// List returns every payment ordered by ID
func (r *PaymentRepository) List(ctx context.Context) ([]*entity.Payment, error) {
	var models []model.Payment
	err := RetryOnTransientError(ctx, r.retry, r.errorClassifier, r.logger, func() error {
		return r.db.WithContext(ctx).Order("id").Find(&models).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("listing payments", "all", err)
	}

	payments := make([]*entity.Payment, 0, len(models))
	for i := range models {
		payments = append(payments, paymentToEntity(&models[i]))
	}
	return payments, nil
}

// Delete removes a payment by ID
func (r *PaymentRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Payment{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting payment", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(paymentErrors, id)
	}

	r.logger.Info("Payment deleted", map[string]any{"payment_id": id})
	return nil
}
