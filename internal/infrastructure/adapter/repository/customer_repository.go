package repository

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CustomerRepository implements persistence.CustomerRepository using GORM
type CustomerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	retry           RetryConfig
}

// NewCustomerRepository creates a new CustomerRepository instance
func NewCustomerRepository(db *gorm.DB, logger coreport.Logger) *CustomerRepository {
	return &CustomerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		retry:           DefaultRetryConfig(),
	}
}

func customerToEntity(m *model.Customer) *entity.Customer {
	return entity.RestoreCustomer(m.ID, m.Name, m.Email, m.Balance, m.Active, m.JWT, m.CreatedAt, m.UpdatedAt)
}

func (r *CustomerRepository) handleDatabaseError(operation string, identifier any, err error) error {
	return handleDatabaseError(r.logger, r.errorClassifier, customerErrors, operation, identifier, err)
}

// Create saves a new customer and assigns its ID
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.Customer{
		Name:      customer.Name,
		Email:     customer.Email,
		Balance:   customer.Balance(),
		Active:    customer.Active,
		JWT:       customer.JWT,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&customerModel).Error; err != nil {
		return r.handleDatabaseError("creating customer", customer.Email, err)
	}

	customer.ID = customerModel.ID
	r.logger.Info("Customer created successfully", map[string]any{
		"customer_id": customer.ID,
		"balance":     customer.GetBalance(),
	})
	return nil
}

// Update persists every field of an existing customer
func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result := r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":       customer.Name,
			"email":      customer.Email,
			"balance":    customer.Balance(),
			"active":     customer.Active,
			"jwt":        customer.JWT,
			"updated_at": customer.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating customer", customer.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(customerErrors, customer.ID)
	}

	r.logger.Debug("Customer updated", map[string]any{
		"customer_id": customer.ID,
		"active":      customer.Active,
	})
	return nil
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*entity.Customer, error) {
	var customerModel model.Customer
	err := RetryOnTransientError(ctx, r.retry, r.errorClassifier, r.logger, func() error {
		return r.db.WithContext(ctx).First(&customerModel, id).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("getting customer", id, err)
	}
	return customerToEntity(&customerModel), nil
}

// GetByEmail retrieves a customer by email
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerModel model.Customer
	err := RetryOnTransientError(ctx, r.retry, r.errorClassifier, r.logger, func() error {
		return r.db.WithContext(ctx).Where("email = ?", email).First(&customerModel).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("getting customer by email", email, err)
	}
	return customerToEntity(&customerModel), nil
}

// List returns every customer ordered by ID
func (r *CustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	var models []model.Customer
	err := RetryOnTransientError(ctx, r.retry, r.errorClassifier, r.logger, func() error {
		return r.db.WithContext(ctx).Order("id").Find(&models).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("listing customers", "all", err)
	}

	customers := make([]*entity.Customer, 0, len(models))
	for i := range models {
		customers = append(customers, customerToEntity(&models[i]))
	}
	return customers, nil
}

// Delete removes a customer by ID
func (r *CustomerRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Customer{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting customer", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(customerErrors, id)
	}

	r.logger.Info("Customer deleted", map[string]any{"customer_id": id})
	return nil
}
