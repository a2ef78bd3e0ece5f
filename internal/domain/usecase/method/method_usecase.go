package method

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/usecase"
)

// defaultMethods are seeded after migrations
var defaultMethods = []usecase.CreateMethodInput{
	{Name: "card", Description: "Debit or credit card"},
	{Name: "bank_transfer", Description: "Direct bank transfer"},
	{Name: "cash", Description: "Cash payment"},
}

// UseCase handles payment method business logic
type UseCase struct {
	methodRepo   persistence.MethodRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewMethodUseCase creates a new method UseCase
func NewMethodUseCase(methodRepo persistence.MethodRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *UseCase {
	return &UseCase{
		methodRepo:   methodRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateMethod stores a new active method
func (u *UseCase) CreateMethod(ctx context.Context, input usecase.CreateMethodInput) (*entity.Method, error) {
	method, err := entity.NewMethod(input.Name, input.Description, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.methodRepo.Create(ctx, method); err != nil {
		u.logger.Error("Failed to create method", map[string]any{
			"name":  method.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Method created", map[string]any{
		"method_id": method.ID,
		"name":      method.Name,
	})
	return method, nil
}

// ListMethods returns every method
func (u *UseCase) ListMethods(ctx context.Context) ([]*entity.Method, error) {
	return u.methodRepo.List(ctx)
}

// GetMethod returns a method by ID
func (u *UseCase) GetMethod(ctx context.Context, id uint64) (*entity.Method, error) {
	return u.methodRepo.GetByID(ctx, id)
}

// UpdateMethod applies a partial update
func (u *UseCase) UpdateMethod(ctx context.Context, id uint64, input usecase.UpdateMethodInput) (*entity.Method, error) {
	method, err := u.methodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.IsEmpty() {
		return nil, errs.ErrInvalidJSON
	}

	if input.Name != nil {
		if err := method.Rename(*input.Name, u.timeProvider); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		method.Describe(*input.Description, u.timeProvider)
	}
	if input.Active != nil {
		method.SetActive(*input.Active, u.timeProvider)
	}

	if err := u.methodRepo.Update(ctx, method); err != nil {
		return nil, err
	}

	u.logger.Info("Method updated", map[string]any{
		"method_id": id,
	})
	return method, nil
}

// DeleteMethod removes a method
func (u *UseCase) DeleteMethod(ctx context.Context, id uint64) error {
	if err := u.methodRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Method deleted", map[string]any{
		"method_id": id,
	})
	return nil
}

// SetMethodActive activates or deactivates a method
func (u *UseCase) SetMethodActive(ctx context.Context, id uint64, active bool) error {
	method, err := u.methodRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	method.SetActive(active, u.timeProvider)
	return u.methodRepo.Update(ctx, method)
}

// CreateDefaultMethods seeds the built-in methods that are missing
func (u *UseCase) CreateDefaultMethods(ctx context.Context) error {
	for _, def := range defaultMethods {
		_, err := u.methodRepo.GetByName(ctx, def.Name)
		if err == nil {
			u.logger.Debug("Default method already exists", map[string]any{
				"name": def.Name,
			})
			continue
		}
		if !errs.IsNotFoundError(err) {
			return err
		}

		if _, err := u.CreateMethod(ctx, def); err != nil {
			return err
		}
	}

	u.logger.Info("Default methods created or verified", nil)
	return nil
}
