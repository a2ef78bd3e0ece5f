package repository

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MethodRepository implements persistence.MethodRepository using GORM
type MethodRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMethodRepository creates a new MethodRepository instance
func NewMethodRepository(db *gorm.DB, logger coreport.Logger) *MethodRepository {
	return &MethodRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func methodToEntity(m *model.Method) *entity.Method {
	return &entity.Method{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *MethodRepository) handleDatabaseError(operation string, identifier any, err error) error {
	return handleDatabaseError(r.logger, r.errorClassifier, methodErrors, operation, identifier, err)
}

func (r *MethodRepository) Create(ctx context.Context, method *entity.Method) error {
	methodModel := model.Method{
		Name:        method.Name,
		Description: method.Description,
		Active:      method.Active,
		CreatedAt:   method.CreatedAt,
		UpdatedAt:   method.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&methodModel).Error; err != nil {
		return r.handleDatabaseError("creating method", method.Name, err)
	}
	method.ID = methodModel.ID
	return nil
}

func (r *MethodRepository) Update(ctx context.Context, method *entity.Method) error {
	result := r.db.WithContext(ctx).Model(&model.Method{}).
		Where("id = ?", method.ID).
		Updates(map[string]any{
			"name":        method.Name,
			"description": method.Description,
			"active":      method.Active,
			"updated_at":  method.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating method", method.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(methodErrors, method.ID)
	}
	return nil
}

func (r *MethodRepository) GetByID(ctx context.Context, id uint64) (*entity.Method, error) {
	var methodModel model.Method
	if err := r.db.WithContext(ctx).First(&methodModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting method", id, err)
	}
	return methodToEntity(&methodModel), nil
}

func (r *MethodRepository) GetByName(ctx context.Context, name string) (*entity.Method, error) {
	var methodModel model.Method
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&methodModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting method by name", name, err)
	}
	return methodToEntity(&methodModel), nil
}

func (r *MethodRepository) List(ctx context.Context) ([]*entity.Method, error) {
	var models []model.Method
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing methods", "all", err)
	}

	methods := make([]*entity.Method, 0, len(models))
	for i := range models {
		methods = append(methods, methodToEntity(&models[i]))
	}
	return methods, nil
}

func (r *MethodRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Method{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting method", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(methodErrors, id)
	}
	return nil
}
