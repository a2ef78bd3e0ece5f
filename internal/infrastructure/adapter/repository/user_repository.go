package repository

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository stores registered API consumers using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create saves a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Email:     user.Email,
		APIKey:    user.APIKey,
		CreatedAt: user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, userErrors, "creating user", user.Email, err)
	}

	user.ID = userModel.ID
	r.logger.Info("User registered", map[string]any{"user_id": user.ID})
	return nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, userErrors, "getting user by email", email, err)
	}

	return &entity.User{
		ID:        userModel.ID,
		Email:     userModel.Email,
		APIKey:    userModel.APIKey,
		CreatedAt: userModel.CreatedAt,
	}, nil
}
