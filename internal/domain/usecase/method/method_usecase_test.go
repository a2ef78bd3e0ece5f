package method

import (
	"context"
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

func newUseCase(t *testing.T) (*UseCase, *persistencemocks.MockMethodRepository) {
	repo := persistencemocks.NewMockMethodRepository(t)
	clock := coremocks.NewMockTimeProvider(t)
	logger := coremocks.NewMockLogger(t)
	clock.EXPECT().Now().Return(time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)).Maybe()
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return NewMethodUseCase(repo, clock, logger), repo
}

func TestCreateMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(m *entity.Method) bool {
			return m.Name == "card" && m.Active
		})).Return(nil).Once()

		method, err := uc.CreateMethod(ctx, usecase.CreateMethodInput{Name: "card"})

		require.NoError(t, err)
		assert.Equal(t, "card", method.Name)
	})

	t.Run("Name required", func(t *testing.T) {
		uc, _ := newUseCase(t)

		_, err := uc.CreateMethod(ctx, usecase.CreateMethodInput{Description: "no name"})

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestUpdateMethod(t *testing.T) {
	ctx := context.Background()
	uc, repo := newUseCase(t)
	stored := &entity.Method{ID: 2, Name: "card", Description: "old", Active: true}
	desc := "new"
	active := false
	repo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(stored, nil).Once()
	repo.EXPECT().Update(mock.Anything, stored).Return(nil).Once()

	method, err := uc.UpdateMethod(ctx, 2, usecase.UpdateMethodInput{Description: &desc, Active: &active})

	require.NoError(t, err)
	assert.Equal(t, "card", method.Name)
	assert.Equal(t, "new", method.Description)
	assert.False(t, method.Active)
}

func TestSetMethodActive(t *testing.T) {
	ctx := context.Background()

	t.Run("Deactivate", func(t *testing.T) {
		uc, repo := newUseCase(t)
		stored := &entity.Method{ID: 2, Name: "card", Active: true}
		repo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(stored, nil).Once()
		repo.EXPECT().Update(mock.Anything, stored).Return(nil).Once()

		require.NoError(t, uc.SetMethodActive(ctx, 2, false))
		assert.False(t, stored.Active)
	})

	t.Run("Unknown method", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(nil, errs.ErrMethodNotFound).Once()

		assert.ErrorIs(t, uc.SetMethodActive(ctx, 3, true), errs.ErrMethodNotFound)
	})
}

func TestCreateDefaultMethods(t *testing.T) {
	ctx := context.Background()
	uc, repo := newUseCase(t)

	repo.EXPECT().GetByName(mock.Anything, "card").Return(&entity.Method{ID: 1, Name: "card"}, nil).Once()
	repo.EXPECT().GetByName(mock.Anything, "bank_transfer").Return(nil, errs.ErrMethodNotFound).Once()
	repo.EXPECT().GetByName(mock.Anything, "cash").Return(nil, errs.ErrMethodNotFound).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)

	require.NoError(t, uc.CreateDefaultMethods(ctx))
}
