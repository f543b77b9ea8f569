package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/credit-wallet/mocks/port/core"
	"github.com/amirhossein-jamali/credit-wallet/mocks/port/persistence"
)

func TestService_GetStatus(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	startOfDay := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	ctx := context.Background()
	userID := uint64(123)

	t.Run("should return credits and welcome flag after the allowance check", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		user := &entity.User{ID: userID, WelcomeClaimed: true}
		user.SetCredits(7, mockTimeProvider)

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetUserRepository", ctx).Return(mockUserRepo)
		mockUow.On("GetTransactionRepository", ctx).Return(mockTxnRepo)
		mockUow.On("Commit", ctx).Return(nil)

		mockUserRepo.On("GetByIDForUpdate", ctx, userID).Return(user, nil)
		mockTxnRepo.On("HasEntrySince", ctx, userID, entity.EntryDailyGrant, startOfDay).Return(true, nil)
		mockUserRepo.On("GetByID", ctx, userID).Return(user, nil)

		service := newTestService(t, mockUow, mockTimeProvider, mockLogger)

		// Act
		status, err := service.GetStatus(ctx, userID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(7), status.Credits)
		assert.True(t, status.WelcomeClaimed)
		mockUow.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should propagate allowance failures", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetUserRepository", ctx).Return(mockUserRepo)
		mockUow.On("Rollback", ctx).Return(nil)

		mockUserRepo.On("GetByIDForUpdate", ctx, userID).Return(nil, errs.ErrUserNotFound)

		mockLogger.On("Error", "Failed to ensure daily allowance", mock.AnythingOfType("map[string]interface {}")).Return()

		service := newTestService(t, mockUow, mockTimeProvider, mockLogger)

		// Act
		status, err := service.GetStatus(ctx, userID)

		// Assert
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, status)
	})
}
