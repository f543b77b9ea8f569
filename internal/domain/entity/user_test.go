package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/credit-wallet/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("should create a user with zero credits", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		// Act
		user, err := NewUser(123, mockTimeProvider)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(123), user.ID)
		assert.Equal(t, int64(0), user.Credits())
		assert.False(t, user.WelcomeClaimed)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("should reject a zero ID", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		user, err := NewUser(0, mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, user)
	})
}

func TestUser_CanConsume(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime)

	user := &User{ID: 1}
	user.SetCredits(3, mockTimeProvider)

	assert.True(t, user.CanConsume(1))
	assert.True(t, user.CanConsume(3))
	assert.False(t, user.CanConsume(4))
	assert.False(t, user.CanConsume(0))
	assert.False(t, user.CanConsume(-1))
}

func TestUser_ApplyEntry(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("should apply credits and debits", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		user := &User{ID: 1}

		assert.NoError(t, user.ApplyEntry(10, mockTimeProvider))
		assert.Equal(t, int64(10), user.Credits())

		assert.NoError(t, user.ApplyEntry(-4, mockTimeProvider))
		assert.Equal(t, int64(6), user.Credits())
	})

	t.Run("should refuse a debit below zero", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		user := &User{ID: 1}
		user.SetCredits(2, mockTimeProvider)

		err := user.ApplyEntry(-3, mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Equal(t, int64(2), user.Credits())
	})
}

func TestUser_ClaimWelcome(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime)

	user := &User{ID: 1}

	assert.True(t, user.ClaimWelcome(mockTimeProvider))
	assert.True(t, user.WelcomeClaimed)

	// The flag never reverts
	assert.False(t, user.ClaimWelcome(mockTimeProvider))
	assert.True(t, user.WelcomeClaimed)
}
