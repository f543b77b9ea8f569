package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-wallet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to a domain entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	user, err := entity.NewUser(userModel.ID, r.timeProvider)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build user entity: %s", errs.ErrInternalServer, err.Error())
	}

	user.SetCredits(userModel.Credits, r.timeProvider)
	user.WelcomeClaimed = userModel.WelcomeClaimed
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return user, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn(fmt.Sprintf("Lock conflict when %s", operation), map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel)
}

// GetByIDForUpdate retrieves a user while holding an exclusive row lock.
// The lock lives until the surrounding transaction commits or rolls back and
// serializes check-then-write sequences for the same user.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error, id)
	}

	return r.modelToEntity(&userModel)
}

// Create creates a new user record
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:             user.ID,
		Credits:        user.Credits(),
		WelcomeClaimed: user.WelcomeClaimed,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// AdjustCredits adds the signed delta to the user's balance without a floor
// guard. Manual adjustments may legitimately drive the balance down.
func (r *UserRepository) AdjustCredits(ctx context.Context, userID uint64, delta int64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"credits":    gorm.Expr("credits + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("adjusting credits", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// DebitCredits subtracts amount from the balance only when it is covered,
// with the guard evaluated atomically by the database
// (UPDATE ... WHERE credits >= amount). Zero rows affected means a concurrent
// consumer won the race or the balance was short; the caller treats both the
// same way.
func (r *UserRepository) DebitCredits(ctx context.Context, userID uint64, amount int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND credits >= ?", userID, amount).
		Updates(map[string]interface{}{
			"credits":    gorm.Expr("credits - ?", amount),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return false, r.handleDatabaseError("debiting credits", result.Error, userID)
	}

	return result.RowsAffected > 0, nil
}

// MarkWelcomeClaimed flips welcome_claimed to true exactly once. The WHERE
// guard makes the flip race-safe; zero rows affected means a concurrent claim
// already won.
func (r *UserRepository) MarkWelcomeClaimed(ctx context.Context, userID uint64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND welcome_claimed = ?", userID, false).
		Updates(map[string]interface{}{
			"welcome_claimed": true,
			"updated_at":      r.timeProvider.Now(),
		})

	if result.Error != nil {
		return false, r.handleDatabaseError("marking welcome claimed", result.Error, userID)
	}

	return result.RowsAffected > 0, nil
}
