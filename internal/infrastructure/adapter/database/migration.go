package database

import (
	coreport "github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-wallet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Migrate creates the wallet schema and its supporting indexes.
// AutoMigrate is additive only; it never drops columns or data.
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	if err := db.AutoMigrate(&model.User{}, &model.Transaction{}); err != nil {
		logger.Error("Failed to migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// The composite (user_id, type, created_at) index backing the daily-grant
	// lookup is declared on the model; make sure the plain history index exists
	// on databases migrated before it was added.
	if err := db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions (user_id)",
	).Error; err != nil {
		logger.Error("Failed to create history index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Database migrations completed", nil)
	return nil
}
