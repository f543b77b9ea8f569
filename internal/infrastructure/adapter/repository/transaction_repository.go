package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-wallet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM.
// Ledger entries are append-only; there is no update or delete path.
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// entityToModel converts a ledger entry entity to a database model
func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:      txn.UserID,
		Amount:      txn.Amount,
		Type:        string(txn.Type),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}
}

// modelToEntity converts a transaction model to a domain entity
func (r *TransactionRepository) modelToEntity(txnModel *model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:          txnModel.ID,
		UserID:      txnModel.UserID,
		Amount:      txnModel.Amount,
		Type:        entity.EntryType(txnModel.Type),
		Description: txnModel.Description,
		CreatedAt:   txnModel.CreatedAt,
	}
}

// Create appends a new ledger entry
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		r.logger.Error("Failed to create ledger entry", map[string]any{
			"user_id":    txn.UserID,
			"entry_type": string(txn.Type),
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	txn.ID = txnModel.ID
	return nil
}

// ListByUser returns the user's ledger entries, newest first.
// A limit of 0 returns the full history.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, limit int) ([]entity.Transaction, error) {
	var txnModels []model.Transaction

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&txnModels).Error; err != nil {
		r.logger.Error("Failed to list ledger entries", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	entries := make([]entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		entries = append(entries, r.modelToEntity(&txnModels[i]))
	}
	return entries, nil
}

// HasEntrySince reports whether the user has an entry of the given type
// created at or after the given instant
func (r *TransactionRepository) HasEntrySince(ctx context.Context, userID uint64, entryType entity.EntryType, since time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("user_id = ? AND type = ? AND created_at >= ?", userID, string(entryType), since).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Failed to check ledger entries", map[string]any{
			"user_id":    userID,
			"entry_type": string(entryType),
			"error":      result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return count > 0, nil
}
