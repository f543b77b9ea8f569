package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
)

// TransactionRepository defines the methods needed to append and read ledger entries.
// Entries are immutable; there is deliberately no update or delete.
type TransactionRepository interface {
	// Create appends a new ledger entry
	//
	// Possible errors:
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, txn *entity.Transaction) error

	// ListByUser returns all ledger entries for the user, newest first.
	// A limit of 0 returns the full history.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64, limit int) ([]entity.Transaction, error)

	// HasEntrySince reports whether the user has an entry of the given type
	// created at or after the given instant. Used for the once-per-day
	// allowance check, re-evaluated inside the granting transaction.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	HasEntrySince(ctx context.Context, userID uint64, entryType entity.EntryType, since time.Time) (bool, error)
}
