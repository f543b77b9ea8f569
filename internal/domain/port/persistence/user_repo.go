package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
)

// UserRepository defines the methods needed to read and mutate user wallet state.
// Credit balances are mutated only through ledger operations; the repository
// exposes narrow primitives so the use case can keep balance and ledger writes
// inside one database transaction.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user by ID while holding a row lock for the
	// duration of the ambient transaction. Used to serialize per-user
	// check-then-write sequences (daily allowance, welcome claim).
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// Create creates a new user with zero credits
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// AdjustCredits adds the signed delta to the user's balance without a
	// floor guard. Used for grant-type entries; manual adjustments are trusted
	// to be deliberate and may drive the balance down.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	AdjustCredits(ctx context.Context, userID uint64, delta int64) error

	// DebitCredits subtracts amount from the balance only when the balance
	// covers it, evaluated atomically at the store level
	// (UPDATE ... WHERE credits >= amount). Returns false when the guard
	// rejected the debit; the balance is left untouched in that case.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	DebitCredits(ctx context.Context, userID uint64, amount int64) (bool, error)

	// MarkWelcomeClaimed flips welcome_claimed to true if it is still false,
	// evaluated atomically at the store level. Returns false when the flag was
	// already set, which means a concurrent claim won.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	MarkWelcomeClaimed(ctx context.Context, userID uint64) (bool, error)
}
