package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating balance and ledger writes
// across repositories inside one atomic database transaction. The live
// transaction travels in the returned context so every helper operates
// against the same handle and atomicity boundaries stay visible at call sites.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a ledger repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
