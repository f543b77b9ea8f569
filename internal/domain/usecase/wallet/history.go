package wallet

import (
	"context"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
)

// GetTransactions returns the user's full ledger history, newest first.
// A positive limit caps the result; the default of 0 returns everything.
func (s *Service) GetTransactions(ctx context.Context, userID uint64, limit int) ([]entity.Transaction, error) {
	entries := s.uow.GetTransactionRepository(ctx)
	return entries.ListByUser(ctx, userID, limit)
}
