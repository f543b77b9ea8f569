package wallet

import (
	"context"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-wallet/internal/domain/port/notification"
)

// Grant records an administrative credit adjustment. The amount may be
// negative to correct erroneous over-grants; unlike Consume there is no
// floor-at-zero guard here, a deliberate asymmetry that trusts administrative
// callers. Authorization is enforced at the API edge, not in the ledger.
func (s *Service) Grant(ctx context.Context, userID uint64, amount int64, grantType, description string) (*Result, error) {
	entryType, err := entity.ParseGrantType(grantType)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.recordEntry(txCtx, userID, amount, entryType, description); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to grant credits", map[string]any{
			"user_id":    userID,
			"amount":     amount,
			"entry_type": string(entryType),
			"error":      err.Error(),
		})
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Credits granted", map[string]any{
		"user_id":     userID,
		"amount":      amount,
		"entry_type":  string(entryType),
		"description": description,
	})
	s.notify(ctx, notification.Event{
		Kind:   notification.KindBalanceChanged,
		UserID: userID,
	})

	return &Result{Success: true}, nil
}
