package wallet

import (
	"context"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
)

// dailyGrantDescription annotates allowance entries in the ledger
const dailyGrantDescription = "Daily allowance"

// EnsureDailyAllowance grants the configured allowance at most once per
// calendar day, idempotently under concurrent callers. The existence check is
// re-evaluated inside the transaction while the user row is locked, so N
// simultaneous callers produce exactly one grant for the day.
func (s *Service) EnsureDailyAllowance(ctx context.Context, userID uint64) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	granted := false
	err = func() error {
		users := s.uow.GetUserRepository(txCtx)

		// The row lock serializes concurrent allowance checks for this user.
		if _, err := users.GetByIDForUpdate(txCtx, userID); err != nil {
			return err
		}

		entries := s.uow.GetTransactionRepository(txCtx)
		alreadyGranted, err := entries.HasEntrySince(txCtx, userID, entity.EntryDailyGrant, s.startOfToday())
		if err != nil {
			return err
		}
		if alreadyGranted {
			return nil
		}

		if _, err := s.recordEntry(txCtx, userID, s.cfg.DailyAllowance, entity.EntryDailyGrant, dailyGrantDescription); err != nil {
			return err
		}
		granted = true
		return nil
	}()

	if err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to ensure daily allowance", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	if granted {
		s.logger.Info("Daily allowance granted", map[string]any{
			"user_id": userID,
			"amount":  s.cfg.DailyAllowance,
		})
	}

	return nil
}
