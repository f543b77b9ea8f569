package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/credit-wallet/internal/domain/port/notification"
)

// insufficientCreditsMessage is the caller-visible text for a rejected debit
const insufficientCreditsMessage = "Insufficient credits"

// Consume debits the balance for usage of a resource. The debit is guarded
// twice: once by the balance read inside the transaction and again by the
// store-level conditional update, so the balance never goes negative even when
// concurrent consumers collectively exceed it. A rejected debit is a normal
// outcome reported in the result, not an error.
func (s *Service) Consume(ctx context.Context, userID uint64, resourceType string, amount int64) (*Result, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	if err := s.EnsureDailyAllowance(ctx, userID); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	var remaining int64
	insufficient := false
	err = func() error {
		users := s.uow.GetUserRepository(txCtx)
		user, err := users.GetByID(txCtx, userID)
		if err != nil {
			return err
		}

		if !user.CanConsume(amount) {
			insufficient = true
			remaining = user.Credits()
			return nil
		}

		description := fmt.Sprintf("Consumed %d credit(s) for %s", amount, resourceType)
		if _, err := s.recordEntry(txCtx, userID, -amount, entity.EntryConsumption, description); err != nil {
			// A concurrent consumer may have spent the balance between the
			// read above and the conditional update. Fail cleanly, no retry.
			if errors.Is(err, errs.ErrInsufficientCredits) {
				insufficient = true
				remaining = user.Credits()
				return nil
			}
			return err
		}

		remaining = user.Credits() - amount
		return nil
	}()

	if err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to consume credits", map[string]any{
			"user_id":       userID,
			"resource_type": resourceType,
			"amount":        amount,
			"error":         err.Error(),
		})
		return nil, err
	}

	if insufficient {
		_ = s.uow.Rollback(txCtx)
		s.logger.Warn("Consumption rejected, insufficient credits", map[string]any{
			"user_id":       userID,
			"resource_type": resourceType,
			"requested":     amount,
			"available":     remaining,
		})
		s.notify(ctx, notification.Event{
			Kind:    notification.KindInsufficientCredits,
			UserID:  userID,
			Credits: remaining,
			Message: insufficientCreditsMessage,
		})
		return &Result{Success: false, Message: insufficientCreditsMessage}, nil
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Credits consumed", map[string]any{
		"user_id":       userID,
		"resource_type": resourceType,
		"amount":        amount,
		"remaining":     remaining,
	})
	s.notify(ctx, notification.Event{
		Kind:    notification.KindBalanceChanged,
		UserID:  userID,
		Credits: remaining,
	})

	return &Result{Success: true, Message: fmt.Sprintf("Consumed %d credits", amount)}, nil
}
