package wallet

import (
	"context"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-wallet/internal/domain/port/notification"
)

const (
	welcomeGrantDescription = "Welcome grant"
	welcomeClaimedMessage   = "Welcome grant already claimed."
)

// ClaimWelcome grants the one-time welcome credits. The claimed flag is
// re-read inside the transaction while the user row is locked, and the flag
// flip itself is a conditional update, so N simultaneous claims produce
// exactly one grant; the rest observe the flag and fail harmlessly.
func (s *Service) ClaimWelcome(ctx context.Context, userID uint64) (*Result, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	var credits int64
	alreadyClaimed := false
	err = func() error {
		users := s.uow.GetUserRepository(txCtx)
		user, err := users.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if user.WelcomeClaimed {
			alreadyClaimed = true
			return nil
		}

		claimed, err := users.MarkWelcomeClaimed(txCtx, userID)
		if err != nil {
			return err
		}
		if !claimed {
			alreadyClaimed = true
			return nil
		}

		if _, err := s.recordEntry(txCtx, userID, s.cfg.WelcomeGrant, entity.EntryManualAdjustment, welcomeGrantDescription); err != nil {
			return err
		}
		credits = user.Credits() + s.cfg.WelcomeGrant
		return nil
	}()

	if err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to claim welcome grant", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if alreadyClaimed {
		_ = s.uow.Rollback(txCtx)
		return &Result{Success: false, Message: welcomeClaimedMessage}, nil
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Welcome grant claimed", map[string]any{
		"user_id": userID,
		"amount":  s.cfg.WelcomeGrant,
	})
	s.notify(ctx, notification.Event{
		Kind:    notification.KindBalanceChanged,
		UserID:  userID,
		Credits: credits,
	})

	return &Result{Success: true}, nil
}
