package wallet

import (
	"context"
)

// GetStatus returns the user's credits and welcome-claim flag. Reading status
// is never a pure read: the daily allowance check runs first, so the returned
// state reflects any grant made for today.
func (s *Service) GetStatus(ctx context.Context, userID uint64) (*Status, error) {
	if err := s.EnsureDailyAllowance(ctx, userID); err != nil {
		return nil, err
	}

	users := s.uow.GetUserRepository(ctx)
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Status{
		Credits:        user.Credits(),
		WelcomeClaimed: user.WelcomeClaimed,
	}, nil
}
