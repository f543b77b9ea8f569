package wallet

import (
	"context"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
)

// CreateUser provisions a wallet user with zero credits and an unclaimed
// welcome grant. The first GetStatus call will grant today's allowance.
func (s *Service) CreateUser(ctx context.Context, userID uint64) (*entity.User, error) {
	user, err := entity.NewUser(userID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	users := s.uow.GetUserRepository(ctx)
	if err := users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User created", map[string]any{
		"user_id": userID,
	})
	return user, nil
}
