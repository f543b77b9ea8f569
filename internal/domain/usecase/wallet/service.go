package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-wallet/internal/domain/port/notification"
	"github.com/amirhossein-jamali/credit-wallet/internal/domain/port/persistence"
)

// Config carries the externally supplied grant amounts and the calendar-day
// boundary location for the daily allowance.
type Config struct {
	DailyAllowance int64
	WelcomeGrant   int64
	Location       *time.Location
}

// Service is the wallet ledger engine: the single source of truth for credit
// balance mutation. Every mutating operation runs inside one atomic database
// transaction coordinated through the unit of work.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	notifier     notification.Notifier
	cfg          Config
}

// NewService creates a new wallet service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	notifier notification.Notifier,
	cfg Config,
) (*Service, error) {
	if cfg.DailyAllowance <= 0 {
		return nil, fmt.Errorf("daily allowance must be positive, got %d", cfg.DailyAllowance)
	}
	if cfg.WelcomeGrant <= 0 {
		return nil, fmt.Errorf("welcome grant must be positive, got %d", cfg.WelcomeGrant)
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		notifier:     notifier,
		cfg:          cfg,
	}, nil
}

// Status represents the caller-visible wallet state
type Status struct {
	Credits        int64 `json:"credits"`
	WelcomeClaimed bool  `json:"welcomeClaimed"`
}

// Result is the outcome shape for mutating operations. Business-rule outcomes
// (insufficient credits, already claimed) are reported here, not as errors, so
// callers can branch without exception handling.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// recordEntry is the single primitive behind every balance mutation: it writes
// the ledger row and adjusts the cached balance against the same ambient
// transaction, so the credits == sum(entries) invariant is enforced in exactly
// one place. Consumption entries go through the store-level conditional debit;
// ErrInsufficientCredits is returned when that guard rejects the write.
func (s *Service) recordEntry(
	txCtx context.Context,
	userID uint64,
	amount int64,
	entryType entity.EntryType,
	description string,
) (*entity.Transaction, error) {
	txn, err := entity.NewTransaction(userID, amount, entryType, description, s.timeProvider)
	if err != nil {
		return nil, err
	}

	users := s.uow.GetUserRepository(txCtx)

	if entryType == entity.EntryConsumption {
		ok, err := users.DebitCredits(txCtx, userID, -amount)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errs.ErrInsufficientCredits
		}
	} else {
		if err := users.AdjustCredits(txCtx, userID, amount); err != nil {
			return nil, err
		}
	}

	entries := s.uow.GetTransactionRepository(txCtx)
	if err := entries.Create(txCtx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// startOfToday computes the calendar-day boundary from the current wall-clock
// time in the configured location.
func (s *Service) startOfToday() time.Time {
	now := s.timeProvider.Now().In(s.cfg.Location)
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, s.cfg.Location)
}

// notify emits a fire-and-forget wallet event when a notifier is configured
func (s *Service) notify(ctx context.Context, event notification.Event) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, event)
}
