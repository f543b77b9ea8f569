package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
)

// User represents a wallet-owning user with an integer credit balance
type User struct {
	ID             uint64    // Unique identifier for the user
	credits        int64     // Credit balance, kept in lock-step with the ledger (private)
	WelcomeClaimed bool      // Whether the one-time welcome grant has been claimed
	CreatedAt      time.Time // When the user was created
	UpdatedAt      time.Time // When the user was last updated
}

// NewUser creates a new user with zero credits and an unclaimed welcome grant
func NewUser(id uint64, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &User{
		ID:             id,
		credits:        0,
		WelcomeClaimed: false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Credits returns the current credit balance
func (u *User) Credits() int64 {
	return u.credits
}

// SetCredits updates the balance directly (for internal use, like repositories)
func (u *User) SetCredits(credits int64, timeProvider coreport.TimeProvider) {
	u.credits = credits
	u.UpdatedAt = timeProvider.Now()
}

// CanConsume checks if the user has enough credits for a debit of the given size
func (u *User) CanConsume(amount int64) bool {
	return amount > 0 && u.credits >= amount
}

// ApplyEntry adjusts the balance by the signed ledger amount.
// Returns an error if a debit would drive the balance negative.
func (u *User) ApplyEntry(amount int64, timeProvider coreport.TimeProvider) error {
	if amount < 0 && u.credits+amount < 0 {
		return errs.ErrInsufficientCredits
	}

	u.credits += amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// ClaimWelcome marks the welcome grant as claimed.
// Returns false if it was already claimed; the flag never reverts.
func (u *User) ClaimWelcome(timeProvider coreport.TimeProvider) bool {
	if u.WelcomeClaimed {
		return false
	}
	u.WelcomeClaimed = true
	u.UpdatedAt = timeProvider.Now()
	return true
}
