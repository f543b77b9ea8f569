package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
)

// EntryType represents the kind of ledger entry
type EntryType string

// Entry types form a closed enumeration; any other value is a data error.
const (
	EntryDailyGrant       EntryType = "daily_grant"
	EntryConsumption      EntryType = "consumption"
	EntryPurchase         EntryType = "purchase"
	EntryManualAdjustment EntryType = "manual_adjustment"
)

// Transaction represents one immutable, append-only ledger entry.
// A positive amount credits the balance, a negative amount debits it.
type Transaction struct {
	ID          uint64    // Unique identifier, generated at write time
	UserID      uint64    // ID of the user owning this entry
	Amount      int64     // Signed credit change, never zero
	Type        EntryType // One of the closed entry types
	Description string    // Free-text annotation, not machine-interpreted
	CreatedAt   time.Time // When the entry was recorded
}

// NewTransaction creates a new ledger entry with basic validation
func NewTransaction(
	userID uint64,
	amount int64,
	entryType EntryType,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amount == 0 {
		return nil, errs.ErrZeroAmount
	}
	if !isValidEntryType(entryType) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEntryType, entryType)
	}

	return &Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        entryType,
		Description: description,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this entry increased the user's balance
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

// IsDebit returns true if this entry decreased the user's balance
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}

// ParseGrantType validates a grant entry type supplied by a caller.
// Consumption entries are never produced through the grant entry point;
// an empty string defaults to manual_adjustment.
func ParseGrantType(raw string) (EntryType, error) {
	if raw == "" {
		return EntryManualAdjustment, nil
	}

	entryType := EntryType(raw)
	if entryType == EntryConsumption || !isValidEntryType(entryType) {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidEntryType, raw)
	}
	return entryType, nil
}

// isValidEntryType validates membership in the closed enumeration
func isValidEntryType(entryType EntryType) bool {
	switch entryType {
	case EntryDailyGrant, EntryConsumption, EntryPurchase, EntryManualAdjustment:
		return true
	}
	return false
}
