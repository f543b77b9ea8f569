package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientCredits = 4001
	CodeZeroAmount          = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidEntryType    = 4004
	CodeInvalidAmount       = 4005
	CodeWelcomeClaimed      = 4009
	CodeUnauthorized        = 4010
	CodeUserNotFound        = 4040
	CodeDuplicateUser       = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientCredits is returned when a debit would drive the balance negative
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrZeroAmount is returned when a ledger entry carries a zero amount
	ErrZeroAmount = errors.New("ledger entry amount cannot be zero")

	// ErrInvalidAmount is returned when a consumption amount is not a positive integer
	ErrInvalidAmount = errors.New("amount must be a positive integer")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidEntryType is returned when the entry type is outside the closed enumeration
	ErrInvalidEntryType = errors.New("invalid ledger entry type")

	// ErrWelcomeAlreadyClaimed is returned when the one-time welcome grant was already taken
	ErrWelcomeAlreadyClaimed = errors.New("welcome grant already claimed")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrUnauthorized is returned when no caller identity could be resolved
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrZeroAmount):
		return CodeZeroAmount
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidEntryType):
		return CodeInvalidEntryType
	case errors.Is(err, ErrWelcomeAlreadyClaimed):
		return CodeWelcomeClaimed
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditsError provides detailed error information for overdraft attempts
type InsufficientCreditsError struct {
	UserID    uint64
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %d: required %d, available %d",
		e.UserID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"user_id":    e.UserID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID uint64, requested, available int64) error {
	return &InsufficientCreditsError{
		UserID:    userID,
		Requested: requested,
		Available: available,
	}
}

// LedgerError represents an error raised while recording a ledger entry
type LedgerError struct {
	UserID    uint64
	Amount    int64
	EntryType string
	Reason    string
	Err       error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger error for user %d (amount: %d, type: %s): %s - %v",
		e.UserID, e.Amount, e.EntryType, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"entry_type": e.EntryType,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(userID uint64, amount int64, entryType, reason string, err error) error {
	return &LedgerError{
		UserID:    userID,
		Amount:    amount,
		EntryType: entryType,
		Reason:    reason,
		Err:       err,
	}
}

// IsInsufficientCreditsError checks if the error is related to insufficient credits
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsWelcomeClaimedError checks if the error reports an already-claimed welcome grant
func IsWelcomeClaimedError(err error) bool {
	return errors.Is(err, ErrWelcomeAlreadyClaimed)
}
