package notification

import "context"

// Event kinds emitted after wallet mutations.
const (
	KindBalanceChanged      = "balance_changed"
	KindInsufficientCredits = "insufficient_credits"
)

// Event describes a client-visible wallet signal.
type Event struct {
	Kind    string
	UserID  uint64
	Credits int64
	Message string
}

// Notifier delivers fire-and-forget wallet events to downstream systems.
// Delivery failures are logged, never propagated to the ledger caller.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}
