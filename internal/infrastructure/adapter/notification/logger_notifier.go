package notification

import (
	"context"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-wallet/internal/domain/port/notification"
)

// LoggerNotifier writes wallet events to the structured logger. It stands in
// for the client-visible event bus; delivery is best effort and never blocks
// or fails a ledger operation.
type LoggerNotifier struct {
	logger core.Logger
}

// NewLoggerNotifier constructs a logging notifier
func NewLoggerNotifier(logger core.Logger) notification.Notifier {
	return &LoggerNotifier{logger: logger}
}

// Notify writes the event to the structured logger
func (n *LoggerNotifier) Notify(_ context.Context, event notification.Event) {
	if n == nil || n.logger == nil {
		return
	}
	n.logger.Info("Wallet event", map[string]any{
		"kind":    event.Kind,
		"user_id": event.UserID,
		"credits": event.Credits,
		"message": event.Message,
	})
}
