package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain.
// The calendar-day boundary used by the daily allowance is derived from
// Now() in a configured location, so tests can pin the clock.
type TimeProvider interface {
	// Now returns the current wall-clock time
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// WithTimeout returns a context that will be canceled after the given timeout
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
