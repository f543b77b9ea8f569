package notification

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/credit-wallet/internal/domain/port/notification"
)

// MockNotifier is a mock implementation of the Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, event notification.Event) {
	m.Called(ctx, event)
}
