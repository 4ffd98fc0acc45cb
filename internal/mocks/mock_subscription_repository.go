package mocks

import "context"

// MockSubscriptionRepository implements domain.SubscriptionRepository for testing
type MockSubscriptionRepository struct {
	ConfirmFunc     func(ctx context.Context, id string) error
	IsConfirmedFunc func(ctx context.Context, id string) (bool, error)
}

// NewMockSubscriptionRepository creates a new MockSubscriptionRepository with default behaviors
func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{}
}

// Confirm records a subscription confirmation
func (m *MockSubscriptionRepository) Confirm(ctx context.Context, id string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, id)
	}
	return nil
}

// IsConfirmed reports whether a subscription is confirmed
func (m *MockSubscriptionRepository) IsConfirmed(ctx context.Context, id string) (bool, error) {
	if m.IsConfirmedFunc != nil {
		return m.IsConfirmedFunc(ctx, id)
	}
	return false, nil
}
