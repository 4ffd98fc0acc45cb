package mocks

import (
	"context"

	"github.com/SooLee99/safe-guide-backend/domain"
)

// MockUserService implements domain.UserService for testing
type MockUserService struct {
	RegisterFunc                 func(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	LoginFunc                    func(ctx context.Context, loginID, password string) (string, error)
	ListAlarmsFunc               func(ctx context.Context, user *domain.User, page, size int) (*domain.Page[domain.Alarm], error)
	ConfirmAlarmSubscriptionFunc func(ctx context.Context, id string) error
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

// Register registers a user
func (m *MockUserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return nil, domain.ErrDuplicateLoginID
}

// Login authenticates a user and returns a token
func (m *MockUserService) Login(ctx context.Context, loginID, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, loginID, password)
	}
	return "", domain.ErrUserNotFound
}

// ListAlarms returns a page of the user's alarms
func (m *MockUserService) ListAlarms(ctx context.Context, user *domain.User, page, size int) (*domain.Page[domain.Alarm], error) {
	if m.ListAlarmsFunc != nil {
		return m.ListAlarmsFunc(ctx, user, page, size)
	}
	return &domain.Page[domain.Alarm]{Content: []domain.Alarm{}, Page: page, Size: size}, nil
}

// ConfirmAlarmSubscription confirms an alarm subscription
func (m *MockUserService) ConfirmAlarmSubscription(ctx context.Context, id string) error {
	if m.ConfirmAlarmSubscriptionFunc != nil {
		return m.ConfirmAlarmSubscriptionFunc(ctx, id)
	}
	return nil
}
