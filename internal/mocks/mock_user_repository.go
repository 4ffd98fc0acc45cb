package mocks

import (
	"context"

	"github.com/SooLee99/safe-guide-backend/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc              func(ctx context.Context, user *domain.User) error
	FindByLoginIDFunc       func(ctx context.Context, loginID string) (*domain.User, error)
	FindActiveByLoginIDFunc func(ctx context.Context, loginID string) (*domain.User, error)
	ExistsByLoginIDFunc     func(ctx context.Context, loginID string) (bool, error)
	UpdateFunc              func(ctx context.Context, user *domain.User) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

// FindByLoginID finds a user by login id, including removed ones
func (m *MockUserRepository) FindByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	if m.FindByLoginIDFunc != nil {
		return m.FindByLoginIDFunc(ctx, loginID)
	}
	return nil, domain.ErrUserNotFound
}

// FindActiveByLoginID finds a non-removed user by login id
func (m *MockUserRepository) FindActiveByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	if m.FindActiveByLoginIDFunc != nil {
		return m.FindActiveByLoginIDFunc(ctx, loginID)
	}
	return nil, domain.ErrUserNotFound
}

// ExistsByLoginID reports whether a login id is taken
func (m *MockUserRepository) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	if m.ExistsByLoginIDFunc != nil {
		return m.ExistsByLoginIDFunc(ctx, loginID)
	}
	return false, nil
}

// Update updates an existing user
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}
