package mocks

import (
	"context"

	"github.com/SooLee99/safe-guide-backend/domain"
)

// MockAlarmRepository implements domain.AlarmRepository for testing
type MockAlarmRepository struct {
	FindPageByOwnerFunc func(ctx context.Context, ownerLoginID string, page, size int) (*domain.Page[domain.Alarm], error)
}

// NewMockAlarmRepository creates a new MockAlarmRepository with default behaviors
func NewMockAlarmRepository() *MockAlarmRepository {
	return &MockAlarmRepository{}
}

// FindPageByOwner returns one page of the owner's alarms
func (m *MockAlarmRepository) FindPageByOwner(ctx context.Context, ownerLoginID string, page, size int) (*domain.Page[domain.Alarm], error) {
	if m.FindPageByOwnerFunc != nil {
		return m.FindPageByOwnerFunc(ctx, ownerLoginID, page, size)
	}
	return &domain.Page[domain.Alarm]{
		Content: []domain.Alarm{},
		Page:    page,
		Size:    size,
	}, nil
}
