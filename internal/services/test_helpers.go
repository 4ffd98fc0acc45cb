package services

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/SooLee99/safe-guide-backend/domain"
	"github.com/SooLee99/safe-guide-backend/internal/mocks"
)

// createUserServiceForTest creates a UserService with mock dependencies
func createUserServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	alarmRepo domain.AlarmRepository,
	subRepo domain.SubscriptionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService) domain.UserService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if alarmRepo == nil {
		alarmRepo = mocks.NewMockAlarmRepository()
	}
	if subRepo == nil {
		subRepo = mocks.NewMockSubscriptionRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}

	return NewUserService(userRepo, alarmRepo, subRepo, passwordSvc, tokenSvc, zap.NewNop())
}

// createValidUser creates an active user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           1,
		LoginID:      "tester",
		PasswordHash: "hashed_password123",
		UserName:     "Tester",
		PhoneNumber:  "010-0000-0000",
		Birth:        "1990-01-01",
		Gender:       "M",
		Address:      "Seoul",
		Role:         domain.RoleUser,
		RegisteredAt: time.Now().Add(-24 * time.Hour),
		UpdatedAt:    time.Now().Add(-1 * time.Hour),
	}
}

// createRemovedUser creates a soft-deleted user entity for testing
func createRemovedUser(t *testing.T) *domain.User {
	t.Helper()

	user := createValidUser(t)
	removed := time.Now().Add(-time.Hour)
	user.RemovedAt = &removed
	return user
}
