package mocks

import (
	"time"

	"github.com/SooLee99/safe-guide-backend/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc  func(loginID string, role domain.Role) (string, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue produces a token for the login id and role
func (m *MockTokenService) Issue(loginID string, role domain.Role) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(loginID, role)
	}
	return "token_" + loginID, nil
}

// Verify parses and checks a token
func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	now := time.Now()
	return &domain.TokenClaims{
		Subject:   "test_user",
		Role:      domain.RoleUser,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}
