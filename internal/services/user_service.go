package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SooLee99/safe-guide-backend/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo    domain.UserRepository
	alarmRepo   domain.AlarmRepository
	subRepo     domain.SubscriptionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	logger      *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo domain.UserRepository,
	alarmRepo domain.AlarmRepository,
	subRepo domain.SubscriptionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	logger *zap.Logger,
) domain.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		alarmRepo:   alarmRepo,
		subRepo:     subRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		logger:      logger,
	}
}

// Register implements domain.UserService. The exists pre-check is an
// optimization; the store's unique constraint on login_id is the
// actual uniqueness guarantee, and a constraint violation from Create
// is reported as ErrDuplicateLoginID the same way.
func (s *UserServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByLoginID(ctx, input.LoginID)
	if err != nil {
		return nil, fmt.Errorf("failed to check login id: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateLoginID
	}

	hashedPassword, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		LoginID:      input.LoginID,
		PasswordHash: hashedPassword,
		UserName:     input.UserName,
		PhoneNumber:  input.PhoneNumber,
		Birth:        input.Birth,
		Gender:       input.Gender,
		Address:      input.Address,
		Role:         domain.RoleUser,
		RegisteredAt: now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateLoginID) {
			return nil, domain.ErrDuplicateLoginID
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("login_id", user.LoginID))
	return user, nil
}

// Login implements domain.UserService. Soft-deleted accounts look the
// same as unknown ones: no active identity matches.
func (s *UserServiceImpl) Login(ctx context.Context, loginID, password string) (string, error) {
	user, err := s.userRepo.FindActiveByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return "", domain.ErrInvalidPassword
	}

	token, err := s.tokenSvc.Issue(user.LoginID, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("login_id", user.LoginID))
	return token, nil
}

// ListAlarms implements domain.UserService. The caller's identity is
// established upstream by the authorization policy; it is not
// re-checked here.
func (s *UserServiceImpl) ListAlarms(ctx context.Context, user *domain.User, page, size int) (*domain.Page[domain.Alarm], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return s.alarmRepo.FindPageByOwner(ctx, user.LoginID, page, size)
}

// ConfirmAlarmSubscription implements domain.UserService. The id must
// be a well-formed subscription UUID.
func (s *UserServiceImpl) ConfirmAlarmSubscription(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrSubscriptionNotFound
	}

	if err := s.subRepo.Confirm(ctx, id); err != nil {
		return fmt.Errorf("failed to confirm subscription: %w", err)
	}

	s.logger.Info("alarm subscription confirmed", zap.String("subscription_id", id))
	return nil
}
