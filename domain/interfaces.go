package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByLoginID(ctx context.Context, loginID string) (*User, error)
	FindActiveByLoginID(ctx context.Context, loginID string) (*User, error)
	ExistsByLoginID(ctx context.Context, loginID string) (bool, error)
	Update(ctx context.Context, user *User) error
}

// AlarmRepository defines read-only access to alarm records
type AlarmRepository interface {
	FindPageByOwner(ctx context.Context, ownerLoginID string, page, size int) (*Page[Alarm], error)
}

// SubscriptionRepository records alarm-subscription confirmations
type SubscriptionRepository interface {
	Confirm(ctx context.Context, id string) error
	IsConfirmed(ctx context.Context, id string) (bool, error)
}

// TokenService defines bearer token operations
type TokenService interface {
	Issue(loginID string, role Role) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// UserService defines the user-facing business logic
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, loginID, password string) (string, error)
	ListAlarms(ctx context.Context, user *User, page, size int) (*Page[Alarm], error)
	ConfirmAlarmSubscription(ctx context.Context, id string) error
}
