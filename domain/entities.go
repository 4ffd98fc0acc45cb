package domain

import "time"

// Role is the flat role assigned to a user account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered identity in the system.
type User struct {
	ID           uint
	LoginID      string
	PasswordHash string
	UserName     string
	PhoneNumber  string
	Birth        string
	Gender       string
	Address      string
	Role         Role
	RegisteredAt time.Time
	UpdatedAt    time.Time
	RemovedAt    *time.Time
}

// IsActive reports whether the account may authenticate. A non-nil
// RemovedAt marks the account as soft-deleted.
func (u *User) IsActive() bool {
	return u.RemovedAt == nil
}

// Alarm is a notification record owned by a single user. This
// subsystem only reads alarms; it never creates or mutates them.
type Alarm struct {
	ID           uint      `json:"id"`
	OwnerLoginID string    `json:"ownerLoginId"`
	Payload      string    `json:"payload"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TokenClaims is the decoded payload of a verified bearer token.
type TokenClaims struct {
	Subject   string
	Role      Role
	IssuedAt  int64
	ExpiresAt int64
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Content    []T   `json:"content"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	LoginID     string
	Password    string
	UserName    string
	PhoneNumber string
	Birth       string
	Gender      string
	Address     string
}
