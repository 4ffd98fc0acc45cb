package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/SooLee99/safe-guide-backend/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags).
// RemovedAt is a plain nullable timestamp rather than gorm.DeletedAt:
// soft-delete filtering is an explicit query concern here, not an ORM
// hook, so removed rows stay visible to FindByLoginID.
type DBUser struct {
	ID           uint       `gorm:"primaryKey"`
	LoginID      string     `gorm:"column:login_id;uniqueIndex;size:64"`
	PasswordHash string     `gorm:"column:password"`
	UserName     string     `gorm:"size:255"`
	PhoneNumber  string     `gorm:"size:32"`
	Birth        string     `gorm:"size:32"`
	Gender       string     `gorm:"size:16"`
	Address      string     `gorm:"size:255"`
	Role         string     `gorm:"index;size:16"`
	RegisteredAt time.Time  `gorm:"index"`
	UpdatedAt    time.Time
	RemovedAt    *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A unique-constraint
// violation on login_id surfaces as domain.ErrDuplicateLoginID; the
// store's constraint is the source of truth for uniqueness under
// concurrent registration.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateLoginID
		}
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByLoginID implements domain.UserRepository. Soft-deleted rows
// are included; callers decide how to treat them.
func (r *UserRepositoryImpl) FindByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("login_id = ?", loginID).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindActiveByLoginID implements domain.UserRepository, excluding
// soft-deleted rows.
func (r *UserRepositoryImpl) FindActiveByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).
		Where("login_id = ? AND removed_at IS NULL", loginID).
		First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// ExistsByLoginID implements domain.UserRepository
func (r *UserRepositoryImpl) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("login_id = ?", loginID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	dbUser.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		LoginID:      user.LoginID,
		PasswordHash: user.PasswordHash,
		UserName:     user.UserName,
		PhoneNumber:  user.PhoneNumber,
		Birth:        user.Birth,
		Gender:       user.Gender,
		Address:      user.Address,
		Role:         string(user.Role),
		RegisteredAt: user.RegisteredAt,
		UpdatedAt:    user.UpdatedAt,
		RemovedAt:    user.RemovedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		LoginID:      dbUser.LoginID,
		PasswordHash: dbUser.PasswordHash,
		UserName:     dbUser.UserName,
		PhoneNumber:  dbUser.PhoneNumber,
		Birth:        dbUser.Birth,
		Gender:       dbUser.Gender,
		Address:      dbUser.Address,
		Role:         domain.Role(dbUser.Role),
		RegisteredAt: dbUser.RegisteredAt,
		UpdatedAt:    dbUser.UpdatedAt,
		RemovedAt:    dbUser.RemovedAt,
	}
}
