package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SooLee99/safe-guide-backend/domain"
	"github.com/SooLee99/safe-guide-backend/internal/config"
	"github.com/SooLee99/safe-guide-backend/internal/infrastructure/auth"
	"github.com/SooLee99/safe-guide-backend/internal/infrastructure/database"
	"github.com/SooLee99/safe-guide-backend/internal/infrastructure/repositories"
	"github.com/SooLee99/safe-guide-backend/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo  domain.UserRepository
	AlarmRepo domain.AlarmRepository
	SubRepo   domain.SubscriptionRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	UserSvc     domain.UserService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.AlarmRepo = repositories.NewAlarmRepository(c.DB)
	c.SubRepo = repositories.NewSubscriptionRepository(c.RedisClient, cfg.SubscriptionTTL)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	c.UserSvc = services.NewUserService(
		c.UserRepo,
		c.AlarmRepo,
		c.SubRepo,
		c.PasswordSvc,
		c.TokenSvc,
		logger,
	)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
