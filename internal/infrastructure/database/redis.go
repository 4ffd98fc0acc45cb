package database

import "github.com/redis/go-redis/v9"

// Redis wraps the redis client used by the subscription repository.
type Redis struct {
	Client *redis.Client
}

// NewRedis creates a new redis connection wrapper
func NewRedis(addr, password string, db int) *Redis {
	return &Redis{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}
