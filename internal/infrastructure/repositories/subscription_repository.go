package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SooLee99/safe-guide-backend/domain"
)

// SubscriptionRepositoryImpl implements domain.SubscriptionRepository
// using Redis. Confirmations expire with the configured TTL; Redis
// handles expiry itself.
type SubscriptionRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(client *redis.Client, ttl time.Duration) domain.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		client: client,
		prefix: "alarm:subscription:",
		ttl:    ttl,
	}
}

// Confirm implements domain.SubscriptionRepository. Confirming an
// already-confirmed subscription refreshes its TTL.
func (r *SubscriptionRepositoryImpl) Confirm(ctx context.Context, id string) error {
	key := r.prefix + id
	return r.client.Set(ctx, key, "confirmed", r.ttl).Err()
}

// IsConfirmed implements domain.SubscriptionRepository
func (r *SubscriptionRepositoryImpl) IsConfirmed(ctx context.Context, id string) (bool, error) {
	key := r.prefix + id
	_, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
