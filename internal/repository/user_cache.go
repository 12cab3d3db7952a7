package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-management/internal/domain"
)

const userCachePrefix = "ticketing:user:"

// UserLookup is the read side of a user directory.
type UserLookup interface {
	FindUser(ctx context.Context, username string) (*domain.User, error)
	AccountManager(ctx context.Context) (*domain.User, error)
}

// CachedUserDirectory caches successful user lookups in Redis. Misses and
// account manager lookups always reach the wrapped directory.
type CachedUserDirectory struct {
	inner  UserLookup
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

type cachedUser struct {
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	AccountManager bool      `json:"account_manager,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewCachedUserDirectory wraps inner. A nil client disables caching.
func NewCachedUserDirectory(inner UserLookup, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedUserDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedUserDirectory{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CachedUserDirectory) FindUser(ctx context.Context, username string) (*domain.User, error) {
	if c.client == nil {
		return c.inner.FindUser(ctx, username)
	}

	key := userCachePrefix + username
	raw, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var cu cachedUser
		if jsonErr := json.Unmarshal([]byte(raw), &cu); jsonErr == nil {
			return &domain.User{
				Username:       cu.Username,
				Email:          cu.Email,
				AccountManager: cu.AccountManager,
				CreatedAt:      cu.CreatedAt,
			}, nil
		}
		c.logger.Warn("discarding corrupt cached user", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("user cache read failed", zap.String("key", key), zap.Error(err))
	}

	user, err := c.inner.FindUser(ctx, username)
	if err != nil || user == nil {
		return user, err
	}

	payload, err := json.Marshal(cachedUser{
		Username:       user.Username,
		Email:          user.Email,
		AccountManager: user.AccountManager,
		CreatedAt:      user.CreatedAt,
	})
	if err == nil {
		if err := c.client.Set(ctx, key, string(payload), c.ttl).Err(); err != nil {
			c.logger.Warn("user cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return user, nil
}

func (c *CachedUserDirectory) AccountManager(ctx context.Context) (*domain.User, error) {
	return c.inner.AccountManager(ctx)
}
