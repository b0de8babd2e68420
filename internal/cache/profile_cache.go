package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"farmlink/internal/dto"
)

var (
	// ErrCacheNotAvailable: no redis client configured.
	ErrCacheNotAvailable = errors.New("cache not available")
	// ErrCacheMiss: key absent or unreadable; load from the store.
	ErrCacheMiss = errors.New("cache miss")
)

// ProfileCache holds denormalized user projections keyed by user id.
// Every operation is best effort: a redis outage is reported through the
// sentinel errors above and must never surface to a caller as a failure.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewProfileCache creates the cache. A nil client disables caching; every
// Get degrades to a miss and every Set becomes a no-op.
func NewProfileCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl, logger: logger}
}

func profileKey(userID string) string {
	return "user:" + userID
}

// Get returns the cached projection for userID, or ErrCacheMiss /
// ErrCacheNotAvailable when the caller should hit the canonical store.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*dto.UserProfile, error) {
	if c.client == nil {
		return nil, ErrCacheNotAvailable
	}

	data, err := c.client.Get(ctx, profileKey(userID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Debug("profile cache read failed", "user_id", userID, "error", err)
		}
		return nil, ErrCacheMiss
	}

	var profile dto.UserProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		c.logger.Debug("profile cache entry corrupt", "user_id", userID, "error", err)
		return nil, ErrCacheMiss
	}
	return &profile, nil
}

// Set writes the projection through with the configured TTL. Failures are
// logged and swallowed; the canonical store already holds the truth.
func (c *ProfileCache) Set(ctx context.Context, profile *dto.UserProfile) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(profile)
	if err != nil {
		c.logger.Debug("profile cache marshal failed", "user_id", profile.ID, "error", err)
		return
	}

	if err := c.client.Set(ctx, profileKey(profile.ID), data, c.ttl).Err(); err != nil {
		c.logger.Debug("profile cache write failed", "user_id", profile.ID, "error", err)
	}
}

// Invalidate drops a cached projection. Best effort like everything else.
func (c *ProfileCache) Invalidate(ctx context.Context, userID string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, profileKey(userID)).Err(); err != nil {
		c.logger.Debug("profile cache invalidate failed", "user_id", userID, "error", err)
	}
}
