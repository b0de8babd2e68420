package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Per-endpoint limits.
const (
	AuthMaxAttempts     = 5
	FeedbackMaxRequests = 10
	GeneralMaxRequests  = 100

	AuthWindow     = 15 * time.Minute
	FeedbackWindow = 1 * time.Hour
	GeneralWindow  = 1 * time.Hour
)

const tooManyRequestsMessage = "Too many requests, please try again later"

// RateLimiter enforces fixed-window request limits backed by redis so the
// counters are shared across instances. When redis is unavailable it falls
// back to per-process token buckets rather than letting traffic through
// unmetered.
type RateLimiter struct {
	client *redis.Client
	logger *slog.Logger

	mu       sync.Mutex
	fallback map[string]*rate.Limiter
}

func NewRateLimiter(client *redis.Client, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		client:   client,
		logger:   logger,
		fallback: make(map[string]*rate.Limiter),
	}
}

// AuthLimit limits credential endpoints (login, signup, password reset) per
// client IP. It must run before any credential check so failed lookups
// cannot be farmed for enumeration.
func (rl *RateLimiter) AuthLimit() gin.HandlerFunc {
	return rl.limit("auth", AuthMaxAttempts, AuthWindow)
}

// FeedbackLimit limits feedback submissions per client IP.
func (rl *RateLimiter) FeedbackLimit() gin.HandlerFunc {
	return rl.limit("feedback", FeedbackMaxRequests, FeedbackWindow)
}

// GeneralLimit limits authenticated API traffic per user, falling back to
// the client IP when the request carries no identity.
func (rl *RateLimiter) GeneralLimit() gin.HandlerFunc {
	return rl.limit("general", GeneralMaxRequests, GeneralWindow)
}

func (rl *RateLimiter) limit(scope string, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.ClientIP()
		if id, ok := UserID(c); ok {
			identity = id
		}
		key := fmt.Sprintf("rl:%s:%s", scope, identity)

		allowed, err := rl.allowRedis(c, key, max, window)
		if err != nil {
			if rl.logger != nil {
				rl.logger.Debug("rate limit falling back to in-memory", "key", key, "error", err)
			}
			allowed = rl.allowFallback(key, max, window)
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": tooManyRequestsMessage})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allowRedis(c *gin.Context, key string, max int, window time.Duration) (bool, error) {
	if rl.client == nil {
		return false, redis.ErrClosed
	}

	ctx := c.Request.Context()

	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	// The window starts with the first request in it.
	if count == 1 {
		if err := rl.client.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(max), nil
}

func (rl *RateLimiter) allowFallback(key string, max int, window time.Duration) bool {
	rl.mu.Lock()
	limiter, ok := rl.fallback[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(window/time.Duration(max)), max)
		rl.fallback[key] = limiter
	}
	rl.mu.Unlock()

	return limiter.Allow()
}
