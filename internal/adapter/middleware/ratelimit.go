package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	// Redis round-trip budget per request; on timeout the request is denied with 503.
	storeTimeout = 500 * time.Millisecond
	// Idle in-process buckets are dropped after this long.
	memoryExpiry = 3 * time.Minute
)

// RedisStore is a fixed-window counter shared by every process pointing at the same Redis.
// It satisfies echo's RateLimiterStore.
type RedisStore struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedisStore allows limit requests per identifier per window.
func NewRedisStore(rdb *redis.Client, limit int, window time.Duration) *RedisStore {
	if window <= 0 {
		window = time.Second
	}
	if window < time.Millisecond {
		window = time.Millisecond
	}
	return &RedisStore{rdb: rdb, limit: int64(limit), window: window, now: nowUTC}
}

func (s *RedisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	key := buildKey(identifier, s.now(), s.window)
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// two windows so a slow clock on one replica never resets a live counter
	pipe.Expire(ctx, key, 2*s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= s.limit, nil
}

// NewMemoryStore is the in-process token bucket used when no Redis is configured.
func NewMemoryStore(rps float64, burst int) echomw.RateLimiterStore {
	return echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: memoryExpiry,
	})
}

// RateLimit limits /api/* requests per client IP using store.
func RateLimit(store echomw.RateLimiterStore) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Skipper: skipNonAPI,
		Store:   store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "cannot identify client"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if err != nil {
				log.Printf("ratelimit: store error for %s: %v", identifier, err)
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "rate limiter unavailable"})
			}
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
	})
}
