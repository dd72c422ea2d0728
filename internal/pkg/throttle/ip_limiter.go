package throttle

import (
	"context"
	"fmt"
	"time"

	"buildhive-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Store counts hits per key inside a fixed window.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

type memoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore is the single-instance fallback when no Redis URL is
// configured. Counters reset when the process restarts.
func NewMemoryStore() Store {
	return &memoryStore{cache: cache.New(time.Hour, 10*time.Minute)}
}

func (s *memoryStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if _, found := s.cache.Get(key); !found {
		s.cache.Set(key, int64(1), window)
		return 1, nil
	}
	count, err := s.cache.IncrementInt64(key, 1)
	if err != nil {
		return 0, err
	}
	return count, nil
}

type IPLimiter struct {
	store  Store
	limit  int64
	window time.Duration
	prefix string
}

func NewIPLimiter(store Store, limit int64, window time.Duration, prefix string) *IPLimiter {
	return &IPLimiter{
		store:  store,
		limit:  limit,
		window: window,
		prefix: prefix,
	}
}

// Middleware rejects clients that exceed the window budget with 429.
// Store failures let traffic through rather than blocking everyone.
func (l *IPLimiter) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		key := fmt.Sprintf("%s:%s", l.prefix, ctx.IP())
		count, err := l.store.Incr(ctx.Context(), key, l.window)
		if err != nil {
			return ctx.Next()
		}
		if count > l.limit {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(
				serverutils.ErrorResponse(429, "Too many requests. Please try again later."))
		}
		return ctx.Next()
	}
}
