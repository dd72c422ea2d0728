package throttle

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreIncr(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		count, err := store.Incr(ctx, "k", time.Minute)
		assert.NoError(t, err)
		assert.Equal(t, int64(i), count)
	}

	count, err := store.Incr(ctx, "other", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count, "keys count independently")
}

func TestIPLimiterMiddleware(t *testing.T) {
	limiter := NewIPLimiter(NewMemoryStore(), 20, time.Hour, "test")

	app := fiber.New()
	app.Post("/reviews", limiter.Middleware(), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	for i := 1; i <= 20; i++ {
		req := httptest.NewRequest("POST", "/reviews", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, fmt.Sprintf("request %d should pass", i))
	}

	req := httptest.NewRequest("POST", "/reviews", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode, "request 21 within the window is rejected")
}

type failingStore struct{}

func (failingStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	return 0, fmt.Errorf("store down")
}

func TestIPLimiterFailsOpen(t *testing.T) {
	limiter := NewIPLimiter(failingStore{}, 1, time.Hour, "test")

	app := fiber.New()
	app.Post("/reviews", limiter.Middleware(), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/reviews", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
