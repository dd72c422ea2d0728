package serverutils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func mintTestToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "2f0b2c1e-55aa-4d8f-9d5e-3d2b1a0c9e8f",
		"email":   "dev@example.com",
		"exp":     time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func newProtectedApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/protected", JwtMiddleware, handler)
	app.Get("/optional", OptionalJwtMiddleware, handler)
	return app
}

func TestJwtMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", "unit-test-secret")
	defer os.Unsetenv("JWT_SECRET")

	app := newProtectedApp(func(ctx *fiber.Ctx) error {
		userId, _ := ctx.Locals("user_id").(string)
		return ctx.SendString(userId)
	})

	t.Run("valid bearer token passes and sets locals", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+mintTestToken(t, "unit-test-secret", time.Hour))
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("token cookie is accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: mintTestToken(t, "unit-test-secret", time.Hour)})
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+mintTestToken(t, "unit-test-secret", -time.Hour))
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+mintTestToken(t, "some-other-secret", time.Hour))
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestOptionalJwtMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", "unit-test-secret")
	defer os.Unsetenv("JWT_SECRET")

	app := newProtectedApp(func(ctx *fiber.Ctx) error {
		if userId, ok := ctx.Locals("user_id").(string); ok {
			return ctx.SendString(userId)
		}
		return ctx.SendString("anonymous")
	})

	t.Run("anonymous request passes through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/optional", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("valid token is honored", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/optional", nil)
		req.Header.Set("Authorization", "Bearer "+mintTestToken(t, "unit-test-secret", time.Hour))
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("garbage token falls back to anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/optional", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
