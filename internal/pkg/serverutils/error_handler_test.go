package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func decodeEnvelope(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	assert.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/app-error", func(ctx *fiber.Ctx) error {
		return NotFound("Project not found")
	})
	app.Get("/app-error-extra", func(ctx *fiber.Ctx) error {
		return NewAppErrorWith(fiber.StatusForbidden, "Daily review limit reached", map[string]interface{}{
			"plan":            "FREE",
			"limit":           5,
			"upgradeRequired": true,
		})
	})
	app.Get("/fiber-error", func(ctx *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})
	app.Get("/plain-error", func(ctx *fiber.Ctx) error {
		return errors.New("dsn parse failed: secret")
	})
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", nil))
	})

	t.Run("app error keeps status and message", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/app-error", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "Project not found", envelope["message"])
	})

	t.Run("extra fields are merged into the envelope", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/app-error-extra", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.Equal(t, "FREE", envelope["plan"])
		assert.Equal(t, true, envelope["upgradeRequired"])
		assert.Equal(t, float64(5), envelope["limit"])
	})

	t.Run("fiber errors keep their status", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/fiber-error", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("plain errors become an opaque 500", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/plain-error", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.Equal(t, "Internal server error", envelope["message"])
		assert.NotContains(t, envelope["message"], "dsn")
	})

	t.Run("successful handlers are untouched", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		assert.Equal(t, true, envelope["success"])
	})
}
