package rayid_test

import (
	"net/http/httptest"
	"testing"

	"tcg-catalog/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRayID(t *testing.T) {
	t.Run("GeneratesID", func(t *testing.T) {
		app := fiber.New()
		app.Use(rayid.New())

		var seen string
		app.Get("/ping", func(c *fiber.Ctx) error {
			seen, _ = c.Locals(rayid.LocalsKey).(string)
			return c.SendString("pong")
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		assert.NoError(t, err)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("ReusesClientID", func(t *testing.T) {
		app := fiber.New()
		app.Use(rayid.New())
		app.Get("/ping", func(c *fiber.Ctx) error {
			return c.SendString("pong")
		})

		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(rayid.HeaderName, "trace-123")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, "trace-123", resp.Header.Get(rayid.HeaderName))
	})
}
