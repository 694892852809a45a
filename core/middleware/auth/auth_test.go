package auth_test

import (
	"net/http/httptest"
	"testing"

	"collection-tracker/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{Secret: testSecret}, "/auth"))
	app.Get("/auth/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, 42, "a@example.com", "Alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.ValidateToken(testSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)

	_, err = auth.ValidateToken("other-secret", token)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	app := newApp()

	t.Run("Public Path", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/auth/ping", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Missing Token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := auth.GenerateToken(testSecret, 7, "b@example.com", "Bob")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
