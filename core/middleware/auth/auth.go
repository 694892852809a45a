package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Config holds configuration for authentication.
type Config struct {
	// Secret signs and validates the JWTs issued at sign-in.
	Secret string `mapstructure:"secret" default:""`
	// GoogleClientID is the OAuth client id used to verify Google ID
	// tokens. Empty enables the development fallback (credential parsed as
	// raw JSON).
	GoogleClientID string `mapstructure:"google_client_id" default:""`
}

// New returns a middleware that requires a valid bearer token.
// Paths listed in skip are public and pass through untouched.
// The authenticated user id lands in c.Locals("user_id").
func New(cfg Config, skip ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, prefix := range skip {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := ValidateToken(cfg.Secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}
