package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pulse/internal/token"
)

// ClaimsLocalKey is the key verified token claims are stored under in
// Fiber locals.
const ClaimsLocalKey = "auth_claims"

// RequireAuth verifies the Bearer access token and stores its claims for
// downstream handlers. Requests without a valid token get 401.
func RequireAuth(tm *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return fiber.ErrUnauthorized
		}

		claims, err := tm.Parse(raw, token.KindAccess)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}
