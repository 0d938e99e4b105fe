package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rentwheels/rentwheels/internal/identity"
)

// Key under which the guard stores the verified email in request locals.
const tokenEmailKey = "token_email"

// AuthGuard verifies the bearer token on the request and exposes the verified
// email to downstream handlers. On any verification failure it short-circuits
// with 401 and the handler never runs.
func AuthGuard(verifier identity.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := verifier.Verify(c.Context(), c.Get("Authorization"))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
		}

		c.Locals(tokenEmailKey, id.Email)
		return c.Next()
	}
}

// TokenEmail returns the verified email stored by AuthGuard, or "" on an
// unguarded route.
func TokenEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(tokenEmailKey).(string)
	return email
}
