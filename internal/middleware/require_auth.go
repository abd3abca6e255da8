package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth rejects requests that JWTUidOnly did not authenticate.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if uid, _ := c.Locals(localsUID).(string); strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "No token, authorization denied")
		}
		return c.Next()
	}
}

// Protected is JWTUidOnly followed by RequireAuth.
func Protected(v Verifier) []fiber.Handler {
	return []fiber.Handler{JWTUidOnly(v), RequireAuth()}
}
