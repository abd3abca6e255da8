package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	TokenHeader = "x-auth-token"
	localsUID   = "user_id"
)

// Verifier returns the identity claim of a valid token.
type Verifier interface {
	Verify(token string) (string, error)
}

// tokenFrom reads x-auth-token first, then an Authorization bearer token.
func tokenFrom(c *fiber.Ctx) string {
	if tok := strings.TrimSpace(c.Get(TokenHeader)); tok != "" {
		return tok
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// JWTUidOnly puts the caller's user id in Locals when a token is sent.
// Requests without a token pass through untouched.
func JWTUidOnly(v Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := tokenFrom(c)
		if tok == "" {
			return c.Next()
		}
		uid, err := v.Verify(tok)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token is not valid")
		}
		c.Locals(localsUID, uid)
		return c.Next()
	}
}
