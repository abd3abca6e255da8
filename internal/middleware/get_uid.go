package middleware

import "github.com/gofiber/fiber/v2"

// UIDFromLocals returns the user id set by JWTUidOnly.
func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals(localsUID).(string)
	if uid == "" {
		return "", fiber.ErrUnauthorized
	}
	return uid, nil
}
