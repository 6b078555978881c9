package middleware

import (
	"crypto/subtle"

	"kickshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminTokenHeader carries the shared secret of maintenance endpoints.
const AdminTokenHeader = "X-Admin-Token"

// AdminRequired rejects requests whose X-Admin-Token does not match token.
// An empty token closes the endpoint entirely.
func AdminRequired(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			return &services.Error{Kind: services.ErrForbidden, Message: "Admin endpoints are disabled"}
		}
		got := c.Get(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			return &services.Error{Kind: services.ErrForbidden, Message: "Invalid admin token"}
		}
		return c.Next()
	}
}
