package middleware

import (
	"strings"

	"kickshop/internal/models"
	"kickshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserKey is the fiber.Ctx Locals key holding the authenticated *models.User.
const UserKey = "user"

// AuthRequired is a Fiber middleware that resolves the bearer token to a user.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return &services.Error{Kind: services.ErrUnauthorized, Message: "Not authenticated"}
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return &services.Error{Kind: services.ErrUnauthorized, Message: "Could not validate credentials"}
		}

		user, err := authService.CurrentUser(c.UserContext(), strings.TrimSpace(parts[1]))
		if err != nil {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return err
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired, or nil on public routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}
