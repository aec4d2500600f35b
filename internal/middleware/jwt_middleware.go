package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"catalog/internal/services"
)

// Authenticate extracts a bearer token from the Authorization header and,
// when valid, stores the caller's identity in the request locals. Requests
// without a bearer token, or with an invalid one, always pass through
// unauthenticated; route guards decide whether that is acceptable.
func Authenticate(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Next()
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Next()
		}

		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		c.Locals("roles", claims["roles"])

		return c.Next()
	}
}

// RequireAuth rejects requests that Authenticate left unauthenticated.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("username") == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}
		return c.Next()
	}
}
