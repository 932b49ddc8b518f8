package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rockparade/backend/internal/models"
	jwtPkg "github.com/rockparade/backend/pkg/jwt"
)

// LocalsUserLogin is the context key holding the authenticated user's login.
const LocalsUserLogin = "userLogin"

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.NewErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.NewErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.NewErrorResponse("Invalid token"))
		}

		login, ok := claims["login"].(string)
		if !ok || login == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.NewErrorResponse("Invalid login in token"))
		}

		c.Locals(LocalsUserLogin, login)

		return c.Next()
	}
}
