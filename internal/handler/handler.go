package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/rockparade/backend/internal/middleware"
)

const (
	defaultLimit  = 50
	defaultOffset = 0
)

// pagination reads optional limit/offset path segments, falling back to the
// API defaults.
func pagination(c *fiber.Ctx) (int, int) {
	limit := defaultLimit
	if raw := c.Params("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	offset := defaultOffset
	if raw := c.Params("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	return limit, offset
}

func actorLogin(c *fiber.Ctx) string {
	if login, ok := c.Locals(middleware.LocalsUserLogin).(string); ok {
		return login
	}
	return ""
}
