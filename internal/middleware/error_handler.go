package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rockparade/backend/internal/apperr"
	"github.com/rockparade/backend/internal/models"
)

// ErrorHandler maps domain errors to the API envelope. Anything unmapped is
// logged and reported as a bare 500.
func ErrorHandler(logger *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var validationErr *apperr.ValidationError
		var unauthorizedErr *apperr.UnauthorizedError
		var forbiddenErr *apperr.ForbiddenError
		var notFoundErr *apperr.NotFoundError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).
				JSON(models.NewErrorResponse(validationErr.Messages...))
		case errors.As(err, &unauthorizedErr):
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.NewErrorResponse(unauthorizedErr.Message))
		case errors.As(err, &forbiddenErr):
			return c.Status(fiber.StatusForbidden).
				JSON(models.NewErrorResponse(forbiddenErr.Message))
		case errors.As(err, &notFoundErr):
			return c.Status(fiber.StatusNotFound).
				JSON(models.NewErrorResponse(notFoundErr.Error()))
		case errors.As(err, &fiberErr):
			return c.Status(fiberErr.Code).
				JSON(models.NewErrorResponse(fiberErr.Message))
		default:
			logger.Errorw("unhandled error", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(models.NewErrorResponse("Internal server error"))
		}
	}
}
