package middlewares

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewErrorHandler centralizes error responses and keeps messages sanitized.
// Handlers surface expected conditions (validation, conflicts) inline on
// their own views; only transport-level and unknown errors land here.
func NewErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// 1) Fiber errors (use their status code + message)
		if fe, ok := err.(*fiber.Error); ok {
			return c.Status(fe.Code).SendString(fe.Message)
		}

		// 2) Validation errors that escaped a handler
		if _, ok := err.(validator.ValidationErrors); ok {
			return c.Status(fiber.StatusUnprocessableEntity).SendString("validation failed")
		}

		// 3) Unknown errors (500)
		logger.Error("internal error", zap.Error(err), zap.String("path", c.Path()))
		return c.Status(fiber.StatusInternalServerError).SendString("internal server error")
	}
}
