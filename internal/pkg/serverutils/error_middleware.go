package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"vg-ai-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware translates errors escaping the controllers into
// the structured failure body: timestamp, status, error kind, message, path.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		kind := "Internal Server Error"

		switch {
		case apperror.IsNotFound(err):
			status = fiber.StatusNotFound
			kind = "Not Found"
		case apperror.IsInvalidArgument(err):
			status = fiber.StatusBadRequest
			kind = "Bad Request"
		case apperror.IsUpstream(err):
			status = fiber.StatusBadGateway
			kind = "Upstream Failure"
		default:
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
				kind = fe.Message
			}
		}

		return ctx.Status(status).JSON(fiber.Map{
			"timestamp": time.Now().Format(time.RFC3339),
			"status":    status,
			"error":     kind,
			"message":   err.Error(),
			"path":      ctx.Path(),
		})
	}
}
