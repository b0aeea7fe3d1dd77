package serverutils

import (
	"errors"

	"ai-workspace-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// StatusCode maps typed service errors to HTTP status codes.
func StatusCode(err error) int {
	var (
		validationErr  *dto.ValidationError
		notFoundErr    *dto.NotFoundError
		unsupportedErr *dto.UnsupportedTypeError
		forbiddenErr   *dto.ForbiddenError
		fiberErr       *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &forbiddenErr):
		return fiber.StatusForbidden
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	case errors.As(err, &unsupportedErr):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware turns errors returned by handlers into the standard
// error envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := StatusCode(err)
		message := err.Error()
		if code == fiber.StatusInternalServerError {
			message = "Internal server error"
		}
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
