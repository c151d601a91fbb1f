// Package errors translates service errors into HTTP responses. It is the
// only place that maps the apperror taxonomy to status codes.
package errors

import (
	"github.com/gofiber/fiber/v2"

	"booking-platform/apperror"
)

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindValidation, apperror.KindConflict:
		return fiber.StatusBadRequest
	case apperror.KindAuthentication:
		return fiber.StatusUnauthorized
	case apperror.KindAuthorization:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond renders err as the standard error envelope. Untyped errors become
// opaque 500s so internal details never leak to clients.
func Respond(c *fiber.Ctx, err error) error {
	appErr, ok := err.(*apperror.Error)
	if !ok {
		appErr = apperror.Internal("internal error")
	}
	return RaiseError(c, statusFor(appErr.Kind), appErr.Message, appErr.Details)
}

func RaiseError(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaiseBadRequestError(c *fiber.Ctx, data string) error {
	return RaiseError(c, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(c *fiber.Ctx, data string) error {
	return RaiseError(c, fiber.StatusNotFound, "resource not found", data)
}
