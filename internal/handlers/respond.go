package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dailydiet/daily-diet-api/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// fail writes the uniform error payload: {error, message, statusCode}, with
// the error field carrying the HTTP status text.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Error:      http.StatusText(status),
		Message:    message,
		StatusCode: status,
	})
}

// ErrorHandler shapes errors that escape the handlers. Server faults are
// logged and replaced with a generic message so storage internals never
// reach the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "internal server error"
	}

	return fail(c, code, message)
}
