package handlers

import (
	"errors"
	"log/slog"

	"outfitrental/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// Envelope status values.
const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

// Guard wraps a handler that needs an authenticated caller. A nil Guard
// leaves routes open.
type Guard fiber.Handler

func guarded(guard Guard, h fiber.Handler) []fiber.Handler {
	if guard == nil {
		return []fiber.Handler{h}
	}
	return []fiber.Handler{fiber.Handler(guard), h}
}

// resourceMessages are the fixed client-facing messages of one resource.
type resourceMessages struct {
	notFound string
	invalid  string
}

func success(c *fiber.Ctx, status int, data fiber.Map) error {
	return c.Status(status).JSON(fiber.Map{
		"status": statusSuccess,
		"data":   data,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  statusFail,
		"message": message,
	})
}

// respondError maps a service error onto the JSON envelope. Store failures
// are logged with their cause but never echoed to the client.
func respondError(c *fiber.Ctx, err error, msgs resourceMessages) error {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  statusFail,
			"message": msgs.invalid,
			"data":    vErr.FieldErrors,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		return fail(c, fiber.StatusNotFound, msgs.notFound)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return fail(c, fiber.StatusNotFound, "Invalid information")
	case errors.Is(err, apperrors.ErrConflict):
		return fail(c, fiber.StatusConflict, "Email is already registered")
	}

	slog.ErrorContext(c.UserContext(), "request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  statusError,
		"message": "Internal server error",
	})
}

// ErrorHandler renders errors that escape the handlers, including Fiber's
// own routing errors, as JSON envelopes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code == fiber.StatusNotFound {
			return fail(c, fiber.StatusNotFound, "Not found")
		}
		if fiberErr.Code < fiber.StatusInternalServerError {
			return fail(c, fiberErr.Code, fiberErr.Message)
		}
	}

	slog.ErrorContext(c.UserContext(), "unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  statusError,
		"message": "Internal server error",
	})
}

// NotFound is the catch-all handler for unmatched routes.
func NotFound(c *fiber.Ctx) error {
	return fail(c, fiber.StatusNotFound, "Not found")
}
