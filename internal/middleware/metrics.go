package middleware

import (
	"errors"

	"outfitrental/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics counts every request by method, matched route and final status.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}
		m.ObserveRequest(c.Method(), c.Route().Path, status)
		return err
	}
}
