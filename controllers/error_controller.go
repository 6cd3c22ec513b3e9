// controllers/error_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sniperlink/utils"
)

// ErrorHandler is the app-wide fiber error handler. Fiber errors keep their
// status; anything else is reported and answered with an empty 500 so no
// internal detail reaches the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.ErrorResponse(c, fe.Code, "request_error", fe.Message, nil)
	}

	utils.LogError("internal_fault", err, map[string]interface{}{
		"method": c.Method(),
		"path":   c.Path(),
	})

	c.Response().ResetBody()
	c.Status(fiber.StatusInternalServerError)
	return nil
}

// NotFound answers requests that matched no route
func NotFound(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, fiber.StatusNotFound, "not_found",
		"The requested resource was not found", nil)
}
