// controllers/ping_controller.go
package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sniperlink/utils"
)

const EventButtonClicked = "button_clicked"

// PingRequest is sent by the widget when the user interacts with it
type PingRequest struct {
	Type string `json:"type"`
}

// Ping records widget events. Unknown event types are reported as faults.
func Ping(c *fiber.Ctx) error {
	var req PingRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("parse /v1/ping body: %w", err)
	}

	switch req.Type {
	case EventButtonClicked:
		utils.LogEvent(EventButtonClicked, map[string]interface{}{
			"origin":     c.Get(fiber.HeaderOrigin),
			"user_agent": c.Get(fiber.HeaderUserAgent),
		})
		return c.JSON(utils.SuccessResponse())
	default:
		return fmt.Errorf("unknown type %q in /v1/ping", req.Type)
	}
}
