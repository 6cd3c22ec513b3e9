package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Error codes understood by the embeddable widget
const (
	CodeMissingFields        = "missing_fields"
	CodeUnknownEmailProvider = "unknown_email_provider"
	CodeRateLimited          = "rate_limited"
)

// APIError is the error envelope returned to widget clients
type APIError struct {
	Code     string                 `json:"code"`
	Detail   string                 `json:"detail"`
	Metadata map[string]interface{} `json:"metadata"`
}

// ErrorResponse writes a standardized error response
func ErrorResponse(c *fiber.Ctx, status int, code, detail string, metadata map[string]interface{}) error {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return c.Status(status).JSON(APIError{
		Code:     code,
		Detail:   detail,
		Metadata: metadata,
	})
}

// SuccessResponse is the body of side-effect free acknowledgements
func SuccessResponse() fiber.Map {
	return fiber.Map{"success": true}
}
