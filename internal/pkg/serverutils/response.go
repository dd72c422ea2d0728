package serverutils

import "github.com/gofiber/fiber/v2"

// SuccessResponse is the standard envelope for 2xx payloads.
func SuccessResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    200,
		"message": message,
		"data":    data,
	}
}

// ErrorResponse is the standard envelope for error payloads.
func ErrorResponse(code int, message string) fiber.Map {
	return fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
	}
}

// ErrorResponseWith extends the error envelope with extra fields, e.g.
// quota responses that carry plan and limit alongside the message.
func ErrorResponseWith(code int, message string, extra map[string]interface{}) fiber.Map {
	resp := ErrorResponse(code, message)
	for k, v := range extra {
		resp[k] = v
	}
	return resp
}
