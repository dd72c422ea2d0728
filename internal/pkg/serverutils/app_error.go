package serverutils

import "github.com/gofiber/fiber/v2"

// AppError carries an HTTP status and optional extra payload fields
// from services up to the error handler middleware.
type AppError struct {
	Code    int
	Message string
	Extra   map[string]interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NewAppErrorWith(code int, message string, extra map[string]interface{}) *AppError {
	return &AppError{Code: code, Message: message, Extra: extra}
}

func BadRequest(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *AppError {
	return NewAppError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return NewAppError(fiber.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return NewAppError(fiber.StatusConflict, message)
}

func TooManyRequests(message string) *AppError {
	return NewAppError(fiber.StatusTooManyRequests, message)
}

func ServiceUnavailable(message string) *AppError {
	return NewAppError(fiber.StatusServiceUnavailable, message)
}
