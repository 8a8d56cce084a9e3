package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"recipeshare/internal/http/middleware"
	"recipeshare/internal/logging"
	"recipeshare/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// serviceErrors maps service sentinels to their HTTP rendering.
var serviceErrors = []struct {
	err    error
	status int
	code   string
}{
	{service.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrRecipeNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrPlanNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrFileNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrInvalidFolder, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrEmailTaken, fiber.StatusConflict, "EMAIL_TAKEN"},
	{service.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{service.ErrSelfFollow, fiber.StatusBadRequest, "SELF_FOLLOW"},
	{service.ErrTooManyImages, fiber.StatusBadRequest, "TOO_MANY_IMAGES"},
	{service.ErrInvalidFilename, fiber.StatusBadRequest, "INVALID_FILENAME"},
	{service.ErrEmailRequired, fiber.StatusBadRequest, "EMAIL_REQUIRED"},
	{service.ErrReaderNil, fiber.StatusBadRequest, "FILE_REQUIRED"},
	{service.ErrUnsupportedType, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE"},
}

// writeServiceError renders a service error. Anything unrecognised is logged
// with the request id and answered with a generic 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return writeError(c, m.status, m.code, m.err.Error())
		}
	}
	logging.Error(err, map[string]any{
		"msg":        "unhandled_error",
		"request_id": middleware.GetRequestID(c),
		"method":     c.Method(),
		"path":       c.Path(),
	})
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		} else {
			logging.Error(err, map[string]any{
				"msg":        "unhandled_error",
				"request_id": middleware.GetRequestID(c),
				"method":     c.Method(),
				"path":       c.Path(),
			})
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		case fiber.StatusTooManyRequests:
			return writeError(c, status, "TOO_MANY_REQUESTS", "too many requests")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
