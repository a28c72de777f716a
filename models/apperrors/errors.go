package apperrors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Error is a business-rule violation carrying the HTTP status the boundary
// should answer with. Anything that is not an *Error maps to 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewBadRequest(message string) error {
	return &Error{Status: fiber.StatusBadRequest, Message: message}
}

func NewNotFound(message string) error {
	return &Error{Status: fiber.StatusNotFound, Message: message}
}

func NewUnauthorized(message string) error {
	return &Error{Status: fiber.StatusUnauthorized, Message: message}
}

func NewForbidden(message string) error {
	return &Error{Status: fiber.StatusForbidden, Message: message}
}

func NewConflict(message string) error {
	return &Error{Status: fiber.StatusConflict, Message: message}
}

// StatusOf resolves err to the response status code and user-facing message.
// Wrapped causes are unwrapped; unexpected errors surface a generic message
// so internals never leak to the client.
func StatusOf(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	return fiber.StatusInternalServerError, "internal server error"
}

func IsStatus(err error, status int) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status == status
	}
	return false
}
