package apierr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Kind classifies every failure the API can surface. Handlers never
// branch on raw error strings; they render the normalized form.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindInternal     Kind = "internal"
)

// Error is the single normalized error shape. Field is set for
// validation failures so clients can attach the message to an input.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Status maps the kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusUnprocessableEntity
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation builds a field-level validation error.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Message: message, Field: field}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// From normalizes any error into *Error. Lookup order: an already
// normalized error is returned as-is, then known sentinel errors
// (gorm not-found / duplicate key), then fiber errors by status,
// then the generic internal fallback carrying the original message.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Message: "record not found"}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &Error{Kind: KindConflict, Message: "record already exists"}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return &Error{Kind: KindNotFound, Message: fiberErr.Message}
		case fiber.StatusUnauthorized:
			return &Error{Kind: KindUnauthorized, Message: fiberErr.Message}
		case fiber.StatusForbidden:
			return &Error{Kind: KindForbidden, Message: fiberErr.Message}
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			return &Error{Kind: KindValidation, Message: fiberErr.Message}
		case fiber.StatusConflict:
			return &Error{Kind: KindConflict, Message: fiberErr.Message}
		}
	}

	return &Error{Kind: KindInternal, Message: err.Error()}
}
