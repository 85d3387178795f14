package utils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error taxonomy shared by all services. Controllers map these onto HTTP
// statuses through HandleServiceError; everything unrecognized becomes 500.

// ValidationError marks missing or malformed required input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// RenderError marks an unparsable template or an internal renderer failure.
// The submission pipeline downgrades it to a logged warning.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "render failed: " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

func NewRenderError(err error) error {
	return &RenderError{Err: err}
}

// StorageError marks a file I/O failure. Fatal on upload paths, tolerated
// on delete paths.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}
func (e *StorageError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// HandleServiceError translates a service error into the HTTP response.
func HandleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case IsValidation(err):
		return HandleError(c, fiber.StatusBadRequest, err.Error())
	case IsNotFound(err):
		return HandleError(c, fiber.StatusNotFound, err.Error())
	default:
		return HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}
