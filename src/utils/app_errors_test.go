package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("field %q is missing", "email")

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, `field "email" is missing`, err.Error())
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Form")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "Form not found", err.Error())
}

func TestRenderErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("xref table broken")
	err := NewRenderError(cause)

	assert.ErrorContains(t, err, "render failed")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestStorageErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := &StorageError{Op: "put", Path: "/templates/a.pdf", Err: cause}

	assert.ErrorContains(t, err, "storage put /templates/a.pdf")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	err := fmt.Errorf("loading template: %w", NewNotFoundError("Template"))
	assert.True(t, IsNotFound(err))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}

	assert.NoError(t, ValidateStruct(&payload{Name: "ok"}))

	err := ValidateStruct(&payload{})
	assert.Error(t, err)
	assert.True(t, IsValidation(err))
}
