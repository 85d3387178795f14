package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validator tags of a request DTO and folds any
// failure into a ValidationError.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var errs validator.ValidationErrors
		if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
			first := errs[0]
			return NewValidationError("field %s failed on %s", first.Field(), first.Tag())
		}
		return NewValidationError("%s", err.Error())
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}
