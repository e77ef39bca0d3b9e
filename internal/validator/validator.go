package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return boundMessage("at least", err)
	case "max":
		return boundMessage("at most", err)
	case "unique":
		return "must not contain duplicates"
	default:
		return "is invalid"
	}
}

func boundMessage(bound string, err validator.FieldError) string {
	switch err.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain %s %s items", bound, err.Param())
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters long", bound, err.Param())
	default:
		return fmt.Sprintf("must be %s %s", bound, err.Param())
	}
}
