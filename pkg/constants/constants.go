package constants

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance. DTOs call Validate.Struct in
// their Ok methods so every rule tag is interpreted the same way everywhere.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Deliberately permissive email check: the address must contain "@" and a
	// dot. Matches the historical behavior of the forms; do not tighten.
	if err := v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return strings.Contains(value, "@") && strings.Contains(value, ".")
	}); err != nil {
		panic(err)
	}

	// required with whitespace-only values rejected.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}

	return v
}
