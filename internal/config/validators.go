package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerExclusive adds a custom validator ensuring two fields are mutually exclusive.
// It registers both the validation logic and a human-readable error message.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive with {1}",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive returns false if both the field and the named sibling are set.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	other := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !other.IsValid() {
		return true
	}

	return field.IsZero() || other.IsZero()
}
