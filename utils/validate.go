package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// field names in validation errors follow the yaml tags
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})

	return v
}

// Validate checks the `validate` tags of a struct
func Validate(object any) error {
	err := validate.Struct(object)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	missing := []string{}
	invalid := []string{}
	for _, fieldErr := range fieldErrs {
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Namespace())
			continue
		}
		invalid = append(invalid, fmt.Sprintf("%s failed on %s", fieldErr.Namespace(), fieldErr.Tag()))
	}

	if len(invalid) == 0 {
		return fmt.Errorf("missing field(s) %s", strings.Join(missing, ", "))
	}
	if len(missing) == 0 {
		return fmt.Errorf("invalid field(s) %s", strings.Join(invalid, ", "))
	}
	return fmt.Errorf("missing field(s) %s; invalid field(s) %s", strings.Join(missing, ", "), strings.Join(invalid, ", "))
}
