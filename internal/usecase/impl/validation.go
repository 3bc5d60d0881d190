package impl

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"

	"github.com/go-playground/validator/v10"
)

// newValidator reports fields by their form names so messages match the inputs.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(field.Name)
		}

		return name
	})

	return v
}

// validateInput converts validator failures into ErrValidationFailed with
// one "field: reason" entry per failing field.
func validateInput(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	validationErrors, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "validate input")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldErr.Field()+": "+reason(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func reason(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required for this category"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of " + fieldErr.Param()
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "lte":
		return "must be at most " + fieldErr.Param()
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	default:
		return "is invalid"
	}
}
