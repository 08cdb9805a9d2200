// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator that reports json field names.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate returns ErrValidationFailed listing every failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

func describe(fe playground.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return field + " must be one of [" + fe.Param() + "]"
	case "min", "gte":
		return field + " must be at least " + fe.Param()
	case "max", "lte":
		return field + " must be at most " + fe.Param()
	default:
		return field + " failed " + fe.Tag()
	}
}
