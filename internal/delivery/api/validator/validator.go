// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "directorio/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate runs the struct tags and returns a ValidationError with one message per failing field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return domainerrors.NewValidationError(messages...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", fe.Field())
	case "email":
		return fmt.Sprintf("%s debe ser un email válido", fe.Field())
	case "min":
		return fmt.Sprintf("%s debe ser como mínimo %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s debe ser como máximo %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual que %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual que %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s no es válido (%s)", fe.Field(), fe.Tag())
	}
}
