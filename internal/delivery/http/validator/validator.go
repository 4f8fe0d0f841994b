// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"
	"reflect"
	"strings"

	"storefront/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validator validates bound request bodies.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})
	if err := entity.RegisterRoleValidation(v); err != nil {
		return nil, err
	}

	return &Validator{validate: v}, nil
}

// Validate implements echo.Validator. Failures become a 400 with one message per field.
func (cv *Validator) Validate(i any) error {
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
		messages = append(messages, message(fe))
	}

	return &echo.HTTPError{Code: http.StatusBadRequest, Message: messages}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " should not be empty"
	case "email":
		return fe.Field() + " must be an email"
	case "gt", "min":
		return fe.Field() + " must not be less than " + fe.Param()
	case entity.RoleTag:
		return fe.Field() + " must be one of the following values: CLIENT, SHOPPER"
	default:
		return fe.Field() + " is invalid"
	}
}
