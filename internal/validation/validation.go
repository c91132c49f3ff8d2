// Package validation binds request data and validates it.
//
// Rules live in `validate` struct tags checked by go-playground/validator.
// Failures are turned into a 400 errs.HTTPError listing every offending
// field by its JSON name.
package validation

import (
	"fmt"
	"reflect"

	"github.com/deppfellow/acervo-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	validationFailedMessage = "Falha na validação"
	invalidBodyMessage      = "Corpo da requisição inválido"
)

// Validatable is implemented by every request payload.
type Validatable interface {
	Validate() error
}

// Messenger lets a payload replace the generic validation message.
type Messenger interface {
	ValidationMessage() string
}

// BindAndValidate fills payload from the path, query and body, then runs
// its Validate method. payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	// Malformed JSON, wrong value types and unsupported media types all
	// end up here. The decoder text names Go types, so it is only logged.
	if err := c.Bind(payload); err != nil {
		return errors.WithMessage(errs.NewBadRequestError(invalidBodyMessage, true, nil, nil), err.Error())
	}

	if err := payload.Validate(); err != nil {
		fieldErrors, ok := extractValidationError(err)
		if !ok {
			return errs.ValidationError(err)
		}

		message := validationFailedMessage
		if m, ok := payload.(Messenger); ok {
			message = m.ValidationMessage()
		}

		return errs.NewBadRequestError(message, true, nil, fieldErrors)
	}

	return nil
}

// extractValidationError turns validator errors into field errors. It
// reports false for any other kind of error.
func extractValidationError(err error) ([]errs.FieldError, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: e.Field(),
			Error: describe(e),
		})
	}

	return fieldErrors, true
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "é obrigatório"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("deve ter pelo menos %s caracteres", e.Param())
		}
		return fmt.Sprintf("deve ser no mínimo %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("deve ter no máximo %s caracteres", e.Param())
		}
		return fmt.Sprintf("deve ser no máximo %s", e.Param())
	case "oneof":
		return fmt.Sprintf("deve ser um de: %s", e.Param())
	case "datetime":
		return fmt.Sprintf("deve seguir o formato %s", e.Param())
	default:
		if e.Param() != "" {
			return fmt.Sprintf("%s:%s", e.Tag(), e.Param())
		}
		return e.Tag()
	}
}
