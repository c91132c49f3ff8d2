// Package model holds the entities stored in PostgreSQL, the request payloads
// that create or change them and the response bodies the API writes.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every request type. It reports fields by their JSON
// name so clients see "nome_item" rather than "Name".
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// pick returns incoming unless it is absent or empty.
func pick(incoming *string, stored string) string {
	if incoming != nil && *incoming != "" {
		return *incoming
	}
	return stored
}

// pickNullable is pick for nullable columns.
func pickNullable(incoming, stored *string) *string {
	if incoming != nil && *incoming != "" {
		return incoming
	}
	return stored
}

// nullIfEmpty maps an absent or empty value onto SQL NULL.
func nullIfEmpty(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}

// MessageResponse is the body of operations that only report an outcome.
type MessageResponse struct {
	Message string `json:"mensagem"`
}
