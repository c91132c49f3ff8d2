package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "campo": "nome_item", "erro": "é obrigatório" }
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string `json:"campo"`

	// Error is the human-readable error message.
	Error string `json:"erro"`
}

// HTTPError is the main custom error type for API responses.
//
// Only Message and Errors are serialized. Code and Status drive logging and
// the response status line; Override marks messages that are safe to show
// as-is even when they come from lower layers.
type HTTPError struct {
	Code     string `json:"-"`
	Message  string `json:"mensagem"`
	Status   int    `json:"-"`
	Override bool   `json:"-"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"campos,omitempty"`
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
