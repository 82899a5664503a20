package schema

import (
	"fmt"
	"strings"
)

// Validation error codes (E200-E299).
const (
	// ErrSchemaCompile indicates the schema source itself failed to
	// compile. This is a programming error in a registry entry, caught at
	// startup, never at render time.
	ErrSchemaCompile = "E200"

	// ErrPropsEncode indicates the props map could not be encoded for
	// unification (non-JSON-shaped value).
	ErrPropsEncode = "E201"

	// ErrFieldInvalid indicates a declared field violated its constraint
	// (wrong type, out of enumeration, conditional rule broken).
	ErrFieldInvalid = "E210"

	// ErrFieldMissing indicates a required field is absent (the unified
	// value stayed non-concrete at that path).
	ErrFieldMissing = "E211"
)

// ValidationError is one structured props-validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// FormatErrors renders a validation error list as one human-readable
// string, one error per line. Used by placeholders in dev mode and by the
// CLI validate command.
func FormatErrors(errs []ValidationError) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}
