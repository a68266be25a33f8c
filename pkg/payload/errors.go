package payload

import (
	"fmt"
	"strings"
)

// MalformedPayloadError indicates that extraction, repair, and parsing could
// not produce valid structured data from a completion after every additive
// repair attempt. The caller is responsible for persisting the raw and
// cleaned text before surfacing it.
type MalformedPayloadError struct {
	Attempts int   // number of candidate payloads tried
	Cause    error // last parse error observed
}

// Error implements the error interface.
func (e *MalformedPayloadError) Error() (msg string) {
	msg = fmt.Sprintf("malformed payload: no candidate parsed after %d attempts and repair fallbacks: %v", e.Attempts, e.Cause)
	return msg
}

// Unwrap returns the last underlying parse error.
func (e *MalformedPayloadError) Unwrap() (err error) {
	err = e.Cause
	return err
}

// SchemaViolationError indicates a document parsed successfully but does not
// satisfy the expected top-level shape.
type SchemaViolationError struct {
	MissingKeys []string
	WrongTypes  []string
}

// Error implements the error interface.
func (e *SchemaViolationError) Error() (msg string) {
	var parts []string
	if len(e.MissingKeys) > 0 {
		parts = append(parts, fmt.Sprintf("missing required keys: %s", strings.Join(e.MissingKeys, ", ")))
	}
	if len(e.WrongTypes) > 0 {
		parts = append(parts, fmt.Sprintf("wrong value types: %s", strings.Join(e.WrongTypes, ", ")))
	}
	msg = "schema violation: " + strings.Join(parts, "; ")
	return msg
}
