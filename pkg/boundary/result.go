package boundary

import (
	"encoding/json"
	"fmt"
)

// Messages returned to callers when validation fails.
const (
	MsgInvalidImage     = "Invalid image format."
	MsgReportTooShort   = "Report text is too short."
	MsgInvalidInput     = "Invalid input."
	MsgSymptomsTooShort = "Please describe your symptoms in more detail."
	MsgInvalidAge       = "Age must be a non-negative whole number."
)

// ValidationError is a failed boundary check. It never leaves this package as
// an error: the entry points turn it into a fallback value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// Result is either a capability's success shape or {"error": message}.
type Result[T any] struct {
	Value T
	Err   string
}

// Failed reports whether the result carries a validation message.
func (r Result[T]) Failed() bool { return r.Err != "" }

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Err})
	}
	return json.Marshal(r.Value)
}

func ok[T any](v T) Result[T] { return Result[T]{Value: v} }

func failed[T any](ve *ValidationError) Result[T] { return Result[T]{Err: ve.Message} }
