package capability

import (
	"errors"
	"fmt"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
)

var ErrInvalidImage = errors.New("invalid image payload")

// PartialOutputError reports a structurally valid reply that misses required
// content. It counts as a failed model call.
type PartialOutputError struct {
	Capability string
	Field      string
}

func (e *PartialOutputError) Error() string {
	return fmt.Sprintf("%s: model reply has no usable %q", e.Capability, e.Field)
}

func (e *PartialOutputError) Unwrap() error { return llm.ErrNoOutput }

func partial(capability, field string) error {
	return &PartialOutputError{Capability: capability, Field: field}
}
