package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// Model is a minimal abstraction for generative models used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type Model interface {
	// Generate sends one prompt (plus optional image) and returns the model's
	// structured reply as a raw JSON object.
	Generate(ctx context.Context, req Request) (json.RawMessage, error)
}

// Image is an inline image payload sent together with the prompt.
type Image struct {
	MIMEType string
	Data     []byte
}

// SafetyThreshold relaxes or tightens the provider's dangerous-content filter.
// Empty means provider default.
type SafetyThreshold string

const (
	SafetyDefault       SafetyThreshold = ""
	SafetyBlockOnlyHigh SafetyThreshold = "block_only_high"
	SafetyBlockMedium   SafetyThreshold = "block_medium_and_above"
)

// Request is one structured generation call.
type Request struct {
	// Name identifies the calling capability; providers use it as schema name.
	Name   string
	Prompt string
	Image  *Image
	// Schema describes the JSON object the model must return.
	Schema jsonschema.Definition
	Safety SafetyThreshold
}

// ErrNoOutput is reported when the provider answered but produced nothing usable.
var ErrNoOutput = errors.New("model returned no usable output")

// ModelError wraps every failure of the upstream model service.
type ModelError struct {
	Provider string
	Err      error
}

func (e *ModelError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("model error: %v", e.Err)
	}
	return fmt.Sprintf("%s model error: %v", e.Provider, e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

// Fail builds a ModelError for the given provider.
func Fail(provider string, err error) error {
	if err == nil {
		return nil
	}
	var me *ModelError
	if errors.As(err, &me) {
		return err
	}
	return &ModelError{Provider: provider, Err: err}
}

// NoOutput builds a ModelError for an empty or unusable reply.
func NoOutput(provider, reason string) error {
	if reason == "" {
		return &ModelError{Provider: provider, Err: ErrNoOutput}
	}
	return &ModelError{Provider: provider, Err: fmt.Errorf("%w: %s", ErrNoOutput, reason)}
}

// IsModelError reports whether err came from the model service.
func IsModelError(err error) bool {
	var me *ModelError
	return errors.As(err, &me)
}
