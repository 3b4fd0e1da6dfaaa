package capability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/prompt"
)

// Input is implemented by every capability request.
type Input interface {
	// RequestedLanguage is the raw language, possibly empty.
	RequestedLanguage() string
	// PromptFields maps template placeholders to values.
	PromptFields() map[string]string
	// PromptImage returns the image that travels with the prompt, if any.
	PromptImage() (*llm.Image, error)
}

// FixedField is an output field whose value is never taken from the model.
type FixedField[Out any] struct {
	Name  string
	Apply func(*Out)
}

// Definition binds one capability's contracts, template and post-processing.
type Definition[In Input, Out any] struct {
	Name     string
	Template *prompt.Template
	Schema   jsonschema.Definition
	Safety   llm.SafetyThreshold
	// Coerce validates and repairs the decoded reply in place.
	Coerce func(*Out) error
	// Fixed fields are reasserted after Coerce.
	Fixed []FixedField[Out]
}

// Run executes a definition against the model:
// normalize language, render, invoke, decode, coerce, reassert fixed fields.
func Run[In Input, Out any](ctx context.Context, model llm.Model, def Definition[In, Out], in In) (Out, error) {
	var zero Out
	language := prompt.NormalizeLanguage(in.RequestedLanguage())

	img, err := in.PromptImage()
	if err != nil {
		return zero, err
	}
	binding := prompt.Binding{Language: language, Fields: in.PromptFields()}
	if img != nil {
		binding.ImageMIME = img.MIMEType
	}
	text, err := def.Template.Render(binding)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", def.Name, err)
	}

	raw, err := model.Generate(ctx, llm.Request{
		Name:   def.Name,
		Prompt: text,
		Image:  img,
		Schema: def.Schema,
		Safety: def.Safety,
	})
	if err != nil {
		return zero, llm.Fail("", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return zero, llm.NoOutput("", def.Name+": empty reply")
	}

	var out Out
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, llm.Fail("", fmt.Errorf("%s: decode reply: %w", def.Name, err))
	}
	if def.Coerce != nil {
		if err := def.Coerce(&out); err != nil {
			return zero, err
		}
	}
	for _, f := range def.Fixed {
		f.Apply(&out)
	}
	return out, nil
}

// FixedDisclaimer overwrites a disclaimer field with the canonical text.
func FixedDisclaimer[Out any](field func(*Out) *string) FixedField[Out] {
	return FixedField[Out]{
		Name: "disclaimer",
		Apply: func(o *Out) {
			*field(o) = prompt.Disclaimer
		},
	}
}
