package capability

import (
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/media"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/prompt"
)

// ChatInput is a health-related question, optionally with a photo.
type ChatInput struct {
	Question     string `json:"question"`
	PhotoDataURI string `json:"photoDataUri,omitempty"`
	Language     string `json:"language,omitempty"`
}

// ChatOutput is an empathetic answer plus the canonical disclaimer.
type ChatOutput struct {
	Answer     string `json:"answer"`
	Disclaimer string `json:"disclaimer"`
}

func (in ChatInput) RequestedLanguage() string { return in.Language }

func (in ChatInput) PromptFields() map[string]string {
	return map[string]string{"question": in.Question}
}

func (in ChatInput) PromptImage() (*llm.Image, error) { return optionalImage(in.PhotoDataURI) }

// Chat answers health questions with structured, empathetic explanations.
var Chat = Definition[ChatInput, ChatOutput]{
	Name:     "medical_ai_chat",
	Template: prompt.MustNew("medical_ai_chat", chatPrompt, prompt.WithDisclaimer()),
	Schema: jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"answer": {
				Type:        jsonschema.String,
				Description: "The AI's empathetic and clear answer to the user's question.",
			},
			"disclaimer": {
				Type:        jsonschema.String,
				Description: "Mandatory disclaimer about the AI providing educational information only.",
			},
		},
		Required: []string{"answer", "disclaimer"},
	},
	Coerce: func(o *ChatOutput) error {
		o.Answer = strings.TrimSpace(o.Answer)
		if o.Answer == "" {
			return partial("medical_ai_chat", "answer")
		}
		return nil
	},
	Fixed: []FixedField[ChatOutput]{
		FixedDisclaimer(func(o *ChatOutput) *string { return &o.Disclaimer }),
	},
}

func optionalImage(dataURI string) (*llm.Image, error) {
	if strings.TrimSpace(dataURI) == "" {
		return nil, nil
	}
	return requiredImage(dataURI)
}

func requiredImage(dataURI string) (*llm.Image, error) {
	d, err := media.Parse(dataURI)
	if err != nil || !d.IsImage() {
		return nil, ErrInvalidImage
	}
	return &llm.Image{MIMEType: d.MIMEType, Data: d.Data}, nil
}
