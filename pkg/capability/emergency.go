package capability

import (
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/prompt"
)

// DefaultEmergencyAdvice is used when the model flags an emergency but gives no advice.
const DefaultEmergencyAdvice = "Your description may indicate a medical emergency. Please call your local emergency number or go to the nearest emergency department immediately."

// EmergencyInput is free text describing the user's situation.
type EmergencyInput struct {
	UserInput string `json:"userInput"`
	Language  string `json:"language,omitempty"`
}

// EmergencyOutput says whether to seek emergency care now.
type EmergencyOutput struct {
	IsEmergency     bool   `json:"isEmergency"`
	EmergencyAdvice string `json:"emergencyAdvice"`
}

func (in EmergencyInput) RequestedLanguage() string { return in.Language }

func (in EmergencyInput) PromptFields() map[string]string {
	return map[string]string{"userInput": in.UserInput}
}

func (in EmergencyInput) PromptImage() (*llm.Image, error) { return nil, nil }

// Emergency flags life-threatening situations. The trigger symptoms live in
// the prompt only; there is no local keyword scan.
var Emergency = Definition[EmergencyInput, EmergencyOutput]{
	Name:     "emergency_detection",
	Template: prompt.MustNew("emergency_detection", emergencyPrompt, prompt.WithDisclaimer()),
	Schema: jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"isEmergency": {
				Type:        jsonschema.Boolean,
				Description: "Whether the user input suggests an emergency situation.",
			},
			"emergencyAdvice": {
				Type:        jsonschema.String,
				Description: "Advice to seek emergency medical care if an emergency is detected.",
			},
		},
		Required: []string{"isEmergency", "emergencyAdvice"},
	},
	Coerce: func(o *EmergencyOutput) error {
		o.EmergencyAdvice = strings.TrimSpace(o.EmergencyAdvice)
		switch {
		case !o.IsEmergency:
			o.EmergencyAdvice = ""
		case o.EmergencyAdvice == "":
			o.EmergencyAdvice = DefaultEmergencyAdvice
		}
		return nil
	},
}
