package capability

import (
	"strconv"
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/prompt"
)

// Urgency is the recommended urgency for seeking care.
type Urgency string

const (
	UrgencyRoutine     Urgency = "routine"
	UrgencyConsultSoon Urgency = "consult soon"
	UrgencyEmergency   Urgency = "emergency"
)

// ParseUrgency matches model spellings such as "Consult_Soon".
func ParseUrgency(s string) (Urgency, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	switch Urgency(s) {
	case UrgencyRoutine, UrgencyConsultSoon, UrgencyEmergency:
		return Urgency(s), true
	}
	return UrgencyConsultSoon, false
}

// SymptomInput describes symptoms plus optional patient context.
type SymptomInput struct {
	Symptoms     string `json:"symptoms"`
	Age          *int   `json:"age,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Severity     string `json:"severity,omitempty"`
	PhotoDataURI string `json:"photoDataUri,omitempty"`
	Language     string `json:"language,omitempty"`
}

// PossibleCause is one ranked entry of the guidance.
type PossibleCause struct {
	Cause     string  `json:"cause"`
	Urgency   Urgency `json:"urgency"`
	Rationale string  `json:"rationale"`
}

// SymptomOutput is a ranked list of possible causes.
type SymptomOutput struct {
	PossibleCauses []PossibleCause `json:"possibleCauses"`
	Disclaimer     string          `json:"disclaimer"`
}

func (in SymptomInput) RequestedLanguage() string { return in.Language }

func (in SymptomInput) PromptFields() map[string]string {
	age := ""
	if in.Age != nil {
		age = strconv.Itoa(*in.Age)
	}
	return map[string]string{
		"symptoms": in.Symptoms,
		"age":      age,
		"gender":   in.Gender,
		"duration": in.Duration,
		"severity": in.Severity,
	}
}

func (in SymptomInput) PromptImage() (*llm.Image, error) { return optionalImage(in.PhotoDataURI) }

// Symptoms offers possible causes with urgency levels.
var Symptoms = Definition[SymptomInput, SymptomOutput]{
	Name:     "symptom_based_guidance",
	Template: prompt.MustNew("symptom_based_guidance", symptomsPrompt, prompt.WithDisclaimer()),
	Schema: jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"possibleCauses": {
				Type:        jsonschema.Array,
				Description: "A ranked list of possible causes for the symptoms, with associated urgency levels and rationales.",
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"cause": {
							Type:        jsonschema.String,
							Description: "A possible cause for the symptoms.",
						},
						"urgency": {
							Type:        jsonschema.String,
							Enum:        []string{string(UrgencyRoutine), string(UrgencyConsultSoon), string(UrgencyEmergency)},
							Description: "The recommended urgency level for seeking medical attention.",
						},
						"rationale": {
							Type:        jsonschema.String,
							Description: "Explanation of why this cause is possible based on the symptoms.",
						},
					},
					Required: []string{"cause", "urgency", "rationale"},
				},
			},
			"disclaimer": {
				Type:        jsonschema.String,
				Description: "Mandatory disclaimer about the informational nature of the guidance.",
			},
		},
		Required: []string{"possibleCauses", "disclaimer"},
	},
	Safety: llm.SafetyBlockOnlyHigh,
	Coerce: func(o *SymptomOutput) error {
		causes := make([]PossibleCause, 0, len(o.PossibleCauses))
		for _, c := range o.PossibleCauses {
			c.Cause = strings.TrimSpace(c.Cause)
			if c.Cause == "" {
				continue
			}
			c.Urgency, _ = ParseUrgency(string(c.Urgency))
			c.Rationale = strings.TrimSpace(c.Rationale)
			causes = append(causes, c)
		}
		if len(causes) == 0 {
			return partial("symptom_based_guidance", "possibleCauses")
		}
		o.PossibleCauses = causes
		return nil
	},
	Fixed: []FixedField[SymptomOutput]{
		FixedDisclaimer(func(o *SymptomOutput) *string { return &o.Disclaimer }),
	},
}
