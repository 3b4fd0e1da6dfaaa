package capability

import (
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/prompt"
)

// ReportInput is the text of a medical report.
type ReportInput struct {
	ReportText string `json:"reportText"`
	Language   string `json:"language,omitempty"`
}

// ReportOutput is a layperson explanation of the report. No disclaimer is
// forced here; the prompt asks the model to include a reminder.
type ReportOutput struct {
	SimplifiedExplanation string `json:"simplifiedExplanation"`
}

func (in ReportInput) RequestedLanguage() string { return in.Language }

func (in ReportInput) PromptFields() map[string]string {
	return map[string]string{"reportText": in.ReportText}
}

func (in ReportInput) PromptImage() (*llm.Image, error) { return nil, nil }

// Report interprets medical reports in non-technical terms.
var Report = Definition[ReportInput, ReportOutput]{
	Name:     "medical_report_interpretation",
	Template: prompt.MustNew("medical_report_interpretation", reportPrompt),
	Schema: jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"simplifiedExplanation": {
				Type:        jsonschema.String,
				Description: "A simplified, non-technical explanation of the medical report content.",
			},
		},
		Required: []string{"simplifiedExplanation"},
	},
	Coerce: func(o *ReportOutput) error {
		o.SimplifiedExplanation = strings.TrimSpace(o.SimplifiedExplanation)
		if o.SimplifiedExplanation == "" {
			return partial("medical_report_interpretation", "simplifiedExplanation")
		}
		return nil
	},
}
