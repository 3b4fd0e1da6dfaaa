package capability

import (
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/prompt"
)

// ConcernLevel grades the findings of an image analysis.
type ConcernLevel string

const (
	ConcernLow      ConcernLevel = "low"
	ConcernModerate ConcernLevel = "moderate"
	ConcernHigh     ConcernLevel = "high"
)

// ParseConcernLevel falls back to moderate for anything it does not recognise.
func ParseConcernLevel(s string) (ConcernLevel, bool) {
	switch c := ConcernLevel(strings.ToLower(strings.TrimSpace(s))); c {
	case ConcernLow, ConcernModerate, ConcernHigh:
		return c, true
	}
	return ConcernModerate, false
}

// XRayInput is an X-ray image as a base64 data URI.
type XRayInput struct {
	PhotoDataURI string `json:"photoDataUri"`
	Language     string `json:"language,omitempty"`
}

// XRayOutput is a simplified explanation of the image.
type XRayOutput struct {
	Explanation  string       `json:"explanation"`
	ConcernLevel ConcernLevel `json:"concernLevel"`
	Disclaimer   string       `json:"disclaimer"`
}

func (in XRayInput) RequestedLanguage() string { return in.Language }

func (in XRayInput) PromptFields() map[string]string { return map[string]string{} }

func (in XRayInput) PromptImage() (*llm.Image, error) { return requiredImage(in.PhotoDataURI) }

// XRay explains X-ray images for laypeople.
var XRay = Definition[XRayInput, XRayOutput]{
	Name:     "xray_image_analysis",
	Template: prompt.MustNew("xray_image_analysis", xrayPrompt, prompt.WithImage(), prompt.WithDisclaimer()),
	Schema: jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"explanation": {
				Type:        jsonschema.String,
				Description: "A simplified explanation of the X-ray image.",
			},
			"concernLevel": {
				Type:        jsonschema.String,
				Enum:        []string{string(ConcernLow), string(ConcernModerate), string(ConcernHigh)},
				Description: "The level of concern associated with the findings.",
			},
			"disclaimer": {
				Type:        jsonschema.String,
				Description: "Mandatory disclaimer regarding the AI analysis.",
			},
		},
		Required: []string{"explanation", "concernLevel", "disclaimer"},
	},
	Coerce: func(o *XRayOutput) error {
		o.Explanation = strings.TrimSpace(o.Explanation)
		if o.Explanation == "" {
			return partial("xray_image_analysis", "explanation")
		}
		o.ConcernLevel, _ = ParseConcernLevel(string(o.ConcernLevel))
		return nil
	},
	Fixed: []FixedField[XRayOutput]{
		FixedDisclaimer(func(o *XRayOutput) *string { return &o.Disclaimer }),
	},
}
