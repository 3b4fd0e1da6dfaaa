package boundary

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/capability"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/media"
)

const (
	minReportChars   = 10
	minSymptomsChars = 5
)

// XRayForm is the raw input of the image analysis entry point.
type XRayForm struct {
	PhotoDataURI string `json:"photoDataUri"`
	Language     string `json:"language,omitempty"`
}

// EmergencyForm is the raw input of the emergency detection entry point.
type EmergencyForm struct {
	UserInput string `json:"userInput"`
	Language  string `json:"language,omitempty"`
}

// ReportForm is the raw input of the report interpretation entry point.
type ReportForm struct {
	ReportText string `json:"reportText"`
	Language   string `json:"language,omitempty"`
}

// ChatForm is the raw input of the chat entry point.
type ChatForm struct {
	Question     string `json:"question"`
	PhotoDataURI string `json:"photoDataUri,omitempty"`
	Language     string `json:"language,omitempty"`
}

// SymptomForm is the raw input of the symptom checker. Age arrives from HTML
// forms as a string and from API clients as a number.
type SymptomForm struct {
	Symptoms     string          `json:"symptoms"`
	PhotoDataURI string          `json:"photoDataUri,omitempty"`
	Age          json.RawMessage `json:"age,omitempty"`
	Gender       string          `json:"gender,omitempty"`
	Duration     string          `json:"duration,omitempty"`
	Severity     string          `json:"severity,omitempty"`
	Language     string          `json:"language,omitempty"`
}

// ValidateXRay requires a base64 image data URI.
func ValidateXRay(f XRayForm) (capability.XRayInput, *ValidationError) {
	uri := strings.TrimSpace(f.PhotoDataURI)
	if !strings.HasPrefix(uri, "data:image/") || !isImageDataURI(uri) {
		return capability.XRayInput{}, invalid("photoDataUri", MsgInvalidImage)
	}
	return capability.XRayInput{PhotoDataURI: uri, Language: strings.TrimSpace(f.Language)}, nil
}

// ValidateEmergency requires non-blank text.
func ValidateEmergency(f EmergencyForm) (capability.EmergencyInput, *ValidationError) {
	text := strings.TrimSpace(f.UserInput)
	if text == "" {
		return capability.EmergencyInput{}, invalid("userInput", MsgInvalidInput)
	}
	return capability.EmergencyInput{UserInput: text, Language: strings.TrimSpace(f.Language)}, nil
}

// ValidateReport requires at least ten characters of report text.
func ValidateReport(f ReportForm) (capability.ReportInput, *ValidationError) {
	text := strings.TrimSpace(f.ReportText)
	if utf8.RuneCountInString(text) < minReportChars {
		return capability.ReportInput{}, invalid("reportText", MsgReportTooShort)
	}
	return capability.ReportInput{ReportText: text, Language: strings.TrimSpace(f.Language)}, nil
}

// ValidateChat requires a question; an attached photo must be an image data URI.
func ValidateChat(f ChatForm) (capability.ChatInput, *ValidationError) {
	q := strings.TrimSpace(f.Question)
	if q == "" {
		return capability.ChatInput{}, invalid("question", MsgInvalidInput)
	}
	photo := strings.TrimSpace(f.PhotoDataURI)
	if photo != "" && !isImageDataURI(photo) {
		return capability.ChatInput{}, invalid("photoDataUri", MsgInvalidImage)
	}
	return capability.ChatInput{Question: q, PhotoDataURI: photo, Language: strings.TrimSpace(f.Language)}, nil
}

// ValidateSymptoms requires a symptom description and a numeric age when given.
func ValidateSymptoms(f SymptomForm) (capability.SymptomInput, *ValidationError) {
	symptoms := strings.TrimSpace(f.Symptoms)
	if utf8.RuneCountInString(symptoms) < minSymptomsChars {
		return capability.SymptomInput{}, invalid("symptoms", MsgSymptomsTooShort)
	}
	age, ve := coerceAge(f.Age)
	if ve != nil {
		return capability.SymptomInput{}, ve
	}
	photo := strings.TrimSpace(f.PhotoDataURI)
	if photo != "" && !isImageDataURI(photo) {
		return capability.SymptomInput{}, invalid("photoDataUri", MsgInvalidImage)
	}
	return capability.SymptomInput{
		Symptoms:     symptoms,
		Age:          age,
		Gender:       strings.TrimSpace(f.Gender),
		Duration:     strings.TrimSpace(f.Duration),
		Severity:     strings.TrimSpace(f.Severity),
		PhotoDataURI: photo,
		Language:     strings.TrimSpace(f.Language),
	}, nil
}

// coerceAge accepts a JSON number, a numeric string, null or nothing.
func coerceAge(raw json.RawMessage) (*int, *ValidationError) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" || s == `""` {
		return nil, nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return nil, invalid("age", MsgInvalidAge)
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return nil, nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v != math.Trunc(v) || v > 150 {
		return nil, invalid("age", MsgInvalidAge)
	}
	n := int(v)
	return &n, nil
}

func isImageDataURI(uri string) bool {
	d, err := media.Parse(uri)
	return err == nil && d.IsImage()
}
