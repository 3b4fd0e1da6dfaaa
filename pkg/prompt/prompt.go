// Package prompt renders the fixed natural-language templates sent to the model.
//
// Templates use named placeholders ({{.symptoms}}) bound to string fields. The
// renderer never branches on content: it substitutes, appends the language
// directive and, where the template asks for it, the canonical disclaimer.
package prompt

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// Disclaimer is the canonical safety text. Responses that carry a disclaimer
// field must contain exactly this string.
const Disclaimer = "MediaID AI provides educational and informational health insights only. This is not a professional medical diagnosis and must not be used as a substitute for consultation, diagnosis, or treatment by a licensed doctor or qualified healthcare provider."

// DefaultLanguage is used whenever a request does not name one.
const DefaultLanguage = "English"

var (
	ErrNoLanguage    = errors.New("prompt: language must be resolved before rendering")
	ErrImageRequired = errors.New("prompt: template requires an attached image")
)

// Template is an immutable, parsed prompt template.
type Template struct {
	name       string
	tmpl       *template.Template
	disclaimer bool
	image      bool
}

// Option tweaks what the renderer appends around the template body.
type Option func(*Template)

// WithDisclaimer embeds the canonical disclaimer in the instructions.
func WithDisclaimer() Option { return func(t *Template) { t.disclaimer = true } }

// WithImage marks the template as requiring an attached image.
func WithImage() Option { return func(t *Template) { t.image = true } }

// New parses text as a template. Unknown placeholders fail at render time.
func New(name, text string, opts ...Option) (*Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("prompt %s: %w", name, err)
	}
	t := &Template{name: name, tmpl: tmpl}
	for _, o := range opts {
		o(t)
	}
	return t, nil
}

// MustNew is New for package-level templates.
func MustNew(name, text string, opts ...Option) *Template {
	t, err := New(name, text, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the template name.
func (t *Template) Name() string { return t.name }

// Binding is the per-call data bound to a template.
type Binding struct {
	Language string
	Fields   map[string]string
	// ImageMIME is set when an image travels with the prompt.
	ImageMIME string
}

// Render substitutes the binding into the template.
func (t *Template) Render(b Binding) (string, error) {
	if strings.TrimSpace(b.Language) == "" {
		return "", ErrNoLanguage
	}
	if t.image && b.ImageMIME == "" {
		return "", ErrImageRequired
	}
	data := make(map[string]string, len(b.Fields)+1)
	for k, v := range b.Fields {
		data[k] = v
	}
	data["language"] = b.Language

	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("prompt %s: %w", t.name, err)
	}
	body := strings.TrimSpace(sb.String())
	sb.Reset()
	sb.WriteString(body)
	if b.ImageMIME != "" {
		sb.WriteString("\n\nImage: the image to analyze is attached to this message (" + b.ImageMIME + ").")
	}
	if t.disclaimer {
		sb.WriteString("\n\nInclude the following disclaimer in the output: Disclaimer: ")
		sb.WriteString(Disclaimer)
	}
	sb.WriteString("\n\n")
	sb.WriteString(LanguageDirective(b.Language))
	return sb.String(), nil
}

// LanguageDirective is the instruction appended to every prompt.
func LanguageDirective(language string) string {
	return "Your entire response MUST be in the following language: " + language + "."
}

// NormalizeLanguage applies the default language.
func NormalizeLanguage(language string) string {
	if l := strings.TrimSpace(language); l != "" {
		return l
	}
	return DefaultLanguage
}
