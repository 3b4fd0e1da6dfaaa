// Package locale resolves UI locale codes to the language names sent to the
// model and looks up the few user-facing messages the service renders itself.
package locale

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"go.yaml.in/yaml/v4"
	"golang.org/x/text/language"
)

// Fallback is the locale used when a key or locale is missing.
const Fallback = "en"

//go:embed locales.yaml
var defaultLocales []byte

// Catalog holds one dictionary per locale code.
type Catalog struct {
	dicts   map[string]map[string]any
	codes   []string
	matcher language.Matcher
}

// Load parses a YAML document of the form {code: {name: ..., ...}}.
func Load(data []byte) (*Catalog, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse locales: %w", err)
	}
	if _, ok := raw[Fallback]; !ok {
		return nil, fmt.Errorf("parse locales: missing %q dictionary", Fallback)
	}
	codes := make([]string, 0, len(raw))
	for code := range raw {
		codes = append(codes, code)
	}
	// fallback first: the matcher returns the first tag on no match
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == Fallback || codes[j] == Fallback {
			return codes[i] == Fallback
		}
		return codes[i] < codes[j]
	})
	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		t, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("parse locales: %q: %w", code, err)
		}
		tags = append(tags, t)
	}
	return &Catalog{dicts: raw, codes: codes, matcher: language.NewMatcher(tags)}, nil
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Load(defaultLocales)
	if err != nil {
		panic(err)
	}
	return c
}

// Codes lists the known locale codes, fallback first.
func (c *Catalog) Codes() []string { return append([]string(nil), c.codes...) }

// Known reports whether code has a dictionary.
func (c *Catalog) Known(code string) bool {
	_, ok := c.dicts[strings.ToLower(strings.TrimSpace(code))]
	return ok
}

// Resolve turns a locale code into the language name for the model.
// Anything that is not a known code is passed through unchanged.
func (c *Catalog) Resolve(lang string) string {
	code := strings.ToLower(strings.TrimSpace(lang))
	if _, ok := c.dicts[code]; !ok {
		return strings.TrimSpace(lang)
	}
	if name, ok := lookup(c.dicts[code], "name"); ok {
		return name
	}
	return strings.TrimSpace(lang)
}

// Match picks the best known locale for an Accept-Language header.
func (c *Catalog) Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Fallback
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return Fallback
	}
	return c.codes[idx]
}

// T returns the message at a dotted key for the locale, falling back to
// English and then to the key itself. {name} placeholders are replaced
// from values.
func (c *Catalog) T(code, key string, values map[string]string) string {
	msg, ok := c.message(code, key)
	if !ok {
		msg, ok = c.message(Fallback, key)
	}
	if !ok {
		return key
	}
	for k, v := range values {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

func (c *Catalog) message(code, key string) (string, bool) {
	d, ok := c.dicts[strings.ToLower(code)]
	if !ok {
		return "", false
	}
	return lookup(d, key)
}

func lookup(d map[string]any, key string) (string, bool) {
	var cur any = d
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur, ok = m[part]
		if !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok && s != ""
}
