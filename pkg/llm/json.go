package llm

import (
	"encoding/json"
	"strings"
)

// ExtractObject returns the first JSON object found in raw model text.
// Models sometimes wrap the object in a fenced block or add a sentence around it.
func ExtractObject(raw string) (json.RawMessage, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	if json.Valid([]byte(raw)) && strings.HasPrefix(raw, "{") {
		return json.RawMessage(raw), true
	}
	// try to extract JSON from fenced block
	if i := strings.Index(raw, "{"); i >= 0 {
		if j := strings.LastIndex(raw, "}"); j > i {
			candidate := raw[i : j+1]
			if json.Valid([]byte(candidate)) {
				return json.RawMessage(candidate), true
			}
		}
	}
	return nil, false
}
