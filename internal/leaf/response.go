package leaf

import (
	"encoding/json"
	"strings"
)

// Normalize canonicalizes an upstream response body: valid JSON is
// re-serialized compactly, anything else (plain-text error pages, empty
// bodies) is returned unchanged. Normalize is total — it never fails.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}

	var value interface{}
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		return raw
	}

	out, err := json.Marshal(value)
	if err != nil {
		return raw
	}
	return string(out)
}
