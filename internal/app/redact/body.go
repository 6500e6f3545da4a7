package redact

import (
	"encoding/json"
	"strings"

	"github.com/har-tools/har2openapi/internal/app/patterns"
)

// Body redacts a JSON body, preserving its shape exactly: key sets,
// array lengths and nesting depth are identical before and after, only
// leaf values change. Unparsable input is returned unchanged.
func Body(text string) string {
	var v interface{}
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	redacted := redactValue(v)
	out, err := json.Marshal(redacted)
	if err != nil {
		return text
	}
	return string(out)
}

func redactValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return scrubString(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = redactValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for name, value := range val {
			out[name] = redactField(name, value)
		}
		return out
	default:
		// Numbers, booleans and nulls pass through unchanged.
		return v
	}
}

func redactField(name string, value interface{}) interface{} {
	lower := strings.ToLower(name)

	if patterns.SensitiveFields[lower] {
		// Placeholders apply only to string values; a numeric or boolean
		// value of a nominally sensitive field passes through as-is.
		if _, ok := value.(string); ok {
			return patterns.PlaceholderForField(lower)
		}
		return value
	}

	if patterns.IDFields[lower] {
		if s, ok := value.(string); ok && patterns.UUIDRe.MatchString(s) {
			return patterns.PlaceholderID
		}
		// Numeric IDs are assumed non-identifying.
		return value
	}

	return redactValue(value)
}

// scrubString replaces embedded email, phone and JWT substrings in place,
// preserving the surrounding text.
func scrubString(s string) string {
	s = patterns.EmbeddedEmailRe.ReplaceAllString(s, patterns.PlaceholderEmail)
	s = patterns.EmbeddedPhoneRe.ReplaceAllString(s, patterns.PlaceholderPhone)
	s = patterns.EmbeddedJWTRe.ReplaceAllString(s, patterns.PlaceholderToken)
	return s
}
