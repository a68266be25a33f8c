package payload

import (
	"strings"
	"unicode"
)

// isAllowedRune reports whether a rune may appear in a sanitized string
// value: any rune in a printable Unicode category, plus the whitespace
// allow-list of newline, carriage return, and tab. Control, format,
// surrogate, private-use, and unassigned code points are rejected.
func isAllowedRune(r rune) (allowed bool) {
	if r == '\n' || r == '\r' || r == '\t' {
		allowed = true
		return allowed
	}

	allowed = unicode.In(r, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z)
	return allowed
}

// SanitizeString filters non-printable runes from a single string.
func SanitizeString(text string) (sanitized string) {
	// Fast path: most strings are already clean.
	clean := true
	for _, r := range text {
		if !isAllowedRune(r) {
			clean = false
			break
		}
	}
	if clean {
		sanitized = text
		return sanitized
	}

	builder := strings.Builder{}
	builder.Grow(len(text))
	for _, r := range text {
		if isAllowedRune(r) {
			builder.WriteRune(r)
		}
	}

	sanitized = builder.String()
	return sanitized
}

// Sanitize walks any parsed JSON-compatible value and filters every string
// leaf at every depth. Non-string, non-container values pass through
// unchanged. This must run after parsing, never before: control characters
// inside a valid JSON escape sequence must not be corrupted pre-parse.
func Sanitize(value interface{}) (sanitized interface{}) {
	switch typed := value.(type) {
	case string:
		sanitized = SanitizeString(typed)
	case map[string]interface{}:
		result := make(map[string]interface{}, len(typed))
		for key, val := range typed {
			result[key] = Sanitize(val)
		}
		sanitized = result
	case []interface{}:
		result := make([]interface{}, len(typed))
		for i, val := range typed {
			result[i] = Sanitize(val)
		}
		sanitized = result
	default:
		sanitized = value
	}

	return sanitized
}
