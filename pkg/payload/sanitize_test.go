package payload

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSanitizeStringRemovesControlAndFormatCharacters(t *testing.T) {
	// Null byte (Cc) and zero-width non-joiner (Cf) must be removed while
	// adjacent ASCII letters and embedded newlines survive.
	input := "ab\x00cd‌ef\ngh"

	result := SanitizeString(input)

	if result != "abcdef\ngh" {
		t.Errorf("Expected %q, got %q", "abcdef\ngh", result)
	}
}

func TestSanitizeStringKeepsAllowedWhitespace(t *testing.T) {
	input := "line one\nline two\r\ttabbed"

	result := SanitizeString(input)

	if result != input {
		t.Errorf("Expected allowed whitespace preserved, got %q", result)
	}
}

func TestSanitizeStringKeepsNonASCIIPrintable(t *testing.T) {
	input := "한국어 과제 日本語 中文 café"

	result := SanitizeString(input)

	if result != input {
		t.Errorf("Expected printable non-ASCII preserved, got %q", result)
	}
}

func TestSanitizeRecursesAllDepths(t *testing.T) {
	input := map[string]interface{}{
		"top": "clean\x00ed",
		"nested": map[string]interface{}{
			"list": []interface{}{
				"item​",
				map[string]interface{}{"deep": "val\x1bue"},
			},
		},
		"number":  float64(42),
		"boolean": true,
		"null":    nil,
	}

	result := Sanitize(input).(map[string]interface{})

	if result["top"] != "cleaned" {
		t.Errorf("Expected top-level string sanitized, got %v", result["top"])
	}

	nested := result["nested"].(map[string]interface{})
	list := nested["list"].([]interface{})

	if list[0] != "item" {
		t.Errorf("Expected list element sanitized, got %v", list[0])
	}

	deep := list[1].(map[string]interface{})
	if deep["deep"] != "value" {
		t.Errorf("Expected deep string sanitized, got %v", deep["deep"])
	}

	if result["number"] != float64(42) {
		t.Errorf("Expected number unchanged, got %v", result["number"])
	}

	if result["boolean"] != true {
		t.Errorf("Expected boolean unchanged, got %v", result["boolean"])
	}

	if result["null"] != nil {
		t.Errorf("Expected null unchanged, got %v", result["null"])
	}
}

func TestSanitizeRoundTrip(t *testing.T) {
	// Documents without control characters must round-trip unchanged through
	// serialize -> parse -> sanitize.
	original := map[string]interface{}{
		"name":  "assignment",
		"count": float64(3),
		"tags":  []interface{}{"one", "two"},
		"meta":  map[string]interface{}{"note": "line\nbreak"},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var parsed map[string]interface{}
	err = json.Unmarshal(data, &parsed)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	result := Sanitize(parsed)

	if !reflect.DeepEqual(result, original) {
		t.Errorf("Round trip changed document:\noriginal: %#v\nresult:   %#v", original, result)
	}
}
