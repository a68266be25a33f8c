package payload

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "curly double quotes",
			input:    `{“a”: “b”}`,
			expected: `{"a": "b"}`,
		},
		{
			name:     "curly single quotes",
			input:    "{‘a’: ‘b’}",
			expected: `{'a': 'b'}`,
		},
		{
			name:     "CJK corner brackets",
			input:    "{「key」: 「value」}",
			expected: `{"key": "value"}`,
		},
		{
			name:     "guillemets",
			input:    "«quoted»",
			expected: `"quoted"`,
		},
		{
			name:     "full-width colon and comma",
			input:    `{"a"：1，"b"：2}`,
			expected: `{"a":1,"b":2}`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Normalize(tc.input)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestNormalizeNoOpOnCleanJSON(t *testing.T) {
	// Strings containing only ASCII JSON syntax must pass through unchanged.
	inputs := []string{
		`{"a": 1, "b": [true, false, null], "c": "text"}`,
		`{"nested": {"deep": {"value": 3.14}}}`,
		`[]`,
		`"plain string with 'single' and \"escaped\" quotes"`,
	}

	for _, input := range inputs {
		result := Normalize(input)
		if result != input {
			t.Errorf("Expected clean JSON to pass through unchanged, got %q from %q", result, input)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := `{“a”：「b」，‘c’: 1}`

	once := Normalize(input)
	twice := Normalize(once)

	if once != twice {
		t.Errorf("Normalize is not idempotent: first %q, second %q", once, twice)
	}
}
