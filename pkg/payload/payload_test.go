package payload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProcessEndToEnd(t *testing.T) {
	raw := "Here's the JSON:\n```json\n{\"a\": 1, \"b\": [1,2,],}\n```\nLet me know if you need changes."

	doc, _, err := Process(raw, Shape{})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if doc["a"] != float64(1) {
		t.Errorf("Expected a=1, got %v", doc["a"])
	}

	list, ok := doc["b"].([]interface{})
	if !ok || len(list) != 2 {
		t.Fatalf("Expected b=[1,2], got %v", doc["b"])
	}
}

func TestProcessNormalizesTypographicQuotes(t *testing.T) {
	raw := "```json\n{“status”: “ok”}\n```"

	doc, _, err := Process(raw, Shape{})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if doc["status"] != "ok" {
		t.Errorf("Expected status=ok, got %v", doc["status"])
	}
}

func TestProcessSanitizesControlCharacters(t *testing.T) {
	// The control character arrives through a valid JSON escape sequence, so
	// it must survive parsing and be removed only afterwards.
	raw := `{"text": "bad\u0007val\u200cue"}`

	doc, _, err := Process(raw, Shape{})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if doc["text"] != "badvalue" {
		t.Errorf("Expected control character removed post-parse, got %q", doc["text"])
	}
}

func TestProcessFailureReturnsCleanedText(t *testing.T) {
	_, cleaned, err := Process("nothing useful", Shape{})
	if err == nil {
		t.Fatal("Expected error for unparseable input")
	}

	var malformed *MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected *MalformedPayloadError, got %T", err)
	}

	if cleaned == "" {
		t.Error("Expected best-effort cleaned text on failure")
	}
}

func TestWriteFailureArtifacts(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "assignments.json")

	raw := "<think>hidden reasoning</think>broken {payload"
	cleaned := "{payload}"

	artifacts, err := WriteFailureArtifacts(outputPath, raw, cleaned)
	if err != nil {
		t.Fatalf("WriteFailureArtifacts failed: %v", err)
	}

	expectedRaw := filepath.Join(dir, "assignments.raw.json")
	if artifacts.RawPath != expectedRaw {
		t.Errorf("Expected raw path %s, got %s", expectedRaw, artifacts.RawPath)
	}

	expectedCleaned := filepath.Join(dir, "assignments.cleaned.json")
	if artifacts.CleanedPath != expectedCleaned {
		t.Errorf("Expected cleaned path %s, got %s", expectedCleaned, artifacts.CleanedPath)
	}

	rawData, err := os.ReadFile(artifacts.RawPath)
	if err != nil {
		t.Fatalf("Failed to read raw artifact: %v", err)
	}

	// Reasoning sections must never reach disk.
	if strings.Contains(string(rawData), "hidden reasoning") {
		t.Error("Think block leaked into persisted raw artifact")
	}

	if !strings.Contains(string(rawData), "broken {payload") {
		t.Errorf("Expected raw payload text in artifact, got %q", string(rawData))
	}

	cleanedData, err := os.ReadFile(artifacts.CleanedPath)
	if err != nil {
		t.Fatalf("Failed to read cleaned artifact: %v", err)
	}

	if string(cleanedData) != cleaned {
		t.Errorf("Expected cleaned artifact %q, got %q", cleaned, string(cleanedData))
	}
}

func TestShapeValidate(t *testing.T) {
	shape := Shape{
		Required: []string{"company", "assignments"},
		ArrayKey: "assignments",
	}

	cases := []struct {
		name    string
		doc     map[string]interface{}
		wantErr bool
	}{
		{
			name: "valid document",
			doc: map[string]interface{}{
				"company":     "Acme",
				"assignments": []interface{}{map[string]interface{}{"id": "a1"}},
			},
			wantErr: false,
		},
		{
			name: "missing required key",
			doc: map[string]interface{}{
				"assignments": []interface{}{},
			},
			wantErr: true,
		},
		{
			name: "array key holds wrong type",
			doc: map[string]interface{}{
				"company":     "Acme",
				"assignments": "not an array",
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := shape.Validate(tc.doc)
			if tc.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}

			if tc.wantErr {
				var violation *SchemaViolationError
				if !errors.As(err, &violation) {
					t.Errorf("Expected *SchemaViolationError, got %T", err)
				}
			}
		})
	}
}
