package assignments

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDocFile(t *testing.T, content string) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), "assignments.json")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write document file: %v", err)
	}

	return path
}

func TestLoadValidDocument(t *testing.T) {
	path := writeDocFile(t, `{
  "company": "Acme Travel",
  "job_role": "Data Analyst",
  "job_level": "Senior",
  "assignments": [
    {
      "id": "a1",
      "title": "Funnel Analysis",
      "mission": "Analyze the funnel.",
      "discussion_questions": ["Q1", "Q2", "Q3"],
      "datasets": []
    }
  ]
}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Company != "Acme Travel" {
		t.Errorf("Expected company Acme Travel, got %s", doc.Company)
	}

	if len(doc.Assignments) != 1 {
		t.Fatalf("Expected 1 assignment, got %d", len(doc.Assignments))
	}

	if doc.Assignments[0].Title != "Funnel Analysis" {
		t.Errorf("Expected title preserved, got %s", doc.Assignments[0].Title)
	}
}

func TestLoadValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "no assignments",
			content: `{"company": "Acme", "job_role": "r", "job_level": "l", "assignments": []}`,
			wantMsg: "no assignments",
		},
		{
			name: "missing company",
			content: `{"job_role": "r", "job_level": "l", "assignments": [
				{"id": "a1", "title": "T", "mission": "M"}]}`,
			wantMsg: "company is required",
		},
		{
			name: "assignment missing id",
			content: `{"company": "Acme", "job_role": "r", "job_level": "l", "assignments": [
				{"title": "T", "mission": "M"}]}`,
			wantMsg: "missing ID",
		},
		{
			name: "assignment missing mission",
			content: `{"company": "Acme", "job_role": "r", "job_level": "l", "assignments": [
				{"id": "a1", "title": "T"}]}`,
			wantMsg: "missing mission",
		},
		{
			name:    "invalid json",
			content: `{"company": `,
			wantMsg: "failed to parse",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeDocFile(t, tc.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Expected load error")
			}

			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("Expected error containing %q, got: %v", tc.wantMsg, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
