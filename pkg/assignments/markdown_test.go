package assignments

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func previewDoc() (doc Document) {
	doc = Document{
		Company:  "Acme Travel",
		JobRole:  "Data Analyst",
		JobLevel: "Senior",
		Assignments: []Assignment{
			{
				ID:                  "a1",
				Title:               "Funnel Analysis",
				Mission:             "Analyze the booking funnel.",
				Summary:             "A short summary.",
				Requirements:        []string{"Load the data", "Chart the funnel"},
				Timeline:            "4 hours",
				DiscussionQuestions: []string{"Q1", "Q2", "Q3"},
			},
		},
	}
	return doc
}

func TestWriteMarkdownKoreanHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.md")

	err := WriteMarkdownForLanguage(previewDoc(), path, "Korean")
	if err != nil {
		t.Fatalf("WriteMarkdownForLanguage failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read preview: %v", err)
	}
	content := string(data)

	for _, fragment := range []string{
		"# Acme Travel Senior Data Analyst 테이크홈 과제",
		"## Funnel Analysis",
		"### 요약",
		"### 핵심 요구사항",
		"- Load the data",
		"### 심층 토론 질문",
	} {
		if !strings.Contains(content, fragment) {
			t.Errorf("Expected %q in preview, got:\n%s", fragment, content)
		}
	}
}

func TestWriteMarkdownEnglishHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.md")

	err := WriteMarkdownForLanguage(previewDoc(), path, "English")
	if err != nil {
		t.Fatalf("WriteMarkdownForLanguage failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read preview: %v", err)
	}
	content := string(data)

	for _, fragment := range []string{
		"Take-Home Assignment",
		"### Key Requirements",
		"### Estimated Time",
	} {
		if !strings.Contains(content, fragment) {
			t.Errorf("Expected %q in preview, got:\n%s", fragment, content)
		}
	}
}

func TestWriteMarkdownOmitsEmptySections(t *testing.T) {
	doc := previewDoc()
	doc.Assignments[0].Summary = ""
	doc.Assignments[0].Requirements = nil

	path := filepath.Join(t.TempDir(), "preview.md")

	err := WriteMarkdownForLanguage(doc, path, "English")
	if err != nil {
		t.Fatalf("WriteMarkdownForLanguage failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read preview: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "### Summary") || strings.Contains(content, "### Key Requirements") {
		t.Errorf("Expected empty sections omitted, got:\n%s", content)
	}
}
