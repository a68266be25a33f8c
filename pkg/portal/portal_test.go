package portal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hireloop/takehome-forge/pkg/assignments"
)

func portalDoc() (doc assignments.Document) {
	doc = assignments.Document{
		Company:  "Acme Travel",
		JobRole:  "Data Analyst",
		JobLevel: "Senior",
		Assignments: []assignments.Assignment{
			{
				ID:                  "a1",
				Title:               "Funnel Analysis",
				Summary:             "A practical funnel exercise.",
				Mission:             "Analyze the booking funnel.",
				Requirements:        []string{"Use SQL", "Chart results"},
				Deliverables:        []string{"Notebook"},
				DiscussionQuestions: []string{"Q1", "Q2", "Q3"},
				Datasets: []assignments.Dataset{
					{Name: "Bookings Sample", Format: "csv", Records: 100,
						Columns: []assignments.Column{{Name: "id"}, {Name: "status"}}},
				},
				StarterCode: &assignments.StarterCode{
					Language: "python",
					Filename: "starter.py",
				},
			},
		},
	}
	return doc
}

func buildPage(t *testing.T, doc assignments.Document, opts Options) (content string) {
	t.Helper()

	err := Build(doc, opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	data, err := os.ReadFile(opts.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read portal page: %v", err)
	}

	return string(data)
}

func TestBuildRendersAssignments(t *testing.T) {
	dir := t.TempDir()

	content := buildPage(t, portalDoc(), Options{
		OutputPath:      filepath.Join(dir, "index.html"),
		Language:        "English",
		ResearchSummary: "Analysts here live in SQL.\n\nDashboards matter.",
		DatasetDir:      filepath.Join(dir, "datasets"),
		StarterDir:      filepath.Join(dir, "starter_code"),
		ApplyURL:        "https://careers.example.com/apply",
	})

	for _, fragment := range []string{
		`<html lang="en">`,
		"<title>Acme Travel Senior Data Analyst Take-Home Portal</title>",
		"<h3>Funnel Analysis</h3>",
		"Analyze the booking funnel.",
		"<li>Use SQL</li>",
		`href="datasets/bookings_sample.csv"`,
		`href="starter_code/starter.py"`,
		"Analysts here live in SQL.",
		`href="https://careers.example.com/apply"`,
	} {
		if !strings.Contains(content, fragment) {
			t.Errorf("Expected %q in page", fragment)
		}
	}
}

func TestBuildKoreanChrome(t *testing.T) {
	dir := t.TempDir()

	content := buildPage(t, portalDoc(), Options{
		OutputPath: filepath.Join(dir, "index.html"),
		Language:   "Korean",
		DatasetDir: filepath.Join(dir, "datasets"),
		StarterDir: filepath.Join(dir, "starter_code"),
	})

	for _, fragment := range []string{
		`<html lang="ko">`,
		"기술 요구사항",
		"심층 토론 질문",
	} {
		if !strings.Contains(content, fragment) {
			t.Errorf("Expected %q in page", fragment)
		}
	}
}

func TestBuildEscapesAndSanitizes(t *testing.T) {
	doc := portalDoc()
	doc.Assignments[0].Mission = "Use <script>alert(1)</script> carefully\x00."

	dir := t.TempDir()

	content := buildPage(t, doc, Options{
		OutputPath: filepath.Join(dir, "index.html"),
		Language:   "English",
		DatasetDir: filepath.Join(dir, "datasets"),
		StarterDir: filepath.Join(dir, "starter_code"),
	})

	if strings.Contains(content, "<script>alert(1)</script>") {
		t.Error("Expected script tag escaped")
	}

	if strings.Contains(content, "\x00") {
		t.Error("Expected control characters removed")
	}
}

func TestBuildStarterMissingNotice(t *testing.T) {
	doc := portalDoc()
	doc.Assignments[0].StarterCode = nil

	dir := t.TempDir()

	content := buildPage(t, doc, Options{
		OutputPath: filepath.Join(dir, "index.html"),
		Language:   "English",
		DatasetDir: filepath.Join(dir, "datasets"),
		StarterDir: filepath.Join(dir, "starter_code"),
	})

	if !strings.Contains(content, "No starter code is provided.") {
		t.Error("Expected starter-missing notice")
	}
}

func TestBuildCustomTitle(t *testing.T) {
	dir := t.TempDir()

	content := buildPage(t, portalDoc(), Options{
		OutputPath: filepath.Join(dir, "index.html"),
		Language:   "English",
		Title:      "Custom Portal Title",
		DatasetDir: filepath.Join(dir, "datasets"),
		StarterDir: filepath.Join(dir, "starter_code"),
	})

	if !strings.Contains(content, "<title>Custom Portal Title</title>") {
		t.Error("Expected custom title honored")
	}
}
