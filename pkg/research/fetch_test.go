package research

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFetchSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	err := os.WriteFile(path, []byte("Role notes: strong SQL required."), 0644)
	if err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	content, err := FetchSource(path)
	if err != nil {
		t.Fatalf("FetchSource failed: %v", err)
	}

	if content != "Role notes: strong SQL required." {
		t.Errorf("Expected file content returned verbatim, got %q", content)
	}
}

func TestFetchSourceEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	err := os.WriteFile(path, []byte("  \n"), 0644)
	if err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	_, err = FetchSource(path)
	if err == nil {
		t.Fatal("Expected error for empty file")
	}
}

func TestFetchSourceConvertsHTMLToMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<h1>Hiring Guide</h1>
			<p>Assignments should take <strong>under four hours</strong>.</p>
			<ul><li>Scope tightly</li><li>Provide data</li></ul>
		</body></html>`))
	}))
	defer server.Close()

	content, err := FetchSourceWithContext(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchSourceWithContext failed: %v", err)
	}

	if !strings.Contains(content, "# Hiring Guide") {
		t.Errorf("Expected markdown heading, got:\n%s", content)
	}

	if !strings.Contains(content, "- Scope tightly") {
		t.Errorf("Expected markdown list item, got:\n%s", content)
	}

	if strings.Contains(content, "<p>") || strings.Contains(content, "<ul>") {
		t.Errorf("Expected HTML tags removed, got:\n%s", content)
	}
}

func TestFetchSourceHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := FetchSourceWithContext(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected error for non-200 response")
	}

	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected status code in error, got: %v", err)
	}
}

func TestFetchSourceMissingFile(t *testing.T) {
	_, err := FetchSource(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
