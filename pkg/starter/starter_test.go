package starter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hireloop/takehome-forge/pkg/assignments"
	"github.com/hireloop/takehome-forge/pkg/llm"
)

func starterChain(t *testing.T, completion string) (chain *llm.Chain, server *httptest.Server) {
	t.Helper()

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := llm.ChatResponse{
			Choices: []llm.Choice{
				{Message: llm.ResponseMessage{Role: "assistant", Content: completion}},
			},
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}))

	specs := []llm.ProviderSpec{
		{Kind: llm.ProviderOpenAI, Model: "test-model", BaseURL: server.URL, APIKey: "key"},
	}

	chain, err := llm.NewChain(specs, 0.2, false)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}

	return chain, server
}

func starterDoc(meta *assignments.StarterCode) (doc assignments.Document) {
	doc = assignments.Document{
		Company: "Acme",
		Assignments: []assignments.Assignment{
			{
				ID:          "a1",
				Title:       "Funnel Analysis",
				Mission:     "Analyze the funnel.",
				StarterCode: meta,
			},
		},
	}
	return doc
}

func TestExtractCode(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "fenced with language tag",
			raw:  "Here you go:\n```python\nimport csv\nprint(\"hi\")\n```\nEnjoy!",
			want: "import csv\nprint(\"hi\")\n",
		},
		{
			name: "fenced without tag",
			raw:  "```\nSELECT 1;\n```",
			want: "SELECT 1;\n",
		},
		{
			name: "think block then fence",
			raw:  "<think>plan the scaffold</think>\n```go\npackage main\n```",
			want: "package main\n",
		},
		{
			name: "bare code without fence",
			raw:  "  import csv\n",
			want: "import csv",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractCode(tc.raw)
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestGenerateAllWritesDeclaredFilename(t *testing.T) {
	completion := "```python\nimport csv\n\ndef load_bookings(path):\n    # TODO: implement\n    pass\n```"

	chain, server := starterChain(t, completion)
	defer server.Close()

	dir := t.TempDir()

	generator := NewGenerator(chain, false)

	doc := starterDoc(&assignments.StarterCode{
		Language: "python",
		Filename: "starter.py",
	})

	paths, err := generator.GenerateAll(context.Background(), doc, filepath.Join(dir, "starter_code"))
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("Expected 1 starter file, got %d", len(paths))
	}

	if filepath.Base(paths[0]) != "starter.py" {
		t.Errorf("Expected declared filename kept, got %s", filepath.Base(paths[0]))
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("Failed to read starter file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "def load_bookings") {
		t.Errorf("Expected code in starter file, got:\n%s", content)
	}

	if strings.Contains(content, "```") {
		t.Error("Fence markers leaked into starter file")
	}
}

func TestGenerateAllDerivesFilenameFromLanguage(t *testing.T) {
	chain, server := starterChain(t, "```go\npackage main\n```")
	defer server.Close()

	generator := NewGenerator(chain, false)

	doc := starterDoc(&assignments.StarterCode{Language: "Go"})

	paths, err := generator.GenerateAll(context.Background(), doc, t.TempDir())
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}

	if filepath.Base(paths[0]) != "a1_starter.go" {
		t.Errorf("Expected derived filename a1_starter.go, got %s", filepath.Base(paths[0]))
	}
}

func TestGenerateAllSkipsAssignmentsWithoutMetadata(t *testing.T) {
	chain, server := starterChain(t, "```python\nx = 1\n```")
	defer server.Close()

	generator := NewGenerator(chain, false)

	paths, err := generator.GenerateAll(context.Background(), starterDoc(nil), t.TempDir())
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}

	if len(paths) != 0 {
		t.Errorf("Expected no starter files, got %v", paths)
	}
}

func TestGenerateAllEmptyCompletionIsError(t *testing.T) {
	chain, server := starterChain(t, "<think>no code today</think>")
	defer server.Close()

	generator := NewGenerator(chain, false)

	doc := starterDoc(&assignments.StarterCode{Language: "python"})

	_, err := generator.GenerateAll(context.Background(), doc, t.TempDir())
	if err == nil {
		t.Fatal("Expected error for completion without code")
	}
}
