package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func TestRunAllProcessesEveryRow(t *testing.T) {
	rows := []Row{
		{Index: 0, Team: "iOS", JobRole: "iOS Developer", JobLevel: "Senior", Language: "Korean"},
		{Index: 1, Team: "Data", JobRole: "Data Engineer", JobLevel: "Mid-level", Language: "English"},
		{Index: 2, Team: "Design", JobRole: "Designer", JobLevel: "Junior", Language: "Korean",
			ExternalLink: "https://portal.example.com"},
	}

	var mu sync.Mutex
	seen := map[string]string{}

	runner := &Runner{
		OutputRoot: t.TempDir(),
		Parallel:   2,
		Run: func(ctx context.Context, row Row, outputDir string) error {
			mu.Lock()
			seen[row.Team] = outputDir
			mu.Unlock()
			return nil
		},
	}

	results, err := runner.RunAll(context.Background(), rows)
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	// External-link row skipped, others processed.
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	if _, ok := seen["Design"]; ok {
		t.Error("Expected external-link row skipped")
	}

	for _, result := range results {
		if result.Status != "completed" {
			t.Errorf("Expected completed status, got %+v", result)
		}

		if _, statErr := os.Stat(result.OutputDir); statErr != nil {
			t.Errorf("Expected output dir created: %v", statErr)
		}
	}

	// Results stay in row order regardless of worker scheduling.
	if results[0].Team != "iOS" || results[1].Team != "Data" {
		t.Errorf("Expected row order preserved, got %+v", results)
	}
}

func TestRunAllFailedRowDoesNotStopOthers(t *testing.T) {
	rows := []Row{
		{Index: 0, Team: "iOS", JobRole: "iOS Developer", JobLevel: "Senior", Language: "Korean"},
		{Index: 1, Team: "Data", JobRole: "Data Engineer", JobLevel: "Senior", Language: "Korean"},
	}

	runner := &Runner{
		OutputRoot: t.TempDir(),
		Parallel:   1,
		Run: func(ctx context.Context, row Row, outputDir string) error {
			if row.Team == "iOS" {
				return errors.New("provider chain exhausted")
			}
			return nil
		},
	}

	results, err := runner.RunAll(context.Background(), rows)
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	if results[0].Status != "failed" || results[0].Error == "" {
		t.Errorf("Expected first row failed with message, got %+v", results[0])
	}

	if results[1].Status != "completed" {
		t.Errorf("Expected second row completed, got %+v", results[1])
	}
}

func TestRunAllAllRowsExternal(t *testing.T) {
	rows := []Row{
		{Index: 0, Team: "iOS", ExternalLink: "https://a.example.com"},
	}

	runner := &Runner{
		OutputRoot: t.TempDir(),
		Run:        func(ctx context.Context, row Row, outputDir string) error { return nil },
	}

	_, err := runner.RunAll(context.Background(), rows)
	if err == nil {
		t.Fatal("Expected error when every row is skipped")
	}
}

func TestWriteSummary(t *testing.T) {
	results := []Result{
		{RowIndex: 0, Team: "iOS", Status: "completed", OutputDir: "out/ios"},
		{RowIndex: 1, Team: "Data", Status: "failed", Error: "boom"},
	}

	path := filepath.Join(t.TempDir(), "summary.json")

	err := WriteSummary(results, path)
	if err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read summary: %v", err)
	}

	var decoded []Result
	err = json.Unmarshal(data, &decoded)
	if err != nil {
		t.Fatalf("Failed to parse summary: %v", err)
	}

	if len(decoded) != 2 || decoded[1].Error != "boom" {
		t.Errorf("Unexpected summary contents: %+v", decoded)
	}
}

func TestMaxWorkers(t *testing.T) {
	runner := &Runner{Parallel: 4}
	if got := runner.maxWorkers(10); got != 4 {
		t.Errorf("Expected explicit parallelism honored, got %d", got)
	}

	if got := runner.maxWorkers(2); got != 2 {
		t.Errorf("Expected workers capped by task count, got %d", got)
	}

	defaulted := &Runner{}
	if got := defaulted.maxWorkers(100); got < 1 || got > 8 {
		t.Errorf("Expected default workers in [1,8], got %d", got)
	}
}
