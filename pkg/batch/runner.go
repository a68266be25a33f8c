package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// RunFunc executes the generation pipeline for one row into outputDir.
type RunFunc func(ctx context.Context, row Row, outputDir string) error

// Result records the outcome of one row's pipeline run.
type Result struct {
	RowIndex  int    `json:"row_index"`
	Team      string `json:"team"`
	JobRole   string `json:"job_role"`
	JobLevel  string `json:"job_level"`
	Language  string `json:"language"`
	OutputDir string `json:"output_dir"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// Runner fans pipeline runs out over a bounded worker pool.
type Runner struct {
	OutputRoot string
	Parallel   int
	Run        RunFunc
}

// maxWorkers bounds concurrency: the explicit setting when positive,
// otherwise twice the CPU count capped at 8.
func (r *Runner) maxWorkers(taskCount int) (workers int) {
	workers = r.Parallel
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
		if workers > 8 {
			workers = 8
		}
	}

	if workers > taskCount {
		workers = taskCount
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// RunAll processes every row without an external link and returns one result
// per processed row, in row order. A failed row never stops the others.
func (r *Runner) RunAll(ctx context.Context, rows []Row) (results []Result, err error) {
	if r.Run == nil {
		err = errors.New("runner has no pipeline function")
		return results, err
	}

	tasks := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.HasExternalLink() {
			fmt.Printf("--- Skipping %s (external link present) ---\n", row.Team)
			continue
		}
		tasks = append(tasks, row)
	}

	if len(tasks) == 0 {
		err = errors.New("no rows to process")
		return results, err
	}

	err = os.MkdirAll(r.OutputRoot, 0755)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output root: %s", r.OutputRoot)
		return results, err
	}

	workers := r.maxWorkers(len(tasks))
	fmt.Printf("--- Processing %d rows with %d workers ---\n", len(tasks), workers)

	results = make([]Result, len(tasks))
	taskCh := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range taskCh {
				results[i] = r.runOne(ctx, tasks[i])
			}
		}()
	}

	for i := range tasks {
		taskCh <- i
	}
	close(taskCh)
	wg.Wait()

	for _, result := range results {
		if result.Status == "completed" {
			fmt.Printf("[done] %s / %s -> %s\n", result.Team, result.JobRole, result.OutputDir)
		} else {
			fmt.Printf("[failed] %s / %s: %s\n", result.Team, result.JobRole, result.Error)
		}
	}

	return results, nil
}

func (r *Runner) runOne(ctx context.Context, row Row) (result Result) {
	outputDir := filepath.Join(r.OutputRoot, ComposeOutputFolder(row))

	result = Result{
		RowIndex:  row.Index,
		Team:      row.Team,
		JobRole:   row.JobRole,
		JobLevel:  row.JobLevel,
		Language:  row.Language,
		OutputDir: outputDir,
		Status:    "completed",
	}

	err := os.MkdirAll(outputDir, 0755)
	if err != nil {
		result.Status = "failed"
		result.Error = err.Error()
		return result
	}

	err = r.Run(ctx, row, outputDir)
	if err != nil {
		result.Status = "failed"
		result.Error = err.Error()
	}

	return result
}

// WriteSummary persists the run results as indented JSON.
func WriteSummary(results []Result, path string) (err error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to serialize batch summary")
		return err
	}

	err = os.WriteFile(path, append(data, '\n'), 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write batch summary: %s", path)
		return err
	}

	return err
}
