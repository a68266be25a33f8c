// Package starter generates per-assignment starter code files: a short,
// runnable scaffold the candidate extends rather than a solution.
package starter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hireloop/takehome-forge/pkg/assignments"
	"github.com/hireloop/takehome-forge/pkg/llm"
	"github.com/hireloop/takehome-forge/pkg/payload"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // Pre-compiled extraction pattern
var codeFencePattern = regexp.MustCompile("(?s)```[a-zA-Z0-9+#._-]*[ \t]*\n(.+?)```")

// Generator produces starter files through the provider chain.
type Generator struct {
	chain   *llm.Chain
	verbose bool
}

// NewGenerator creates a starter-code generator backed by the given chain.
func NewGenerator(chain *llm.Chain, verbose bool) (generator *Generator) {
	generator = &Generator{
		chain:   chain,
		verbose: verbose,
	}
	return generator
}

// GenerateAll writes one starter file per assignment that declares starter
// code metadata and returns the written paths. Assignments without metadata
// are skipped with a notice rather than an error.
func (g *Generator) GenerateAll(ctx context.Context, doc assignments.Document, outputDir string) (paths []string, err error) {
	err = os.MkdirAll(outputDir, 0755)
	if err != nil {
		err = errors.Wrapf(err, "failed to create starter code directory: %s", outputDir)
		return paths, err
	}

	for _, assignment := range doc.Assignments {
		if assignment.StarterCode == nil {
			fmt.Printf("--- No starter code declared for assignment %s, skipping ---\n", assignment.ID)
			continue
		}

		var path string
		path, err = g.generateOne(ctx, assignment, outputDir)
		if err != nil {
			err = errors.Wrapf(err, "failed to generate starter code for assignment %s", assignment.ID)
			return paths, err
		}

		paths = append(paths, path)
		fmt.Printf("--- Starter code written: %s ---\n", path)
	}

	return paths, err
}

func (g *Generator) generateOne(ctx context.Context, assignment assignments.Assignment, outputDir string) (path string, err error) {
	system, user := buildStarterPrompts(assignment)

	raw, model, err := g.chain.Complete(ctx, system, user)
	if err != nil {
		err = errors.Wrap(err, "starter code generation failed")
		return path, err
	}

	if g.verbose {
		fmt.Printf("Completion received from %s (%d chars)\n", model, len(raw))
	}

	code := ExtractCode(raw)
	if strings.TrimSpace(code) == "" {
		err = errors.New("completion contained no usable code")
		return path, err
	}

	path = filepath.Join(outputDir, Filename(assignment))

	err = os.WriteFile(path, []byte(strings.TrimRight(code, "\n")+"\n"), 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write starter file: %s", path)
		return path, err
	}

	return path, err
}

// ExtractCode pulls the program text out of a completion: reasoning sections
// are dropped, then the first fenced code block wins. Completions without a
// fence are returned whole, trimmed, on the assumption the model answered
// with bare code.
func ExtractCode(raw string) (code string) {
	stripped := payload.StripThinkBlocks(raw)

	match := codeFencePattern.FindStringSubmatch(stripped)
	if match != nil {
		code = match[1]
		return code
	}

	code = strings.TrimSpace(stripped)
	return code
}

// buildStarterPrompts assembles prompts for one assignment's starter file.
func buildStarterPrompts(assignment assignments.Assignment) (system string, user string) {
	meta := assignment.StarterCode

	language := meta.Language
	if language == "" {
		language = "python"
	}

	system = "You are a senior engineer preparing starter code for a hiring take-home " +
		"assignment. Produce a single runnable " + language + " file: imports, typed " +
		"stubs, TODO markers where the candidate works, and nothing that solves the " +
		"assignment outright. Reply with one fenced code block only."

	var b strings.Builder
	fmt.Fprintf(&b, "Assignment: %s\n", assignment.Title)
	fmt.Fprintf(&b, "Mission: %s\n\n", assignment.Mission)

	if len(assignment.Requirements) > 0 {
		b.WriteString("Requirements:\n")
		for _, requirement := range assignment.Requirements {
			fmt.Fprintf(&b, "- %s\n", requirement)
		}
		b.WriteString("\n")
	}

	for _, dataset := range assignment.Datasets {
		fmt.Fprintf(&b, "Dataset %s (%s, %d records), columns:", dataset.Name, dataset.Format, dataset.Records)
		for _, column := range dataset.Columns {
			fmt.Fprintf(&b, " %s", column.Name)
		}
		b.WriteString("\n")
	}

	if meta.Description != "" {
		fmt.Fprintf(&b, "\nStarter code purpose: %s\n", meta.Description)
	}

	user = b.String()
	return system, user
}

//nolint:gochecknoglobals // Language to file extension table
var languageExtensions = map[string]string{
	"python":     ".py",
	"go":         ".go",
	"javascript": ".js",
	"typescript": ".ts",
	"swift":      ".swift",
	"kotlin":     ".kt",
	"java":       ".java",
	"sql":        ".sql",
	"r":          ".R",
}

// Filename returns the on-disk name an assignment's starter file maps to,
// or empty when the assignment declares no starter code. Portal link
// resolution relies on this being stable.
func Filename(assignment assignments.Assignment) (filename string) {
	if assignment.StarterCode == nil {
		return filename
	}

	filename = assignment.StarterCode.Filename
	if filename == "" {
		filename = defaultFilename(assignment.ID, assignment.StarterCode.Language)
	}
	return filename
}

// defaultFilename derives a starter filename from the assignment ID and
// declared language when the model supplied none.
func defaultFilename(assignmentID, language string) (filename string) {
	ext, ok := languageExtensions[strings.ToLower(language)]
	if !ok {
		ext = ".txt"
	}

	base := strings.ToLower(strings.TrimSpace(assignmentID))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" {
		base = "starter"
	}

	filename = base + "_starter" + ext
	return filename
}
