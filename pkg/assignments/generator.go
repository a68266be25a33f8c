package assignments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hireloop/takehome-forge/pkg/llm"
	"github.com/hireloop/takehome-forge/pkg/payload"
	"github.com/pkg/errors"
)

// Params configures one assignment generation run.
type Params struct {
	JobRole      string
	JobLevel     string
	Company      string
	Language     string
	InputPath    string // research report to ground the assignment in
	OutputPath   string // assignments JSON destination
	MarkdownPath string // preview destination; derived from OutputPath when empty
}

// Generator produces assignment documents through the provider chain.
type Generator struct {
	chain   *llm.Chain
	verbose bool
}

// NewGenerator creates a generator backed by the given provider chain.
func NewGenerator(chain *llm.Chain, verbose bool) (generator *Generator) {
	generator = &Generator{
		chain:   chain,
		verbose: verbose,
	}
	return generator
}

// Generate runs one full generation: load the research report, prompt the
// model, run the completion through the payload pipeline, stamp the caller's
// company/role/level over whatever the model invented, and write the JSON
// document plus a markdown preview. When the completion cannot be parsed the
// raw and cleaned texts are persisted next to the output path before the
// error surfaces.
func (g *Generator) Generate(ctx context.Context, params Params) (doc Document, err error) {
	fmt.Printf("--- Generating assignments for: %s (%s) ---\n", params.JobRole, params.JobLevel)

	researchSummary, err := loadResearchReport(params.InputPath)
	if err != nil {
		return doc, err
	}

	system, user := BuildPrompts(params, researchSummary)

	raw, model, err := g.chain.Complete(ctx, system, user)
	if err != nil {
		err = errors.Wrap(err, "assignment generation failed")
		return doc, err
	}

	if g.verbose {
		fmt.Printf("Completion received from %s (%d chars)\n", model, len(raw))
	}

	parsed, cleaned, err := payload.Process(raw, DocumentShape())
	if err != nil {
		artifacts, writeErr := payload.WriteFailureArtifacts(params.OutputPath, raw, cleaned)
		if writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write failure artifacts: %v\n", writeErr)
		}
		err = errors.Wrapf(err,
			"failed to parse assignments JSON, raw output saved to %s (raw) and %s (cleaned)",
			artifacts.RawPath, artifacts.CleanedPath)
		return doc, err
	}

	// The request parameters are authoritative over whatever identity the
	// model echoed back.
	parsed["company"] = params.Company
	parsed["job_role"] = params.JobRole
	parsed["job_level"] = params.JobLevel

	err = DocumentShape().Validate(parsed)
	if err != nil {
		err = errors.Wrap(err, "assignment document failed schema validation")
		return doc, err
	}

	doc, err = FromMap(parsed)
	if err != nil {
		return doc, err
	}

	for _, violation := range CheckContentRules(doc) {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", violation)
	}

	err = writeDocument(doc, params.OutputPath)
	if err != nil {
		return doc, err
	}
	fmt.Printf("--- Assignments JSON saved to: %s ---\n", params.OutputPath)

	previewPath := params.MarkdownPath
	if previewPath == "" {
		previewPath = strings.TrimSuffix(params.OutputPath, filepath.Ext(params.OutputPath)) + ".md"
	}

	err = WriteMarkdownForLanguage(doc, previewPath, params.Language)
	if err != nil {
		return doc, err
	}
	fmt.Printf("--- Preview markdown saved to: %s ---\n", previewPath)

	return doc, err
}

// loadResearchReport reads the research summary the prompts are grounded in.
// A missing report is a hard error with a pointer at the step that produces it.
func loadResearchReport(path string) (content string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err,
			"could not read research report at %s, run the research step first or provide --input", path)
		return content, err
	}

	content = string(data)
	if strings.TrimSpace(content) == "" {
		err = errors.Errorf("research report is empty: %s", path)
		return content, err
	}

	return content, err
}

// writeDocument persists the assignment document as indented JSON.
func writeDocument(doc Document, path string) (err error) {
	var data []byte
	data, err = json.MarshalIndent(doc, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to serialize assignment document")
		return err
	}

	err = os.WriteFile(path, append(data, '\n'), 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write assignments file: %s", path)
		return err
	}

	return err
}
