package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hireloop/takehome-forge/pkg/assignments"
	"github.com/hireloop/takehome-forge/pkg/config"
	"github.com/hireloop/takehome-forge/pkg/datasets"
	"github.com/hireloop/takehome-forge/pkg/llm"
	"github.com/hireloop/takehome-forge/pkg/portal"
	"github.com/hireloop/takehome-forge/pkg/research"
	"github.com/hireloop/takehome-forge/pkg/starter"
	"github.com/pkg/errors"
)

// pipelineParams carries everything one end-to-end generation run needs. The
// generate command fills it from flags; the batch command fills it per
// spreadsheet row.
type pipelineParams struct {
	jobRole  string
	jobLevel string
	language string
	company  string
	topic    string
	source   string

	model         string
	researchModel string
	questionModel string
	starterModel  string

	temperature         float64 // negative means unset
	researchTemperature float64
	questionTemperature float64
	starterTemperature  float64

	skipResearch  bool
	skipQuestions bool
	skipDatasets  bool
	skipStarter   bool
	skipPortal    bool

	researchOutput    string
	assignmentsOutput string
	datasetsDir       string
	starterDir        string
	htmlOutput        string

	siteTitle string
	applyURL  string
	siteURL   string

	routes []config.RouteRule
}

// resolveTemperature picks the per-step temperature, then the run-wide one,
// then the environment default.
func resolveTemperature(step, base float64) (temperature float64) {
	if step >= 0 {
		temperature = step
		return temperature
	}

	if base >= 0 {
		temperature = base
		return temperature
	}

	temperature = config.Temperature(0.7)
	return temperature
}

// stepChain builds the provider chain for one pipeline step. An explicit
// model is routed to a single provider; otherwise the full fallback chain
// from the environment applies.
func (p pipelineParams) stepChain(stepModel string, stepTemperature float64) (chain *llm.Chain, err error) {
	model := stepModel
	if model == "" {
		model = p.model
	}

	specs, err := config.ChainForModel(model, p.routes)
	if err != nil {
		return chain, err
	}

	if len(specs) == 0 {
		err = errors.New("no providers configured; set NVIDIA_API_KEY, OPENAI_API_KEY, or OPENROUTER_API_KEY")
		return chain, err
	}

	chain, err = llm.NewChain(specs, resolveTemperature(stepTemperature, p.temperature), getVerbose())
	return chain, err
}

// ensureExists verifies a skipped step left its artifact behind.
func ensureExists(path, what string) (err error) {
	_, err = os.Stat(path)
	if err != nil {
		err = errors.Wrapf(err, "%s not found at %s (remove the skip flag or provide the file)", what, path)
		return err
	}
	return err
}

// runPipeline executes the full generation sequence: research, assignment
// generation, dataset fabrication, starter code, portal page. Skipped steps
// expect their artifacts to already exist where later steps look for them.
func runPipeline(ctx context.Context, p pipelineParams) (err error) {
	if p.company == "" {
		err = errors.New("company name is required")
		return err
	}

	// Step 1: research report
	if p.skipResearch {
		err = ensureExists(p.researchOutput, "research report")
		if err != nil {
			return err
		}
		fmt.Printf("--- Research skipped, using existing report: %s ---\n", p.researchOutput)
	} else {
		var chain *llm.Chain
		chain, err = p.stepChain(p.researchModel, p.researchTemperature)
		if err != nil {
			return err
		}

		researcher := research.NewResearcher(chain, getVerbose())
		_, err = researcher.Run(ctx, research.Params{
			Topic:      p.topic,
			JobRole:    p.jobRole,
			JobLevel:   p.jobLevel,
			Company:    p.company,
			Source:     p.source,
			OutputPath: p.researchOutput,
		})
		if err != nil {
			return err
		}
	}

	// Step 2: assignment generation
	var doc assignments.Document
	if p.skipQuestions {
		doc, err = assignments.Load(p.assignmentsOutput)
		if err != nil {
			return err
		}
		fmt.Printf("--- Question generation skipped, loaded %d assignments ---\n", len(doc.Assignments))
	} else {
		var chain *llm.Chain
		chain, err = p.stepChain(p.questionModel, p.questionTemperature)
		if err != nil {
			return err
		}

		generator := assignments.NewGenerator(chain, getVerbose())
		doc, err = generator.Generate(ctx, assignments.Params{
			JobRole:    p.jobRole,
			JobLevel:   p.jobLevel,
			Company:    p.company,
			Language:   p.language,
			InputPath:  p.researchOutput,
			OutputPath: p.assignmentsOutput,
		})
		if err != nil {
			return err
		}
	}

	// Step 3: dataset fabrication
	if p.skipDatasets {
		fmt.Println("--- Dataset generation skipped ---")
	} else {
		var paths []string
		paths, err = datasets.GenerateAll(doc, p.datasetsDir)
		if err != nil {
			return err
		}
		fmt.Printf("--- Wrote %d dataset files to: %s ---\n", len(paths), p.datasetsDir)
	}

	// Step 4: starter code
	if p.skipStarter {
		fmt.Println("--- Starter code generation skipped ---")
	} else {
		var chain *llm.Chain
		chain, err = p.stepChain(p.starterModel, p.starterTemperature)
		if err != nil {
			return err
		}

		generator := starter.NewGenerator(chain, getVerbose())
		_, err = generator.GenerateAll(ctx, doc, p.starterDir)
		if err != nil {
			return err
		}
	}

	// Step 5: portal page
	if p.skipPortal {
		fmt.Println("--- Portal build skipped ---")
		return err
	}

	// The report is optional page content at this point; a missing file just
	// drops the background section.
	var summary string
	if reportBytes, readErr := os.ReadFile(p.researchOutput); readErr == nil {
		summary = string(reportBytes)
	}

	err = portal.Build(doc, portal.Options{
		OutputPath:      p.htmlOutput,
		Language:        p.language,
		Title:           p.siteTitle,
		ResearchSummary: summary,
		DatasetDir:      p.datasetsDir,
		StarterDir:      p.starterDir,
		ApplyURL:        p.applyURL,
		SiteURL:         p.siteURL,
	})
	if err != nil {
		return err
	}

	fmt.Printf("--- Pipeline complete. Review: %s ---\n", p.htmlOutput)

	return err
}
