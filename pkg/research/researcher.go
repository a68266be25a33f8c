// Package research produces the research report that grounds assignment
// generation: a concise survey of the skills, tools, and hiring practices
// relevant to one role, optionally informed by a fetched source document.
package research

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hireloop/takehome-forge/pkg/llm"
	"github.com/hireloop/takehome-forge/pkg/payload"
	"github.com/pkg/errors"
)

// Params configures one research run.
type Params struct {
	Topic      string // research topic; derived from role/level when empty
	JobRole    string
	JobLevel   string
	Company    string
	Source     string // optional file path or URL with supplemental material
	OutputPath string // report destination
}

// Researcher writes research reports through the provider chain.
type Researcher struct {
	chain   *llm.Chain
	verbose bool
}

// NewResearcher creates a researcher backed by the given provider chain.
func NewResearcher(chain *llm.Chain, verbose bool) (researcher *Researcher) {
	researcher = &Researcher{
		chain:   chain,
		verbose: verbose,
	}
	return researcher
}

// Run generates the research report and writes it to params.OutputPath.
// Reasoning sections are stripped from the completion so the report is
// usable as-is downstream.
func (r *Researcher) Run(ctx context.Context, params Params) (report string, err error) {
	topic := params.Topic
	if topic == "" {
		topic = fmt.Sprintf("Take-home assignment design for a %s %s role", params.JobLevel, params.JobRole)
	}

	fmt.Printf("--- Researching: %s ---\n", topic)

	var sourceMaterial string
	if params.Source != "" {
		sourceMaterial, err = FetchSourceWithContext(ctx, params.Source)
		if err != nil {
			return report, err
		}
		if r.verbose {
			fmt.Printf("Source material loaded (%d chars)\n", len(sourceMaterial))
		}
	}

	system, user := buildResearchPrompts(topic, params, sourceMaterial)

	raw, model, err := r.chain.Complete(ctx, system, user)
	if err != nil {
		err = errors.Wrap(err, "research generation failed")
		return report, err
	}

	if r.verbose {
		fmt.Printf("Completion received from %s (%d chars)\n", model, len(raw))
	}

	report = strings.TrimSpace(payload.StripThinkBlocks(raw))
	if report == "" {
		err = errors.New("research completion was empty")
		return report, err
	}

	err = os.WriteFile(params.OutputPath, []byte(report+"\n"), 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write research report: %s", params.OutputPath)
		return report, err
	}

	fmt.Printf("--- Research report saved to: %s ---\n", params.OutputPath)

	return report, err
}

// buildResearchPrompts assembles the system and user prompts. The report is
// free text, not JSON; it only needs to be concise and skimmable.
func buildResearchPrompts(topic string, params Params, sourceMaterial string) (system string, user string) {
	system = "You are a technical hiring researcher. Produce concise, factual research " +
		"summaries that a recruitment team can act on. Use short paragraphs and bullet " +
		"lists; do not invent statistics."

	var b strings.Builder
	fmt.Fprintf(&b, "Research topic: %s\n", topic)
	if params.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", params.Company)
	}
	fmt.Fprintf(&b, "Role: %s %s\n\n", params.JobLevel, params.JobRole)

	if sourceMaterial != "" {
		b.WriteString("Source material:\n")
		b.WriteString(sourceMaterial)
		b.WriteString("\n\n")
	}

	b.WriteString("Summarize, in 15-25 lines:\n")
	b.WriteString("- The core skills and tools expected for this role and level\n")
	b.WriteString("- The kinds of real-world problems a take-home assignment should model\n")
	b.WriteString("- What distinguishes a strong submission from a weak one\n")
	b.WriteString("- Reasonable time expectations and AI-usage norms for candidates\n")

	user = b.String()
	return system, user
}
