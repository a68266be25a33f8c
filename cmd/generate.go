package cmd

import (
	"context"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var genJobRole string

//nolint:gochecknoglobals // Cobra boilerplate
var genJobLevel string

//nolint:gochecknoglobals // Cobra boilerplate
var genLanguage string

//nolint:gochecknoglobals // Cobra boilerplate
var genCompany string

//nolint:gochecknoglobals // Cobra boilerplate
var genTopic string

//nolint:gochecknoglobals // Cobra boilerplate
var genSource string

//nolint:gochecknoglobals // Cobra boilerplate
var genModel string

//nolint:gochecknoglobals // Cobra boilerplate
var genResearchModel string

//nolint:gochecknoglobals // Cobra boilerplate
var genQuestionModel string

//nolint:gochecknoglobals // Cobra boilerplate
var genStarterModel string

//nolint:gochecknoglobals // Cobra boilerplate
var genTemperature float64

//nolint:gochecknoglobals // Cobra boilerplate
var genResearchTemperature float64

//nolint:gochecknoglobals // Cobra boilerplate
var genQuestionTemperature float64

//nolint:gochecknoglobals // Cobra boilerplate
var genStarterTemperature float64

//nolint:gochecknoglobals // Cobra boilerplate
var genSkipResearch bool

//nolint:gochecknoglobals // Cobra boilerplate
var genSkipQuestions bool

//nolint:gochecknoglobals // Cobra boilerplate
var genSkipDatasets bool

//nolint:gochecknoglobals // Cobra boilerplate
var genSkipStarter bool

//nolint:gochecknoglobals // Cobra boilerplate
var genSkipPortal bool

//nolint:gochecknoglobals // Cobra boilerplate
var genOutputRoot string

//nolint:gochecknoglobals // Cobra boilerplate
var genResearchOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var genAssignmentsOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var genDatasetsDir string

//nolint:gochecknoglobals // Cobra boilerplate
var genStarterDir string

//nolint:gochecknoglobals // Cobra boilerplate
var genHTMLOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var genSiteTitle string

//nolint:gochecknoglobals // Cobra boilerplate
var genApplyURL string

//nolint:gochecknoglobals // Cobra boilerplate
var genSiteURL string

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full assignment generation pipeline for one role",
	Long: `Run the end-to-end pipeline: research the role, generate take-home
assignments, fabricate their datasets, generate starter code, and render the
candidate portal page.

Each step can be skipped when its artifact already exists, and each step can
use its own model via the route table.

Example:
  takehome-forge generate -r "Backend Engineer" -l Senior --company-name "Acme Travel"
  takehome-forge generate -r "iOS Developer" --language English --output-root out/ios_sr
  takehome-forge generate --skip-research --skip-questions --output-root out/ios_sr`,
	RunE: runGenerateCmd,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&genJobRole, "job-role", "r", "iOS Developer", "Target role")
	generateCmd.Flags().StringVarP(&genJobLevel, "job-level", "l", "Senior", "Job level (Junior, Mid-level, Senior, Staff, ...)")
	generateCmd.Flags().StringVar(&genLanguage, "language", "Korean", "Content language (Korean, English, Japanese, Chinese)")
	generateCmd.Flags().StringVar(&genCompany, "company-name", "", "Company or brand name used in prompts and the portal")
	generateCmd.Flags().StringVar(&genTopic, "topic", "", "Research topic override (derived from role/level if omitted)")
	generateCmd.Flags().StringVar(&genSource, "source", "", "Supplemental research source (file path or URL)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Model for all steps; routed through the route table")
	generateCmd.Flags().StringVar(&genResearchModel, "research-model", "", "Model for the research step")
	generateCmd.Flags().StringVar(&genQuestionModel, "question-model", "", "Model for assignment generation")
	generateCmd.Flags().StringVar(&genStarterModel, "starter-model", "", "Model for starter code generation")
	generateCmd.Flags().Float64Var(&genTemperature, "temperature", -1, "Sampling temperature for all steps")
	generateCmd.Flags().Float64Var(&genResearchTemperature, "research-temperature", -1, "Temperature for the research step")
	generateCmd.Flags().Float64Var(&genQuestionTemperature, "question-temperature", -1, "Temperature for assignment generation")
	generateCmd.Flags().Float64Var(&genStarterTemperature, "starter-temperature", -1, "Temperature for starter code generation")
	generateCmd.Flags().BoolVar(&genSkipResearch, "skip-research", false, "Skip research (expects an existing report)")
	generateCmd.Flags().BoolVar(&genSkipQuestions, "skip-questions", false, "Skip assignment generation (expects existing JSON)")
	generateCmd.Flags().BoolVar(&genSkipDatasets, "skip-datasets", false, "Skip dataset fabrication")
	generateCmd.Flags().BoolVar(&genSkipStarter, "skip-starter", false, "Skip starter code generation")
	generateCmd.Flags().BoolVar(&genSkipPortal, "skip-portal", false, "Skip portal page rendering")
	generateCmd.Flags().StringVar(&genOutputRoot, "output-root", ".", "Base directory for all generated artifacts")
	generateCmd.Flags().StringVar(&genResearchOutput, "research-output", "research_report.txt", "Research report path, relative to the output root")
	generateCmd.Flags().StringVar(&genAssignmentsOutput, "assignments-output", "assignments.json", "Assignments JSON path, relative to the output root")
	generateCmd.Flags().StringVar(&genDatasetsDir, "datasets-dir", "datasets", "Dataset directory, relative to the output root")
	generateCmd.Flags().StringVar(&genStarterDir, "starter-dir", "starter_code", "Starter code directory, relative to the output root")
	generateCmd.Flags().StringVar(&genHTMLOutput, "html-output", "index.html", "Portal page path, relative to the output root")
	generateCmd.Flags().StringVar(&genSiteTitle, "site-title", "", "Override the portal page title")
	generateCmd.Flags().StringVar(&genApplyURL, "apply-url", "", "Application/submission URL for the portal CTA")
	generateCmd.Flags().StringVar(&genSiteURL, "site-url", "", "Company site URL linked from the portal")
}

// resolvePath anchors a relative artifact path under the output root.
// Absolute paths are kept as given.
func resolvePath(outputRoot, path string) (resolved string) {
	if filepath.IsAbs(path) {
		resolved = path
		return resolved
	}

	resolved = filepath.Join(outputRoot, path)
	return resolved
}

func runGenerateCmd(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	routes, err := loadRouteTable()
	if err != nil {
		return err
	}

	params := pipelineParams{
		jobRole:  genJobRole,
		jobLevel: genJobLevel,
		language: genLanguage,
		company:  genCompany,
		topic:    genTopic,
		source:   genSource,

		model:         genModel,
		researchModel: genResearchModel,
		questionModel: genQuestionModel,
		starterModel:  genStarterModel,

		temperature:         genTemperature,
		researchTemperature: genResearchTemperature,
		questionTemperature: genQuestionTemperature,
		starterTemperature:  genStarterTemperature,

		skipResearch:  genSkipResearch,
		skipQuestions: genSkipQuestions,
		skipDatasets:  genSkipDatasets,
		skipStarter:   genSkipStarter,
		skipPortal:    genSkipPortal,

		researchOutput:    resolvePath(genOutputRoot, genResearchOutput),
		assignmentsOutput: resolvePath(genOutputRoot, genAssignmentsOutput),
		datasetsDir:       resolvePath(genOutputRoot, genDatasetsDir),
		starterDir:        resolvePath(genOutputRoot, genStarterDir),
		htmlOutput:        resolvePath(genOutputRoot, genHTMLOutput),

		siteTitle: genSiteTitle,
		applyURL:  genApplyURL,
		siteURL:   genSiteURL,

		routes: routes,
	}

	err = runPipeline(ctx, params)
	return err
}
