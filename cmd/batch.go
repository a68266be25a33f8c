package cmd

import (
	"context"
	"time"

	"github.com/hireloop/takehome-forge/pkg/batch"
	"github.com/hireloop/takehome-forge/pkg/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var batchSheetURL string

//nolint:gochecknoglobals // Cobra boilerplate
var batchSheetFile string

//nolint:gochecknoglobals // Cobra boilerplate
var batchOutputRoot string

//nolint:gochecknoglobals // Cobra boilerplate
var batchMaxWorkers int

//nolint:gochecknoglobals // Cobra boilerplate
var batchSummaryPath string

//nolint:gochecknoglobals // Cobra boilerplate
var batchCompany string

//nolint:gochecknoglobals // Cobra boilerplate
var batchDefaultModel string

//nolint:gochecknoglobals // Cobra boilerplate
var batchDefaultTopic string

//nolint:gochecknoglobals // Cobra boilerplate
var batchResearchModel string

//nolint:gochecknoglobals // Cobra boilerplate
var batchQuestionModel string

//nolint:gochecknoglobals // Cobra boilerplate
var batchStarterModel string

//nolint:gochecknoglobals // Cobra boilerplate
var batchSkipResearch bool

//nolint:gochecknoglobals // Cobra boilerplate
var batchSkipQuestions bool

//nolint:gochecknoglobals // Cobra boilerplate
var batchSkipDatasets bool

//nolint:gochecknoglobals // Cobra boilerplate
var batchSkipStarter bool

//nolint:gochecknoglobals // Cobra boilerplate
var batchSkipPortal bool

//nolint:gochecknoglobals // Cobra boilerplate
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run the pipeline for every row of a hiring spreadsheet",
	Long: `Run the full generation pipeline once per spreadsheet row. Rows come
from a Google Sheet URL or a local CSV/XLSX file; each row names a team,
level, and language, with optional per-row model and topic overrides. Rows
whose external_link column is set are skipped.

Each row's artifacts land in their own folder under the output root, named
from the row (e.g. ios_dev_sr_ko).

Example:
  takehome-forge batch --sheet-url "https://docs.google.com/spreadsheets/d/.../edit#gid=0" --company-name "Acme Travel"
  takehome-forge batch --sheet-file teams.xlsx --output-root bulk_output --max-workers 4`,
	RunE: runBatchCmd,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchSheetURL, "sheet-url", "", "Google Sheet URL (edit view)")
	batchCmd.Flags().StringVar(&batchSheetFile, "sheet-file", "", "Local CSV or XLSX file with one row per role")
	batchCmd.Flags().StringVar(&batchOutputRoot, "output-root", "bulk_output", "Root directory for all generated artifacts")
	batchCmd.Flags().IntVar(&batchMaxWorkers, "max-workers", 0, "Maximum concurrent rows (default scales with CPUs)")
	batchCmd.Flags().StringVar(&batchSummaryPath, "summary", "", "Optional JSON summary output path")
	batchCmd.Flags().StringVar(&batchCompany, "company-name", "", "Company or brand name used in prompts and the portals")
	batchCmd.Flags().StringVar(&batchDefaultModel, "default-model", "", "Model for rows that do not set one")
	batchCmd.Flags().StringVar(&batchDefaultTopic, "default-topic", "", "Research topic for rows that do not set one")
	batchCmd.Flags().StringVar(&batchResearchModel, "research-model", "", "Model for the research step")
	batchCmd.Flags().StringVar(&batchQuestionModel, "question-model", "", "Model for assignment generation")
	batchCmd.Flags().StringVar(&batchStarterModel, "starter-model", "", "Model for starter code generation")
	batchCmd.Flags().BoolVar(&batchSkipResearch, "skip-research", false, "Skip research for every row")
	batchCmd.Flags().BoolVar(&batchSkipQuestions, "skip-questions", false, "Skip assignment generation for every row")
	batchCmd.Flags().BoolVar(&batchSkipDatasets, "skip-datasets", false, "Skip dataset fabrication for every row")
	batchCmd.Flags().BoolVar(&batchSkipStarter, "skip-starter", false, "Skip starter code generation for every row")
	batchCmd.Flags().BoolVar(&batchSkipPortal, "skip-portal", false, "Skip portal rendering for every row")
}

// rowParams maps one spreadsheet row onto pipeline parameters rooted in the
// row's own output directory.
func rowParams(row batch.Row, outputDir string, routes []config.RouteRule) (params pipelineParams) {
	topic := row.Topic
	if topic == "" {
		topic = batchDefaultTopic
	}

	params = pipelineParams{
		jobRole:  row.JobRole,
		jobLevel: row.JobLevel,
		language: row.Language,
		company:  batchCompany,
		topic:    topic,

		model:         row.Model,
		researchModel: batchResearchModel,
		questionModel: batchQuestionModel,
		starterModel:  batchStarterModel,

		temperature:         -1,
		researchTemperature: -1,
		questionTemperature: -1,
		starterTemperature:  -1,

		skipResearch:  batchSkipResearch,
		skipQuestions: batchSkipQuestions,
		skipDatasets:  batchSkipDatasets,
		skipStarter:   batchSkipStarter,
		skipPortal:    batchSkipPortal,

		researchOutput:    resolvePath(outputDir, "research_report.txt"),
		assignmentsOutput: resolvePath(outputDir, "assignments.json"),
		datasetsDir:       resolvePath(outputDir, "datasets"),
		starterDir:        resolvePath(outputDir, "starter_code"),
		htmlOutput:        resolvePath(outputDir, "index.html"),

		routes: routes,
	}

	if params.model == "" {
		params.model = batchDefaultModel
	}

	return params
}

func runBatchCmd(cmd *cobra.Command, args []string) (err error) {
	if batchSheetURL == "" && batchSheetFile == "" {
		err = errors.New("either --sheet-url or --sheet-file is required")
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Hour)
	defer cancel()

	routes, err := loadRouteTable()
	if err != nil {
		return err
	}

	var rows []batch.Row
	if batchSheetFile != "" {
		rows, err = batch.LoadRows(batchSheetFile)
	} else {
		rows, err = batch.FetchSheet(ctx, batchSheetURL)
	}
	if err != nil {
		return err
	}

	runner := &batch.Runner{
		OutputRoot: batchOutputRoot,
		Parallel:   batchMaxWorkers,
		Run: func(ctx context.Context, row batch.Row, outputDir string) (runErr error) {
			runErr = runPipeline(ctx, rowParams(row, outputDir, routes))
			return runErr
		},
	}

	results, err := runner.RunAll(ctx, rows)
	if err != nil {
		return err
	}

	if batchSummaryPath != "" {
		err = batch.WriteSummary(results, batchSummaryPath)
		if err != nil {
			return err
		}
	}

	return err
}
