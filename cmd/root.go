package cmd

import (
	"os"

	"github.com/hireloop/takehome-forge/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var envFile string

//nolint:gochecknoglobals // Cobra boilerplate
var envProfile string

//nolint:gochecknoglobals // Cobra boilerplate
var routesFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "takehome-forge",
	Short: "Generate take-home assignment packages for hiring",
	Long: `takehome-forge researches a role, generates take-home assignments with
datasets and starter code, and renders a candidate-facing portal page.

Completions come from an OpenAI-compatible provider chain (NVIDIA, OpenAI,
OpenRouter) with automatic fallback; malformed model output is repaired
before it reaches disk.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		err = config.LoadEnvFiles(envFile, envProfile)
		return err
	},
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Extra .env file loaded over the working directory's .env")
	rootCmd.PersistentFlags().StringVar(&envProfile, "profile", "", "Environment profile; loads .env.<profile> last")
	rootCmd.PersistentFlags().StringVar(&routesFile, "routes", "", "Model route table (default routes.yaml when present)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// loadRouteTable loads the model route table from --routes, falling back to
// routes.yaml in the working directory and then the built-in rules.
func loadRouteTable() (routes []config.RouteRule, err error) {
	routes, err = config.LoadRoutesIfPresent(routesFile)
	return routes, err
}
