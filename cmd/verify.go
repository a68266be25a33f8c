package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hireloop/takehome-forge/pkg/config"
	"github.com/hireloop/takehome-forge/pkg/llm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verifyPing bool

//nolint:gochecknoglobals // Cobra boilerplate
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify provider credentials and the fallback chain",
	Long: `Check which provider API keys are configured, print the resulting
fallback chain, and optionally send a short test completion through it.

Example:
  takehome-forge verify
  takehome-forge verify --ping`,
	RunE: runVerifyCmd,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().BoolVar(&verifyPing, "ping", false, "Send a test completion through the chain")
}

func runVerifyCmd(cmd *cobra.Command, args []string) (err error) {
	fmt.Println("Checking provider credentials:")

	keys := []struct {
		env  string
		note string
	}{
		{env: "NVIDIA_API_KEY", note: "primary"},
		{env: "OPENAI_API_KEY", note: "fallback"},
		{env: "OPENROUTER_API_KEY", note: "fallback"},
	}

	configured := 0
	for _, key := range keys {
		if os.Getenv(key.env) != "" {
			fmt.Printf("  ✓ %s set (%s)\n", key.env, key.note)
			configured++
		} else {
			fmt.Printf("  - %s not set\n", key.env)
		}
	}

	if configured == 0 {
		err = errors.New("no provider credentials found; set at least one of NVIDIA_API_KEY, OPENAI_API_KEY, OPENROUTER_API_KEY")
		return err
	}

	specs := config.ProviderChain()
	fmt.Printf("\nFallback chain (%d providers):\n", len(specs))
	for i, spec := range specs {
		thinking := ""
		if spec.Thinking {
			thinking = " [thinking]"
		}
		fmt.Printf("  %d. %s: %s%s\n", i+1, spec.Kind, spec.Model, thinking)
	}

	chain, err := llm.NewChain(specs, config.Temperature(0.7), getVerbose())
	if err != nil {
		return err
	}

	if !verifyPing {
		fmt.Println("\nSetup looks good. Run with --ping to test a live completion.")
		return err
	}

	fmt.Println("\nSending test completion...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	text, model, err := chain.Complete(ctx, "You are a connectivity check.", "Reply with the single word OK.")
	if err != nil {
		err = errors.Wrap(err, "test completion failed")
		return err
	}

	fmt.Printf("✓ %s responded (%d chars): %.60s\n", model, len(text), text)

	return err
}
