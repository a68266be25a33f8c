package payload

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FailureArtifacts holds the paths of the diagnostic files written when a
// completion could not be parsed.
type FailureArtifacts struct {
	RawPath     string
	CleanedPath string
}

// WriteFailureArtifacts persists the raw completion text and the best-effort
// cleaned text next to the intended output so a human can diagnose the
// failure offline. Names derive deterministically from the output path:
// <output>.raw.json and <output>.cleaned.json. Reasoning sections are
// stripped from the raw text before it reaches disk.
func WriteFailureArtifacts(outputPath, raw, cleaned string) (artifacts FailureArtifacts, err error) {
	base := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
	artifacts = FailureArtifacts{
		RawPath:     base + ".raw.json",
		CleanedPath: base + ".cleaned.json",
	}

	err = os.WriteFile(artifacts.RawPath, []byte(StripThinkBlocks(raw)), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write raw artifact: %s", artifacts.RawPath)
		return artifacts, err
	}

	err = os.WriteFile(artifacts.CleanedPath, []byte(cleaned), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write cleaned artifact: %s", artifacts.CleanedPath)
		return artifacts, err
	}

	return artifacts, err
}
