// Package testutil provides a standardized harness for running end-to-end
// conversion tests against temp-dir fixtures.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/levelpack/internal/app"
)

// HarnessResult holds the outcomes of a conversion test run.
type HarnessResult struct {
	Stdout     string
	LogOutput  string
	OutputPath string
	Err        error
}

// WriteInput writes content to a fixture file under dir and returns its path.
func WriteInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// RunConversion writes the given input content to a temp dir and runs one
// conversion over it. Callers needing full control over the configuration
// use RunConversionConfig instead.
func RunConversion(t *testing.T, input string, debug bool, debugLimit int) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	inPath := WriteInput(t, dir, "input.txt", input)
	cfg, err := app.NewConfig(app.Config{
		InputPath:  inPath,
		OutputPath: filepath.Join(dir, "output.txt"),
		Debug:      debug,
		DebugLimit: debugLimit,
		LogFormat:  "text",
		LogLevel:   "debug",
	})
	require.NoError(t, err)

	return RunConversionConfig(t, cfg)
}

// RunConversionConfig runs one conversion with a fully caller-built config,
// capturing console and log output separately.
func RunConversionConfig(t *testing.T, cfg *app.Config) *HarnessResult {
	t.Helper()

	var out, logs bytes.Buffer
	converter := app.NewApp(&out, &logs, cfg)
	err := converter.Run(context.Background())

	return &HarnessResult{
		Stdout:     out.String(),
		LogOutput:  logs.String(),
		OutputPath: cfg.OutputPath,
		Err:        err,
	}
}
