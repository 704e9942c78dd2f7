package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"--help"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_DefaultMode(t *testing.T) {
	// Reads the working directory for levelpack.hcl, so no t.Parallel().
	chdir(t, t.TempDir())
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, DefaultInput, cfg.InputPath)
	assert.Equal(t, DefaultOutput, cfg.OutputPath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, -1, cfg.DebugLimit)
	assert.False(t, cfg.HoldOnExit)

	banner := out.String()
	assert.Contains(t, banner, "No args detected. Using defaults:")
	assert.Contains(t, banner, "  input : input.txt")
	assert.Contains(t, banner, "  output: output.txt")
	assert.Contains(t, banner, "  debug : enabled")
}

func TestParse_DefaultModeHonorsDefaultsFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("levelpack.hcl", []byte(`
defaults {
  input  = "levels.txt"
  output = "packed.txt"
}

debug {
  limit = 8
}

hold_on_exit = true
`), 0644))
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "levels.txt", cfg.InputPath)
	assert.Equal(t, "packed.txt", cfg.OutputPath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 8, cfg.DebugLimit)
	assert.True(t, cfg.HoldOnExit)
	assert.Contains(t, out.String(), "  input : levels.txt")
}

func TestParse_SingleArgumentIsDefaultMode(t *testing.T) {
	// One lone token is not enough for flag mode; the original behaves the
	// same way.
	chdir(t, t.TempDir())
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"--debug"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, DefaultInput, cfg.InputPath)
	assert.True(t, cfg.Debug)
}

func TestParse_FlagMode(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"in.txt", "out.txt"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "in.txt", cfg.InputPath)
	assert.Equal(t, "out.txt", cfg.OutputPath)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.HoldOnExit)
}

func TestParse_UsageError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, _, err := Parse([]string{"--debug", "in.txt"}, out)

	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "Usage:")
}

func TestParse_DebugWithBareLimit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, _, err := Parse([]string{"in.txt", "out.txt", "--debug", "16"}, out)

	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 16, cfg.DebugLimit)
}

func TestParse_DebugLimitBeforePositionals(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	// The integer after --debug is consumed as the limit, not a positional.
	cfg, _, err := Parse([]string{"--debug", "2", "in.txt", "out.txt"}, out)

	require.NoError(t, err)
	assert.Equal(t, "in.txt", cfg.InputPath)
	assert.Equal(t, "out.txt", cfg.OutputPath)
	assert.Equal(t, 2, cfg.DebugLimit)
}

func TestParse_DebugAttachedLimit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, _, err := Parse([]string{"in.txt", "out.txt", "--debug=7"}, out)

	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 7, cfg.DebugLimit)
}

func TestParse_DebugNonNumericLimitIsUnlimited(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, _, err := Parse([]string{"in.txt", "out.txt", "--debug=verbose"}, out)

	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, -1, cfg.DebugLimit)
}

func TestParse_DebugWithoutLimit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, _, err := Parse([]string{"in.txt", "out.txt", "--debug"}, out)

	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, -1, cfg.DebugLimit)
}

func TestParse_LogFlags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, _, err := Parse([]string{"in.txt", "out.txt", "--log-level=debug", "--log-format=json"}, out)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, _, err := Parse([]string{"in.txt", "out.txt", "--log-level=loud"}, out)

	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid log-level")
}

// chdir changes the working directory for the duration of the test.
// Equivalent to t.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
}
