package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/levelpack/internal/app"
	"github.com/vk/levelpack/internal/config"
)

// Default filenames for the no-argument launch path.
const (
	DefaultInput  = "input.txt"
	DefaultOutput = "output.txt"
)

const usageText = `levelpack - packs 2-bit level codes, four per byte, MSB-first.

Usage:
  levelpack <input> <output> [options]
  levelpack

With no arguments, levelpack converts ` + DefaultInput + ` to ` + DefaultOutput + `
with debug mapping enabled, honoring ` + config.DefaultFileName + ` if present.

Options:
  --debug        Print the byte-to-source mapping. A bare integer
                 immediately after limits how many bytes are shown.
  --debug=N      Same, with the limit attached to the flag.
  --log-level=L  Logging level: debug, info, warn, error (default warn).
  --log-format=F Log output format: text or json (default text).
`

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Fewer than two arguments selects the no-argument launch path: fixed
// default filenames, debug mapping always on, and defaults taken from the
// levelpack.hcl file when one exists. Otherwise the arguments are scanned
// for the two positional paths and the debug flags; a bare integer directly
// after --debug becomes the mapping limit, and any other token is treated
// as positional.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		fmt.Fprint(output, usageText)
		return nil, true, nil
	}

	if len(args) < 2 {
		return parseDefaultMode(output)
	}
	return parseFlagMode(args)
}

// parseDefaultMode builds the configuration for a launch without arguments,
// e.g. a double-click. Debug mapping is always enabled here.
func parseDefaultMode(output io.Writer) (*app.Config, bool, error) {
	fileDefaults, err := config.Load(context.Background(), config.DefaultFileName)
	if err != nil {
		return nil, false, err
	}

	input := DefaultInput
	if fileDefaults.InputPath != "" {
		input = fileDefaults.InputPath
	}
	outputPath := DefaultOutput
	if fileDefaults.OutputPath != "" {
		outputPath = fileDefaults.OutputPath
	}

	fmt.Fprintln(output, "No args detected. Using defaults:")
	fmt.Fprintf(output, "  input : %s\n", input)
	fmt.Fprintf(output, "  output: %s\n", outputPath)
	fmt.Fprintln(output, "  debug : enabled")

	cfg, err := app.NewConfig(app.Config{
		InputPath:  input,
		OutputPath: outputPath,
		Debug:      true,
		DebugLimit: fileDefaults.DebugLimit,
		HoldOnExit: fileDefaults.HoldOnExit,
		LogFormat:  "text",
		LogLevel:   "warn",
	})
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished in default mode.", "config", cfg)
	return cfg, false, nil
}

// parseFlagMode scans explicit arguments. Unknown tokens are positionals,
// which is what lets --debug take an optional bare integer after it.
func parseFlagMode(args []string) (*app.Config, bool, error) {
	debug := false
	limit := -1
	logLevel := "warn"
	logFormat := "text"
	var positionals []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--debug":
			debug = true
			if i+1 < len(args) && isDigits(args[i+1]) {
				limit, _ = strconv.Atoi(args[i+1])
				i++
			}
		case strings.HasPrefix(a, "--debug="):
			debug = true
			// A non-numeric value is tolerated: debug on, no limit.
			if v := strings.TrimPrefix(a, "--debug="); isDigits(v) {
				limit, _ = strconv.Atoi(v)
			}
		case strings.HasPrefix(a, "--log-level="):
			logLevel = strings.ToLower(strings.TrimPrefix(a, "--log-level="))
			switch logLevel {
			case "debug", "info", "warn", "error":
				// valid
			default:
				return nil, false, &ExitError{Code: 1, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
			}
		case strings.HasPrefix(a, "--log-format="):
			logFormat = strings.ToLower(strings.TrimPrefix(a, "--log-format="))
			if logFormat != "text" && logFormat != "json" {
				return nil, false, &ExitError{Code: 1, Message: "invalid log-format: must be 'text' or 'json'"}
			}
		default:
			positionals = append(positionals, a)
		}
	}
	slog.Debug("Arguments scanned.", "positionals", len(positionals), "debug", debug, "limit", limit)

	if len(positionals) < 2 {
		return nil, false, &ExitError{Code: 1, Message: usageText}
	}

	cfg, err := app.NewConfig(app.Config{
		InputPath:  positionals[0],
		OutputPath: positionals[1],
		Debug:      debug,
		DebugLimit: limit,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
