package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/levelpack/internal/ctxlog"
	"github.com/vk/levelpack/internal/fsutil"
	"github.com/vk/levelpack/internal/level"
	"github.com/vk/levelpack/internal/report"
)

// ErrInputNotFound reports a missing input file. The entrypoint maps it to
// its own exit code.
var ErrInputNotFound = errors.New("input file not found")

// Run executes one conversion: parse the input, pad and pack the values,
// write the output file, and print the summary. The output file is not
// created or touched unless the entire input parsed cleanly.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config
	a.logger.Debug("App.Run method started.", "input", cfg.InputPath, "output", cfg.OutputPath)

	if !fsutil.FileExists(cfg.InputPath) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, cfg.InputPath)
	}

	in, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	lines, err := level.Parse(ctx, in)
	in.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.InputPath, err)
	}
	valid := len(lines)

	lines, padded := level.Pad(lines)
	packed := level.Pack(lines, cfg.Debug)
	a.logger.Debug("Values packed.", "valid_lines", valid, "padded", padded, "bytes", len(packed))

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := report.WriteTokens(out, packed); err != nil {
		out.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	report.PrintSummary(a.outW, report.Summary{
		Input:       cfg.InputPath,
		ValidLines:  valid,
		Padded:      padded,
		OutputBytes: len(packed),
	})
	if cfg.Debug {
		report.PrintMapping(a.outW, packed, cfg.DebugLimit)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
