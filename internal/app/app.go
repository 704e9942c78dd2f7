package app

import (
	"io"
	"log/slog"
)

// App encapsulates the converter's dependencies, configuration, and
// lifecycle. Human-readable output (summary, debug mapping) goes to outW;
// structured logs go to the logger built on logW so they never interleave
// with program output.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}
