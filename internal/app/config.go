package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string
	OutputPath string

	Debug      bool // record and print the byte-to-source mapping
	DebugLimit int  // mapping lines to print; negative means unlimited
	HoldOnExit bool // prompt before closing, for double-click launches

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
