package app

import (
	"errors"
	"fmt"
)

// Defaults mirror the historical command line: in.json in, out.json out.
const (
	DefaultInputPath  = "in.json"
	DefaultOutputPath = "out.json"
	DefaultMaxSize    = 10
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config holds everything a run needs.
type Config struct {
	InputPath  string
	OutputPath string

	// MaxSize bounds the number of rows admitted into the O(n!) kernel.
	// 0 disables the bound.
	MaxSize int

	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		MaxSize:    DefaultMaxSize,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("input path must not be empty")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("output path must not be empty")
	}
	if cfg.MaxSize < 0 {
		return nil, fmt.Errorf("max size must be >= 0, got %d", cfg.MaxSize)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}
