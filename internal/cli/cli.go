package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/adjugate/internal/app"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError carries the process exit code for a usage problem.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns the validated config,
// whether the program should exit cleanly (help was requested), or an *ExitError.
//
// Precedence, lowest first: built-in defaults, the -config file, explicit
// flags and positional arguments.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("inverse", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
inverse - invert a square matrix with the adjugate method.

Usage:
  inverse [options] [INPUT] [OUTPUT]

Arguments:
  INPUT   JSON ([[1, 2], [3, 4]]) or .hcl (matrix = [[1, 2], [3, 4]]) file. Default: in.json
  OUTPUT  JSON file receiving the inverse. Default: out.json

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	maxSizeFlag := flagSet.Int("max-size", app.DefaultMaxSize, "Largest accepted matrix size; 0 disables the limit.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if flagSet.NArg() > 2 {
		return nil, false, usageError("too many arguments: %s", strings.Join(flagSet.Args()[2:], " "))
	}

	cfg := app.DefaultConfig()
	if *configFlag != "" {
		if err := loadFile(*configFlag, &cfg); err != nil {
			return nil, false, err
		}
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-size":
			cfg.MaxSize = *maxSizeFlag
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		}
	})
	if flagSet.NArg() > 0 {
		cfg.InputPath = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		cfg.OutputPath = flagSet.Arg(1)
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	return config, false, nil
}
