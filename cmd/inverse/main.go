// Command inverse reads a square matrix, inverts it with the adjugate method
// and writes the result as JSON.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/adjugate/internal/app"
	"github.com/katalvlaran/adjugate/internal/cli"
	"github.com/katalvlaran/adjugate/matrixio"
)

// diagWidth wraps rendered parse diagnostics.
const diagWidth = 100

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes one invocation and returns the process exit code.
// Usage text goes to outW; logs and errors go to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) int {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(errW, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintln(errW, err)
		return cli.ExitFailure
	}
	if shouldExit {
		return cli.ExitOK
	}

	if err = app.New(errW, cfg).Run(ctx); err != nil {
		var parseErr *matrixio.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintf(errW, "Failed to read matrix from %s\n", parseErr.Filename)
			if renderErr := parseErr.Render(errW, diagWidth, false); renderErr != nil {
				fmt.Fprintln(errW, err)
			}
			return cli.ExitFailure
		}
		fmt.Fprintln(errW, err)
		return cli.ExitFailure
	}

	return cli.ExitOK
}
