package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/adjugate/internal/ctxlog"
	"github.com/katalvlaran/adjugate/matrix"
	"github.com/katalvlaran/adjugate/matrixio"
)

// ErrTooLarge is returned when the input exceeds Config.MaxSize rows.
var ErrTooLarge = errors.New("app: matrix exceeds the configured size limit")

// App runs one inversion described by a Config.
type App struct {
	cfg    *Config
	logger *slog.Logger
}

// New returns an App that logs to logW.
func New(logW io.Writer, cfg *Config) *App {
	return &App{cfg: cfg, logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW)}
}

// Run loads the input, inverts it and writes the output.
// Errors from matrixio (including *matrixio.ParseError) and from the matrix
// package are returned wrapped, so errors.Is / errors.As still match.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	rows, err := matrixio.Load(a.cfg.InputPath)
	if err != nil {
		return err
	}
	logger.Debug("Input loaded.", "path", a.cfg.InputPath, "rows", len(rows))

	if err = admit(rows, a.cfg.MaxSize); err != nil {
		return fmt.Errorf("%s: %w", a.cfg.InputPath, err)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	inv, err := matrix.InvertRows(rows)
	if err != nil {
		logger.Debug("Inversion failed.", "error", err)
		return fmt.Errorf("%s: %w", a.cfg.InputPath, err)
	}
	logger.Info("Matrix inverted.", "size", len(rows), "elapsed", time.Since(start))

	if err = matrixio.Write(a.cfg.OutputPath, inv); err != nil {
		return err
	}
	logger.Info("Result written.", "path", a.cfg.OutputPath)

	return nil
}

// admit rejects inputs before they reach the kernel.
// Both [] and [[]] count as degenerate. Row count above maxSize (when > 0)
// fails with ErrTooLarge because the determinant cost grows as n!.
func admit(rows [][]float64, maxSize int) error {
	if len(rows) == 0 || (len(rows) == 1 && len(rows[0]) == 0) {
		return matrix.ErrDegenerate
	}
	if maxSize > 0 && len(rows) > maxSize {
		return fmt.Errorf("%w: %d rows, limit %d", ErrTooLarge, len(rows), maxSize)
	}

	return nil
}
