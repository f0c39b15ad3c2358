// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and the one typed error
// that has to carry data (RowLengthError). Operations return these wrapped with
// an operation tag; callers match them via errors.Is / errors.As.
// No operation panics on user-triggered conditions. Panics are reserved for
// broken internal invariants in private helpers.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so the origin is obvious in
// logs. Wrap at the operation boundary with matrixErrorf(op, ErrX); never
// compare error strings.
//
// ERROR PRIORITY (enforced in tests):
// row shape -> squareness -> degeneracy -> singularity.

var (
	// ErrShape is returned when rows of a nested input differ in length.
	// The concrete error is a *RowLengthError that unwraps to ErrShape.
	ErrShape = errors.New("matrix: rows of unequal length")

	// ErrNonSquare signals that a square matrix was required but rows != cols.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDegenerate signals an empty (0×0) matrix where size >= 1 is required.
	ErrDegenerate = errors.New("matrix: matrix is degenerate")

	// ErrSingular is returned when the determinant equals the element type's
	// exact zero. Near-zero floating determinants are NOT singular here.
	ErrSingular = errors.New("matrix: singular matrix")
)

// RowLengthError reports the first row whose length differs from row 0.
type RowLengthError struct {
	Row  int // index of the offending row
	Want int // expected column count (length of row 0)
	Got  int // actual length of Row
}

// Error implements error.
func (e *RowLengthError) Error() string {
	return fmt.Sprintf("%v: row %d has %d columns, want %d", ErrShape, e.Row, e.Got, e.Want)
}

// Unwrap lets errors.Is(err, ErrShape) match.
func (e *RowLengthError) Unwrap() error { return ErrShape }
