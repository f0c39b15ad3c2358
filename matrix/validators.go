// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape checks used by FromRows and Validate.
//  - Return plain sentinel errors (no op tag) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

// ValidateRowLengths ensures every row has the length of row 0.
// Returns *RowLengthError for the first offending row, nil otherwise.
// Zero rows is valid.
// Complexity: O(rows).
func ValidateRowLengths[T any](rows [][]T) error {
	if len(rows) == 0 {
		return nil
	}

	want := len(rows[0])
	for i, row := range rows {
		if len(row) != want {
			return &RowLengthError{Row: i, Want: want, Got: len(row)}
		}
	}

	return nil
}

// ValidateSquare checks that a rows×cols shape is square and non-empty.
//
// Order:
//   - rows != cols       -> ErrNonSquare
//   - rows == cols == 0  -> ErrDegenerate
//
// Complexity: O(1).
func ValidateSquare(rows, cols int) error {
	if rows != cols {
		return ErrNonSquare
	}
	if rows == 0 {
		return ErrDegenerate
	}

	return nil
}
