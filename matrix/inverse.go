// SPDX-License-Identifier: MIT
// Package matrix: inversion driver.
//
// Purpose:
//   - Compose determinant, cofactor matrix, transpose and scalar division into
//     A⁻¹ = adj(A) / det(A).
//   - Declare operation tags shared by every error path of the package.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/adjugate/numeric"
)

// Operation name constants for unified error wrapping.
const (
	opFromRows = "FromRows"
	opValidate = "Validate"
	opInvert   = "Invert"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Invert computes A⁻¹ with the adjugate method.
// Implementation:
//   - Stage 1 (size 1): A = [a]. Fail with ErrSingular when a == ZERO,
//     otherwise return [ONE/a]. The cofactor step is skipped, it is undefined at size 1.
//   - Stage 2 (size >= 2): det := A.Determinant(); ErrSingular when det == ZERO.
//   - Stage 3: adj := Cofactors().Transposed(); return adj.DividedBy(det).
//
// Behavior highlights:
//   - The input is never modified; the result owns fresh storage.
//   - Singularity is exact equality with ZERO. A floating determinant that is
//     merely tiny is inverted as is.
//   - For integer element types the result follows integer division.
//
// Errors:
//   - ErrSingular (wrapped with "Invert").
//
// Complexity:
//   - Time O(n² · (n-1)!) dominated by the cofactor matrix, Space O(n²) per level.
func Invert[T numeric.Numeric](m Square[T]) (Square[T], error) {
	zero := numeric.Zero[T]()

	// Stage 1: 1×1 bypasses the cofactor path.
	if m.size == 1 {
		a := m.data[0]
		if a == zero {
			return Square[T]{}, matrixErrorf(opInvert, ErrSingular)
		}

		return Square[T]{size: 1, data: []T{numeric.One[T]() / a}}, nil
	}

	// Stage 2: exact-zero singularity check, no epsilon.
	det := m.Determinant()
	if det == zero {
		return Square[T]{}, matrixErrorf(opInvert, ErrSingular)
	}

	// Stage 3: adj(A) / det(A).
	cofactors, ok := m.Cofactors()
	if !ok {
		// size >= 2 here, so a missing cofactor matrix is a broken invariant
		panic(fmt.Sprintf("matrix: no cofactor matrix for %d×%d input", m.size, m.size))
	}

	return cofactors.Transposed().DividedBy(det), nil
}

// InvertRows runs the whole pipeline on nested rows:
// FromRows -> Validate -> Invert -> ToRows.
// Errors are those of the individual stages, wrapped with their op tags.
func InvertRows[T numeric.Numeric](rows [][]T) ([][]T, error) {
	rect, err := FromRows(rows)
	if err != nil {
		return nil, err
	}

	sq, err := Validate(rect)
	if err != nil {
		return nil, err
	}

	inv, err := Invert(sq)
	if err != nil {
		return nil, err
	}

	return inv.Rectangular().ToRows(), nil // fresh rows, safe to hand out
}
