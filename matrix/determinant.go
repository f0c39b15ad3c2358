// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/adjugate/numeric"
)

// Determinant returns det(s) by cofactor (Laplace) expansion.
//
//   - size 1: the single element.
//   - size 2: a00*a11 - a01*a10.
//   - size >= 3: expansion along row 0,
//     det = Σ_c sign(c) * a[0,c] * det(minor(0,c)), summed for c = 0..n-1
//     starting from ZERO.
//
// The expansion row and summation order are fixed so floating results are
// reproducible bit for bit.
//
// Complexity: Time O(n!), recursion depth n. Only small matrices are practical;
// callers bound the size before calling.
func (s Square[T]) Determinant() T {
	n := s.size
	switch n {
	case 1:
		return s.data[0]
	case 2:
		return s.data[0]*s.data[3] - s.data[1]*s.data[2] // closed form, no recursion
	}

	det := numeric.Zero[T]()
	const row = 0 // fixed expansion row
	var c int
	for c = 0; c < n; c++ {
		// left-to-right accumulation keeps float results reproducible
		det += numeric.Sign[T](c) * s.data[index(n, row, c)] * s.mustMinor(row, c).Determinant()
	}

	return det
}

// Minor returns the (n-1)×(n-1) submatrix obtained by removing row and col,
// keeping the relative order of the remaining rows and columns.
// ok is false when s is 1×1 (no smaller Square exists) or when row or col
// lies outside [0, n).
// Complexity: O(n²).
func (s Square[T]) Minor(row, col int) (minor Square[T], ok bool) {
	n := s.size
	if n == 1 {
		return Square[T]{}, false // 1×1 has no minor
	}
	if row < 0 || row >= n || col < 0 || col >= n {
		return Square[T]{}, false // out of range, never a malformed Square
	}

	data := make([]T, 0, (n-1)*(n-1)) // exact capacity, one allocation
	var r, c int
	for r = 0; r < n; r++ {
		if r == row {
			continue // skip excluded row
		}
		for c = 0; c < n; c++ {
			if c == col {
				continue // skip excluded column
			}
			data = append(data, s.data[index(n, r, c)]) // row-major order preserved
		}
	}

	return Square[T]{size: n - 1, data: data}, true
}

// mustMinor is Minor for callers that already know size >= 2.
func (s Square[T]) mustMinor(row, col int) Square[T] {
	minor, ok := s.Minor(row, col)
	if !ok {
		panic(fmt.Sprintf("matrix: minor(%d,%d) requested on %d×%d matrix", row, col, s.size, s.size))
	}

	return minor
}

// Cofactors returns the cofactor matrix C with C[r,c] = sign(r+c) * det(minor(r,c)).
// ok is false for a 1×1 matrix, whose cofactor matrix is left undefined;
// Invert handles that size separately.
// Complexity: O(n² · (n-1)!).
func (s Square[T]) Cofactors() (cofactors Square[T], ok bool) {
	n := s.size
	if n == 1 {
		return Square[T]{}, false // undefined for 1×1
	}

	data := make([]T, n*n)
	var r, c int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			// checkerboard sign: + on even r+c, - on odd
			data[index(n, r, c)] = s.mustMinor(r, c).Determinant() * numeric.Sign[T](r+c)
		}
	}

	return Square[T]{size: n, data: data}, true
}
