// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/adjugate/numeric"
)

// Square is a non-degenerate square matrix: size >= 1, rows == cols == size,
// len(data) == size*size. The only way to obtain one from user data is
// Validate, so methods on Square never re-check the shape.
//
// Square is immutable. Transposed and DividedBy return new values with their
// own storage.
type Square[T numeric.Numeric] struct {
	size int // strictly positive
	data []T // row-major, length size*size
}

// Validate admits a Rectangular matrix into the algorithmic core.
//
// Errors (in priority order):
//   - ErrNonSquare  when m.Rows() != m.Cols().
//   - ErrDegenerate when the matrix is 0×0.
//
// The returned Square shares m's backing slice; neither value ever writes to it.
// Complexity: O(1).
func Validate[T numeric.Numeric](m Rectangular[T]) (Square[T], error) {
	if err := ValidateSquare(m.rows, m.cols); err != nil {
		return Square[T]{}, matrixErrorf(opValidate, err)
	}

	return Square[T]{size: m.rows, data: m.data}, nil // shared, read-only
}

// Size returns the number of rows (equal to the number of columns).
func (s Square[T]) Size() int { return s.size }

// At returns the element at (row, col) and whether the position exists.
func (s Square[T]) At(row, col int) (T, bool) {
	return s.Rectangular().At(row, col)
}

// Rectangular converts s back into a Rectangular with rows == cols == size.
// The conversion is lossless and copies nothing.
func (s Square[T]) Rectangular() Rectangular[T] {
	return Rectangular[T]{rows: s.size, cols: s.size, data: s.data}
}

// String implements fmt.Stringer.
func (s Square[T]) String() string {
	return formatRows(s.size, s.size, s.data)
}

// Transposed returns sᵀ.
// Implementation:
//   - Stage 1: copy the backing slice.
//   - Stage 2: swap a[r,c] <-> a[c,r] for every r < c on the copy.
//
// Transposed(Transposed(s)) equals s element for element.
// Complexity: Time O(n²), Space O(n²).
func (s Square[T]) Transposed() Square[T] {
	n := s.size
	out := make([]T, len(s.data))
	copy(out, s.data) // receiver stays untouched

	var r, c, left, right int
	for r = 0; r < n; r++ {
		for c = r + 1; c < n; c++ { // upper triangle only, diagonal is fixed
			left, right = index(n, r, c), index(n, c, r)
			out[left], out[right] = out[right], out[left]
		}
	}

	return Square[T]{size: n, data: out}
}

// DividedBy returns s with every element divided by rhs.
// No zero check happens here: a zero rhs yields ±Inf/NaN for floats and a
// runtime panic for integers, exactly as the element type's / operator does.
// Invert performs the singularity check before calling this.
// Complexity: O(n²).
func (s Square[T]) DividedBy(rhs T) Square[T] {
	out := make([]T, len(s.data))
	for i, v := range s.data {
		v /= rhs // element type semantics: truncation for integers
		out[i] = v
	}

	return Square[T]{size: s.size, data: out}
}
