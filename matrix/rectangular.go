// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/adjugate/numeric"
)

// Rectangular is an immutable rows×cols matrix stored row-major in a flat slice.
// Element (r, c) lives at data[r*cols+c]; len(data) == rows*cols always holds.
// A 0×0 Rectangular is legal: it is what an empty nested input produces.
type Rectangular[T numeric.Numeric] struct {
	rows, cols int // logical shape
	data       []T // flat backing storage, never written after construction
}

// FromRows flattens equal-length rows into a Rectangular matrix.
// Implementation:
//   - Stage 1: take cols from row 0 (0 when there are no rows).
//   - Stage 2: scan rows in order; the first length mismatch fails.
//   - Stage 3: copy rows into one freshly allocated flat slice.
//
// Errors:
//   - *RowLengthError (errors.Is ErrShape) for the first ragged row.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols). Input slices are not retained.
func FromRows[T numeric.Numeric](rows [][]T) (Rectangular[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0]) // row 0 fixes the expected width
	}

	if err := ValidateRowLengths(rows); err != nil {
		return Rectangular[T]{}, matrixErrorf(opFromRows, err)
	}

	data := make([]T, 0, r*c) // exact capacity, caller slices are not retained
	for _, row := range rows {
		data = append(data, row...)
	}

	return Rectangular[T]{rows: r, cols: c, data: data}, nil
}

// Rows returns the number of rows.
func (m Rectangular[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Rectangular[T]) Cols() int { return m.cols }

// At returns the element at (row, col) and true, or the zero value and false
// when the position is outside the matrix.
func (m Rectangular[T]) At(row, col int) (T, bool) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return numeric.Zero[T](), false
	}

	return m.data[index(m.cols, row, col)], true
}

// Data returns a copy of the flat row-major storage.
func (m Rectangular[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// ToRows rebuilds the nested representation. Every row is a fresh slice,
// so callers may modify the result freely.
// Complexity: O(rows*cols).
func (m Rectangular[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	var r int
	for r = 0; r < m.rows; r++ {
		row := make([]T, m.cols)
		copy(row, m.data[r*m.cols:(r+1)*m.cols]) // detach from backing storage
		out[r] = row
	}

	return out
}

// String implements fmt.Stringer, one bracketed row per line.
func (m Rectangular[T]) String() string {
	return formatRows(m.rows, m.cols, m.data)
}

// index maps (row, col) to the flat offset for a matrix with cols columns.
func index(cols, row, col int) int { return row*cols + col }

// formatRows renders a flat row-major slice as "[a, b]\n[c, d]\n".
func formatRows[T numeric.Numeric](rows, cols int, data []T) string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < rows; i++ {
		sb.WriteByte('[')
		for j = 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", data[index(cols, i, j)])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
