// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep all data finite and well-conditioned so tolerance checks stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjugate/matrix"
	"github.com/katalvlaran/adjugate/numeric"
)

// approxTol is the absolute tolerance used for products that should equal I.
const approxTol = 1e-9

// MustRect builds a Rectangular from rows or fails the test.
func MustRect[T numeric.Numeric](t testing.TB, rows [][]T) matrix.Rectangular[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err, "FromRows(%v)", rows)

	return m
}

// MustSquare builds a validated Square from rows or fails the test.
func MustSquare[T numeric.Numeric](t testing.TB, rows [][]T) matrix.Square[T] {
	t.Helper()
	s, err := matrix.Validate(MustRect(t, rows))
	require.NoError(t, err, "Validate(%v)", rows)

	return s
}

// Rows returns the nested form of a Square.
func Rows[T numeric.Numeric](s matrix.Square[T]) [][]T {
	return s.Rectangular().ToRows()
}

// identityRows returns I_n as nested rows.
func identityRows(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}

	return out
}

// mulRows computes a·b for conformable nested matrices with a fixed i→k→j order.
// It exists only to check m·m⁻¹ ≈ I; the package itself has no multiplication.
func mulRows(a, b [][]float64) [][]float64 {
	n, inner, m := len(a), len(b), len(b[0])
	out := make([][]float64, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, m)
		for k = 0; k < inner; k++ {
			for j = 0; j < m; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// randomDominant returns an n×n strictly diagonally dominant matrix, which is
// always invertible and well conditioned.
func randomDominant(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		var off float64
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			out[i][j] = rng.Float64()*2 - 1
			if out[i][j] < 0 {
				off -= out[i][j]
			} else {
				off += out[i][j]
			}
		}
		out[i][i] = off + 1 + rng.Float64()
	}

	return out
}

// requireApprox fails when want and got differ by more than approxTol anywhere.
func requireApprox(t testing.TB, want, got [][]float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, approxTol)); diff != "" {
		t.Fatalf("matrices differ beyond %g (-want +got):\n%s", approxTol, diff)
	}
}
