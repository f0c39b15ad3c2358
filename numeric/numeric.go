// SPDX-License-Identifier: MIT

// Package numeric defines the arithmetic contract that matrix elements satisfy.
//
// Numeric is a type-set constraint built from golang.org/x/exp/constraints:
// every member supports the operators + - * / and their compound-assignment
// forms, so generic kernels use the operators directly. Zero, One and Sign
// supply the identities that Go does not expose as constants on a type
// parameter.
//
// Integer members are accepted on purpose. Division then follows Go integer
// semantics (truncation, panic on zero divisor); callers that need a field
// should instantiate with float32 or float64.
package numeric

import "golang.org/x/exp/constraints"

// Numeric is satisfied by any element type usable in determinant and
// inverse computation: every signed, unsigned and floating kind.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Numeric]() T {
	var z T // zero value is the additive identity for every member

	return z
}

// One returns the multiplicative identity of T.
func One[T Numeric]() T {
	return T(1)
}

// Sign returns ONE when k is even and ZERO-ONE when k is odd.
// For unsigned kinds ZERO-ONE wraps to the maximum value, which still
// behaves as -1 under modular multiplication.
func Sign[T Numeric](k int) T {
	if k%2 == 0 {
		return One[T]()
	}

	return Zero[T]() - One[T]() // -1, or max value for unsigned kinds
}
