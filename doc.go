// Package adjugate inverts small square matrices with the classical adjugate
// method: cofactor expansion for the determinant, transpose of the cofactor
// matrix, division by the determinant.
//
// Layout:
//
//	numeric/       Numeric constraint (all integer and float kinds) and identities
//	matrix/        Rectangular and Square values, Determinant, Cofactors, Invert
//	matrixio/      JSON / HCL loader with positioned diagnostics, JSON writer
//	internal/      CLI parsing, application pipeline, context logging
//	cmd/inverse/   command-line entry point
//
// Quick example:
//
//	inv, err := matrix.InvertRows([][]float64{{4, 7}, {2, 6}})
//	// inv == [[0.6, -0.7], [-0.2, 0.4]]
//
// The determinant is computed by Laplace expansion and costs O(n!), so inputs
// should stay small. The CLI refuses more than 10 rows by default.
//
//	go install github.com/katalvlaran/adjugate/cmd/inverse@latest
package adjugate
