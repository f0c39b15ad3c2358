// Package matrix inverts small square matrices with the classical adjugate method.
//
// What & Why:
//
//	Rectangular holds any rows×cols grid in a flat row-major slice and converts
//	to and from nested [][]T. Validate is the single gate into Square, a
//	non-empty square view that owns the recursive algorithms: Determinant
//	(Laplace expansion along row 0), Minor, Cofactors, Transposed and
//	DividedBy. Invert composes them as A⁻¹ = Cofactors(A)ᵀ / det(A).
//
//	All values are immutable and generic over numeric.Numeric, so the same
//	kernel runs on float64, float32 and integer kinds.
//
// Complexity:
//
//	Determinant is O(n!). Bound n before calling; sizes above ten get slow
//	quickly.
//
// Errors:
//
//	ErrShape (via *RowLengthError), ErrNonSquare, ErrDegenerate and ErrSingular,
//	always wrapped with the failing operation's name. Match with errors.Is.
//
// Singularity is exact: only a determinant equal to ZERO is singular. For
// floats, nearly singular inputs produce large but finite results.
package matrix
