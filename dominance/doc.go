// Package dominance decides whether a square matrix is strictly diagonally
// dominant by rows.
//
// 🚀 What is diagonal dominance?
//
//	A square matrix A is strictly diagonally dominant when, for every row i,
//
//	    |a_ii| > Σ_{j≠i} |a_ij|
//
//	It is the classic sufficient condition for Jacobi and Gauss–Seidel to
//	converge, and it guarantees A is non-singular. Ties are NOT dominant.
//
// ✨ Key features:
//   - dense (*mat.Dense) and compressed-column sparse (*sparse.CSC) input
//   - identical answers for the dense and sparse form of the same matrix
//   - per-row margins and the list of offending rows for diagnostics
//   - inputs are never mutated; every call is pure and goroutine-safe
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsys/dominance"
//
//	ok, err := dominance.IsDiagonallyDominant(a)
//	if err != nil {
//	  // errors.Is(err, matrix.ErrInvalidInput): no verdict was produced
//	}
//
// Other sparse layouts (CSR, COO, DOK) are rejected with
// matrix.ErrUnsupportedMatrix; convert them with ToCSC first.
//
// Performance:
//
//   - Time:   O(n²) dense, O(nnz + n) sparse
//   - Memory: O(n)
package dominance
