// Package residual measures how well a candidate vector x solves the linear
// system A·x = b.
//
// The residual is r = b − A·x; its Euclidean norm ‖r‖₂ is zero for an exact
// solution and grows with the error. A may be any m×n matrix (it need not be
// square), x must have length n and b length m.
//
// Accepted inputs:
//   - A: *mat.Dense, or any sparse layout implementing matrix.Sparser
//     (CSC, CSR, COO, DOK from github.com/james-bowman/sparse)
//   - x, b: *mat.VecDense
//
// Anything else is reported as an error matching matrix.ErrInvalidInput; no
// value is computed in that case.
//
//	n, err := residual.Norm(a, x, b)
//
// Norm, Vector and RelativeNorm are pure and goroutine-safe. Time is
// O(m·n) for dense A and O(nnz + m + n) for sparse A.
package residual
