// Package linsys gathers small, pure diagnostics for linear systems A·x = b
// built on gonum matrices and james-bowman/sparse storage.
//
// What is in the box?
//
//   - Diagonal dominance: strict row-wise test |a_ii| > Σ_{j≠i} |a_ij| for
//     dense and CSC inputs, plus per-row margins and violating rows.
//   - Residual norm: ‖b − A·x‖₂ for dense or any sparse A with dense x and b,
//     plus the residual vector and a relative variant.
//
// Every routine validates its input first and reports rejection as an error
// wrapping matrix.ErrInvalidInput and a specific reason, so callers branch
// with errors.Is and never see a magic sentinel value in the numeric result.
//
// Layout:
//
//	matrix/     shared operator abstraction over dense and sparse storage, validators, sentinel errors
//	dominance/  diagonal-dominance check
//	residual/   residual norm of an approximate solution
//	cmd/linsys  command that loads a system file and prints both diagnostics
//
// Quick example:
//
//	A := mat.NewDense(2, 2, []float64{4, 1, 1, 3})
//	ok, _ := dominance.IsDiagonallyDominant(A)      // true
//	r, _ := residual.Norm(A, x, b)                   // ‖b − A·x‖₂
//
//	go get github.com/katalvlaran/linsys
package linsys
