// Package matrix adapts gonum dense and james-bowman sparse matrices to the
// small capability set used by the linear-system diagnostics.
//
// The matrix package provides:
//
//   - Operator: Dims, Diagonal, RowAbsSums and MulVecTo, implemented once for
//     *mat.Dense (NewDenseOperator) and once for any Sparser
//     (NewSparseOperator). Callers dispatch on the concrete kind a single time
//     and then work only through the interface.
//   - Validators (ValidateNotNil, ValidateNotEmpty, ValidateSquare,
//     ValidateDenseVector, ValidateVecLen) that return tagged sentinels.
//   - The sentinel error set. Every validation failure matches
//     ErrInvalidInput and exactly one reason sentinel.
//
// Operators never write to the wrapped matrix and hold no state of their
// own, so they are safe for concurrent use as long as the caller does not
// mutate the underlying matrix meanwhile.
package matrix
