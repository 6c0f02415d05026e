package dominance

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsys/matrix"
)

// Operation tags used in error wrapping.
const (
	opIsDominant    = "dominance.IsDiagonallyDominant"
	opMargins       = "dominance.Margins"
	opViolatingRows = "dominance.ViolatingRows"
)

// IsDiagonallyDominant reports whether a is strictly diagonally dominant by
// rows: |a_ii| > Σ_{j≠i} |a_ij| for every i.
//
// Validation (in order, first failure wins):
//  1. a is nil                         → matrix.ErrNilMatrix
//  2. a is not *mat.Dense / *sparse.CSC → matrix.ErrUnsupportedMatrix
//  3. a has zero rows or columns        → matrix.ErrEmptyMatrix
//  4. a is not square                   → matrix.ErrNonSquare
//
// Every error also matches matrix.ErrInvalidInput; the boolean is false and
// carries no meaning whenever err != nil.
//
// Complexity: O(n²) dense, O(nnz + n) sparse. Space: O(n).
func IsDiagonallyDominant(a mat.Matrix) (bool, error) {
	diag, off, err := split(a)
	if err != nil {
		return false, matrix.Errorf(opIsDominant, err)
	}

	for i := range diag {
		if !(diag[i] > off[i]) { // strict; NaN compares false
			return false, nil
		}
	}

	return true, nil
}

// Margins returns, for every row i, |a_ii| − Σ_{j≠i} |a_ij|.
// Row i is strictly dominant iff its margin is > 0.
// Validation is identical to IsDiagonallyDominant.
//
// Complexity: O(n²) dense, O(nnz + n) sparse. Space: O(n).
func Margins(a mat.Matrix) ([]float64, error) {
	diag, off, err := split(a)
	if err != nil {
		return nil, matrix.Errorf(opMargins, err)
	}

	margins := make([]float64, len(diag))
	for i := range diag {
		margins[i] = diag[i] - off[i]
	}

	return margins, nil
}

// ViolatingRows returns the ascending indices of rows that are not strictly
// dominant. A dominant matrix yields an empty, non-nil slice.
// Validation is identical to IsDiagonallyDominant.
func ViolatingRows(a mat.Matrix) ([]int, error) {
	diag, off, err := split(a)
	if err != nil {
		return nil, matrix.Errorf(opViolatingRows, err)
	}

	rows := make([]int, 0)
	for i := range diag {
		if !(diag[i] > off[i]) {
			rows = append(rows, i)
		}
	}

	return rows, nil
}

// split validates a and returns |diag(a)| together with the off-diagonal
// absolute row sums, both of length n.
func split(a mat.Matrix) (diag, off []float64, err error) {
	op, err := operator(a)
	if err != nil {
		return nil, nil, err
	}

	off = op.RowAbsSums()
	diag = op.Diagonal()
	for i := range diag {
		diag[i] = math.Abs(diag[i])
		off[i] -= diag[i]
	}

	return diag, off, nil
}

// operator resolves the storage kind of a once and applies the shape checks.
func operator(a mat.Matrix) (matrix.Operator, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, err
	}

	var op matrix.Operator
	switch t := a.(type) {
	case *mat.Dense:
		op = matrix.NewDenseOperator(t)
	case *sparse.CSC:
		op = matrix.NewSparseOperator(t)
	default:
		return nil, matrix.Unsupported("dominance")
	}

	if err := matrix.ValidateNotEmpty(a); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, err
	}

	return op, nil
}
