package residual

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsys/matrix"
)

// Operation tags used in error wrapping.
const (
	opNorm         = "residual.Norm"
	opVector       = "residual.Vector"
	opRelativeNorm = "residual.RelativeNorm"
)

// Norm returns ‖b − A·x‖₂.
//
// Validation (in order, first failure wins):
//  1. x, then b, is nil                  → matrix.ErrNilVector
//  2. x, then b, is not *mat.VecDense     → matrix.ErrUnsupportedVector
//  3. a is nil                           → matrix.ErrNilMatrix
//  4. a is neither *mat.Dense nor Sparser → matrix.ErrUnsupportedMatrix
//  5. a has zero rows or columns         → matrix.ErrEmptyMatrix
//  6. len(b) != rows(a) or len(x) != cols(a) → matrix.ErrDimensionMismatch
//
// Every error also matches matrix.ErrInvalidInput; the float is 0 and carries
// no meaning whenever err != nil.
func Norm(a mat.Matrix, x, b mat.Vector) (float64, error) {
	r, err := compute(a, x, b)
	if err != nil {
		return 0, matrix.Errorf(opNorm, err)
	}

	return mat.Norm(r, 2), nil
}

// Vector returns the residual vector b − A·x as a fresh *mat.VecDense.
// Validation is identical to Norm.
func Vector(a mat.Matrix, x, b mat.Vector) (*mat.VecDense, error) {
	r, err := compute(a, x, b)
	if err != nil {
		return nil, matrix.Errorf(opVector, err)
	}

	return r, nil
}

// RelativeNorm returns ‖b − A·x‖₂ / ‖b‖₂, or the absolute norm when b is
// the zero vector. Validation is identical to Norm.
func RelativeNorm(a mat.Matrix, x, b mat.Vector) (float64, error) {
	r, err := compute(a, x, b)
	if err != nil {
		return 0, matrix.Errorf(opRelativeNorm, err)
	}

	rn := mat.Norm(r, 2)
	bn := mat.Norm(b, 2)
	if bn == 0 {
		return rn, nil
	}

	return rn / bn, nil
}

// compute validates the operands and returns r = b − A·x.
func compute(a mat.Matrix, x, b mat.Vector) (*mat.VecDense, error) {
	xv, err := matrix.ValidateDenseVector(x)
	if err != nil {
		return nil, err
	}
	bv, err := matrix.ValidateDenseVector(b)
	if err != nil {
		return nil, err
	}

	op, err := operator(a)
	if err != nil {
		return nil, err
	}

	m, n := op.Dims()
	if err = matrix.ValidateVecLen(bv, m); err != nil {
		return nil, err
	}
	if err = matrix.ValidateVecLen(xv, n); err != nil {
		return nil, err
	}

	ax := mat.NewVecDense(m, nil)
	op.MulVecTo(ax, xv)

	r := mat.NewVecDense(m, nil)
	r.SubVec(bv, ax)

	return r, nil
}

// operator resolves the storage kind of a once. Any sparse layout is
// accepted here, unlike the dominance check which is CSC only.
func operator(a mat.Matrix) (matrix.Operator, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, err
	}

	var op matrix.Operator
	switch t := a.(type) {
	case *mat.Dense:
		op = matrix.NewDenseOperator(t)
	case matrix.Sparser:
		op = matrix.NewSparseOperator(t)
	default:
		return nil, matrix.Unsupported("residual")
	}

	if err := matrix.ValidateNotEmpty(a); err != nil {
		return nil, err
	}

	return op, nil
}
