// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for input validation.
//  - Keep the diagnostics minimal by delegating nil/shape/kind checks here.
//  - Every failure carries ErrInvalidInput plus one reason sentinel.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.
//
// Note:
//  - Each validator describes what it validates and what it assumes
//    (e.g. ValidateSquare assumes a non-nil matrix).

package matrix

import (
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// IsNil reports whether m is a nil interface or an interface holding a nil
// pointer (e.g. (*mat.Dense)(nil)). Calling Dims on the latter would panic.
func IsNil(m any) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// ValidateNotNil ensures the matrix reference is usable.
//
// Returns ErrNilMatrix if m is nil or a typed nil pointer.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if IsNil(m) {
		return invalidf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNotEmpty ensures m has at least one row and one column.
// Assumes m is not nil.
//
// A zero-value *mat.Dense reports Dims() == (0, 0); gonum treats it as an
// unset receiver, so it never reaches the numeric kernels.
// Complexity: O(1).
func ValidateNotEmpty(m mat.Matrix) error {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return invalidf("ValidateNotEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
//
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	r, c := m.Dims()
	if r != c {
		return invalidf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateDenseVector ensures v is a non-nil *mat.VecDense and returns it.
// Any other mat.Vector implementation (a column *mat.Dense, a sparse vector)
// is rejected with ErrUnsupportedVector.
//
// Complexity: O(1).
func ValidateDenseVector(v mat.Vector) (*mat.VecDense, error) {
	if IsNil(v) {
		return nil, invalidf("ValidateDenseVector", ErrNilVector)
	}
	vd, ok := v.(*mat.VecDense)
	if !ok {
		return nil, invalidf("ValidateDenseVector", ErrUnsupportedVector)
	}

	return vd, nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Assumes v is not nil.
//
// Complexity: O(1).
func ValidateVecLen(v mat.Vector, n int) error {
	if v.Len() != n {
		return invalidf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// Unsupported returns the tagged ErrUnsupportedMatrix failure for callers that
// perform their own kind dispatch.
func Unsupported(tag string) error {
	return invalidf(tag, ErrUnsupportedMatrix)
}
