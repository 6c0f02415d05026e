// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used by the matrix
// adapters and by the dominance and residual packages. Diagnostics MUST return
// these sentinels and tests MUST check them via errors.Is. Nothing in this
// module panics on user-supplied input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Every
// reason sentinel is reported together with ErrInvalidInput, so callers may
// match either the umbrella or the precise reason:
//
//	errors.Is(err, matrix.ErrInvalidInput) // any validation failure
//	errors.Is(err, matrix.ErrNonSquare)    // this particular one
//
// ERROR PRIORITY (documented, enforced in tests):
// vectors (residual only) -> nil matrix -> unsupported kind -> empty
// -> non-square (dominance only) -> dimension mismatch (residual only).

var (
	// ErrInvalidInput is the umbrella for every validation failure.
	// A diagnostic that returns it has produced no result.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrNilMatrix indicates a nil matrix (nil interface or typed nil pointer).
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnsupportedMatrix indicates the concrete matrix kind is not accepted
	// by the called operation.
	ErrUnsupportedMatrix = errors.New("matrix: unsupported matrix kind")

	// ErrEmptyMatrix indicates a matrix with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilVector indicates a nil vector argument.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrUnsupportedVector indicates a vector argument that is not a dense vector.
	ErrUnsupportedVector = errors.New("matrix: unsupported vector kind")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. len(x) != Cols(A) or len(b) != Rows(A).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// invalidf tags a reason sentinel with the detecting call site and joins it
// with ErrInvalidInput. A nil reason yields nil.
func invalidf(tag string, reason error) error {
	if reason == nil {
		return nil
	}

	return fmt.Errorf("%s: %w: %w", tag, ErrInvalidInput, reason)
}

// Errorf wraps an error produced by a validator with the caller's operation
// tag. The sentinel chain is preserved for errors.Is.
func Errorf(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}
