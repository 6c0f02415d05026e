// SPDX-License-Identifier: MIT

// Package matrix: capability types shared by the diagnostics.
// This file intentionally contains ONLY the interfaces; validators, errors and
// the two Operator implementations live in dedicated files.
package matrix

import "gonum.org/v1/gonum/mat"

// Sparser is any gonum-compatible sparse matrix that can enumerate its stored
// entries. Every github.com/james-bowman/sparse layout (CSC, CSR, COO, DOK)
// satisfies it.
//
// DoNonZero must visit each stored entry once; explicit zeros may be visited.
type Sparser interface {
	mat.Matrix

	// NNZ returns the number of stored entries.
	NNZ() int

	// DoNonZero calls fn for every stored entry (i, j, v).
	DoNonZero(fn func(i, j int, v float64))
}

// Operator is the capability set the dominance and residual diagnostics need
// from a matrix, independent of its storage. Implementations are read-only
// views: no method writes to the wrapped matrix.
//
// Complexity notes: Dims is O(1); the other methods are O(r*c) for dense
// storage and O(nnz) (+ O(r) for the result) for sparse storage.
type Operator interface {
	// Dims returns the number of rows and columns.
	Dims() (r, c int)

	// Diagonal returns a fresh slice holding a[i,i] for i < min(r, c).
	Diagonal() []float64

	// RowAbsSums returns a fresh slice s with s[i] = Σ_j |a[i,j]|.
	RowAbsSums() []float64

	// MulVecTo stores a·x into dst. dst must have length r, x length c.
	MulVecTo(dst *mat.VecDense, x mat.Vector)
}
