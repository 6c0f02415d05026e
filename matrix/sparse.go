// SPDX-License-Identifier: MIT

// Package matrix - sparse Operator over any Sparser.
//
// Purpose:
//   - Adapt CSC/CSR/COO/DOK (github.com/james-bowman/sparse) to the Operator
//     capability set by walking stored entries only.
//   - All accumulation happens in freshly allocated buffers owned by the call;
//     the caller's index and data arrays are only read.
//
// Determinism:
//   - Accumulation follows the layout's DoNonZero order (column-major for CSC,
//     row-major for CSR). COO duplicates are summed, matching their
//     conversion semantics.
//
// Complexity quicksheet:
//   - Dims: O(1); Diagonal, RowAbsSums, MulVecTo: O(nnz + r).

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// sparseOperator is a read-only view of a Sparser.
type sparseOperator struct {
	s Sparser
}

// Compile-time assertion for interface conformance.
var _ Operator = (*sparseOperator)(nil)

// NewSparseOperator wraps s. The caller must have validated s.
func NewSparseOperator(s Sparser) Operator {
	return &sparseOperator{s: s}
}

// Dims returns the number of rows and columns.
func (o *sparseOperator) Dims() (r, c int) {
	return o.s.Dims()
}

// Diagonal returns a[i,i] for i < min(r,c); unstored entries are zero.
func (o *sparseOperator) Diagonal() []float64 {
	r, c := o.s.Dims()
	diag := make([]float64, min(r, c))
	o.s.DoNonZero(func(i, j int, v float64) {
		if i == j {
			diag[i] += v
		}
	})

	return diag
}

// RowAbsSums returns Σ_j |a[i,j]| over the stored entries of every row.
func (o *sparseOperator) RowAbsSums() []float64 {
	r, _ := o.s.Dims()
	sums := make([]float64, r)
	o.s.DoNonZero(func(i, _ int, v float64) {
		sums[i] += math.Abs(v)
	})

	return sums
}

// MulVecTo stores a·x into dst.
func (o *sparseOperator) MulVecTo(dst *mat.VecDense, x mat.Vector) {
	r, _ := o.s.Dims()
	acc := make([]float64, r)
	o.s.DoNonZero(func(i, j int, v float64) {
		acc[i] += v * x.AtVec(j)
	})
	for i, v := range acc {
		dst.SetVec(i, v)
	}
}
