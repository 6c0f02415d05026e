// SPDX-License-Identifier: MIT

// Package matrix - dense Operator over gonum row-major storage.
//
// Purpose:
//   - Adapt *mat.Dense to the Operator capability set without copying it.
//   - Read the raw blas64.General buffer directly (offset = i*Stride + j);
//     nothing is ever written back to it.
//   - Keep fixed i→j loop orders so results are bit-for-bit reproducible.
//
// Complexity quicksheet:
//   - Dims: O(1); Diagonal: O(min(r,c)); RowAbsSums: O(r*c); MulVecTo: O(r*c).

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// denseOperator is a read-only view of a *mat.Dense.
type denseOperator struct {
	m *mat.Dense
}

// Compile-time assertion for interface conformance.
var _ Operator = (*denseOperator)(nil)

// NewDenseOperator wraps d. The caller must have validated d (non-nil,
// non-empty); the operator keeps a reference, not a copy.
func NewDenseOperator(d *mat.Dense) Operator {
	return &denseOperator{m: d}
}

// Dims returns the number of rows and columns.
func (o *denseOperator) Dims() (r, c int) {
	return o.m.Dims()
}

// Diagonal returns a copy of the main diagonal.
func (o *denseOperator) Diagonal() []float64 {
	raw := o.m.RawMatrix()
	n := min(raw.Rows, raw.Cols)
	diag := make([]float64, n)
	for i := 0; i < n; i++ {
		diag[i] = raw.Data[i*raw.Stride+i]
	}

	return diag
}

// RowAbsSums returns Σ_j |a[i,j]| for every row i.
func (o *denseOperator) RowAbsSums() []float64 {
	raw := o.m.RawMatrix()
	sums := make([]float64, raw.Rows)

	var (
		i, j, base int
		acc        float64
	)
	for i = 0; i < raw.Rows; i++ { // deterministic row order
		acc = 0
		base = i * raw.Stride
		for j = 0; j < raw.Cols; j++ {
			acc += math.Abs(raw.Data[base+j])
		}
		sums[i] = acc
	}

	return sums
}

// MulVecTo stores a·x into dst using gonum's BLAS-backed kernel.
func (o *denseOperator) MulVecTo(dst *mat.VecDense, x mat.Vector) {
	dst.MulVec(o.m, x)
}
