// Package system loads a linear-system description (matrix A and optional
// vectors x and b) from YAML or JSON into gonum and james-bowman/sparse
// values.
//
// The loader only guarantees that the values can be constructed without
// panicking. Whether they make a valid diagnostic input (square, matching
// lengths, ...) is left to the dominance and residual packages.
package system

import (
	"errors"
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Matrix storage formats accepted in a system file.
const (
	FormatDense = "dense"
	FormatCSC   = "csc"
	FormatCSR   = "csr"
	FormatCOO   = "coo"
)

// ErrMalformedSystem reports a system file whose contents cannot be turned
// into a matrix or vector.
var ErrMalformedSystem = errors.New("system: malformed system description")

// Spec is the on-disk shape of a system file.
type Spec struct {
	Matrix MatrixSpec `koanf:"matrix"`
	X      []float64  `koanf:"x"`
	B      []float64  `koanf:"b"`
}

// MatrixSpec describes A in one of the supported formats.
//
//   - dense: Data holds Rows*Cols values in row-major order.
//   - csc:   Indptr has Cols+1 entries, Indices holds row indices.
//   - csr:   Indptr has Rows+1 entries, Indices holds column indices.
//   - coo:   Row, Col and Data are parallel triplet arrays.
type MatrixSpec struct {
	Format  string    `koanf:"format"`
	Rows    int       `koanf:"rows"`
	Cols    int       `koanf:"cols"`
	Data    []float64 `koanf:"data"`
	Indptr  []int     `koanf:"indptr"`
	Indices []int     `koanf:"indices"`
	Row     []int     `koanf:"row"`
	Col     []int     `koanf:"col"`
}

// System is a loaded linear system. X and B are nil when the file omits them.
type System struct {
	Format string
	A      mat.Matrix
	X      *mat.VecDense
	B      *mat.VecDense
}

// malformedf wraps ErrMalformedSystem with a formatted reason.
func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedSystem, fmt.Sprintf(format, args...))
}

// Build constructs the System described by s.
func (s Spec) Build() (*System, error) {
	a, err := s.Matrix.build()
	if err != nil {
		return nil, err
	}

	return &System{
		Format: s.Matrix.Format,
		A:      a,
		X:      vector(s.X),
		B:      vector(s.B),
	}, nil
}

// vector returns nil for an absent (empty) list; gonum has no zero-length
// VecDense constructor.
func vector(v []float64) *mat.VecDense {
	if len(v) == 0 {
		return nil
	}

	return mat.NewVecDense(len(v), v)
}

func (m MatrixSpec) build() (mat.Matrix, error) {
	if m.Rows <= 0 || m.Cols <= 0 {
		return nil, malformedf("rows and cols must be > 0, got %d×%d", m.Rows, m.Cols)
	}

	switch m.Format {
	case FormatDense:
		if len(m.Data) != m.Rows*m.Cols {
			return nil, malformedf("dense data has %d values, want %d", len(m.Data), m.Rows*m.Cols)
		}
		return mat.NewDense(m.Rows, m.Cols, m.Data), nil

	case FormatCSC:
		if err := checkCompressed(m.Indptr, m.Indices, m.Data, m.Cols, m.Rows); err != nil {
			return nil, err
		}
		return sparse.NewCSC(m.Rows, m.Cols, m.Indptr, m.Indices, m.Data), nil

	case FormatCSR:
		if err := checkCompressed(m.Indptr, m.Indices, m.Data, m.Rows, m.Cols); err != nil {
			return nil, err
		}
		return sparse.NewCSR(m.Rows, m.Cols, m.Indptr, m.Indices, m.Data), nil

	case FormatCOO:
		if len(m.Row) != len(m.Data) || len(m.Col) != len(m.Data) {
			return nil, malformedf("coo arrays differ in length: row=%d col=%d data=%d", len(m.Row), len(m.Col), len(m.Data))
		}
		for k := range m.Data {
			if m.Row[k] < 0 || m.Row[k] >= m.Rows || m.Col[k] < 0 || m.Col[k] >= m.Cols {
				return nil, malformedf("coo entry %d at (%d,%d) is outside %d×%d", k, m.Row[k], m.Col[k], m.Rows, m.Cols)
			}
		}
		return sparse.NewCOO(m.Rows, m.Cols, m.Row, m.Col, m.Data), nil

	default:
		return nil, malformedf("unknown matrix format %q", m.Format)
	}
}

// checkCompressed validates a compressed layout with major dimension major
// (columns for CSC, rows for CSR) and minor index bound minor.
func checkCompressed(indptr, indices []int, data []float64, major, minor int) error {
	if len(indptr) != major+1 {
		return malformedf("indptr has %d entries, want %d", len(indptr), major+1)
	}
	if indptr[0] != 0 {
		return malformedf("indptr must start at 0, got %d", indptr[0])
	}
	for k := 1; k < len(indptr); k++ {
		if indptr[k] < indptr[k-1] {
			return malformedf("indptr decreases at %d", k)
		}
	}
	nnz := indptr[major]
	if len(indices) != nnz || len(data) != nnz {
		return malformedf("indptr ends at %d but indices=%d data=%d", nnz, len(indices), len(data))
	}
	for k, idx := range indices {
		if idx < 0 || idx >= minor {
			return malformedf("index %d at position %d is outside [0,%d)", idx, k, minor)
		}
	}

	return nil
}
