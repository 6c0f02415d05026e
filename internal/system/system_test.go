package system_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsys/internal/system"
)

// want is the matrix every well-formed fixture below describes:
//
//	[[4, 0, 1],
//	 [0, 3, 0]]
var want = mat.NewDense(2, 3, []float64{4, 0, 1, 0, 3, 0})

func TestParse_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		format string
		check  func(t *testing.T, a mat.Matrix)
	}{
		{
			name: "dense",
			body: `
matrix:
  format: dense
  rows: 2
  cols: 3
  data: [4, 0, 1, 0, 3, 0]
x: [1, 1, 1]
b: [5, 3]
`,
			check: func(t *testing.T, a mat.Matrix) { assert.IsType(t, &mat.Dense{}, a) },
		},
		{
			name: "csc",
			body: `
matrix:
  format: CSC
  rows: 2
  cols: 3
  indptr: [0, 1, 2, 3]
  indices: [0, 1, 0]
  data: [4, 3, 1]
x: [1, 1, 1]
b: [5, 3]
`,
			check: func(t *testing.T, a mat.Matrix) { assert.IsType(t, &sparse.CSC{}, a) },
		},
		{
			name: "csr",
			body: `
matrix:
  format: csr
  rows: 2
  cols: 3
  indptr: [0, 2, 3]
  indices: [0, 2, 1]
  data: [4, 1, 3]
x: [1, 1, 1]
b: [5, 3]
`,
			check: func(t *testing.T, a mat.Matrix) { assert.IsType(t, &sparse.CSR{}, a) },
		},
		{
			name:   "coo json",
			format: "json",
			body: `{
  "matrix": {"format": "coo", "rows": 2, "cols": 3,
             "row": [0, 0, 1], "col": [0, 2, 1], "data": [4, 1, 3]},
  "x": [1, 1, 1],
  "b": [5, 3]
}`,
			check: func(t *testing.T, a mat.Matrix) { assert.IsType(t, &sparse.COO{}, a) },
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			format := tc.format
			if format == "" {
				format = "yaml"
			}
			sys, err := system.Parse([]byte(tc.body), format)
			require.NoError(t, err)

			tc.check(t, sys.A)
			assert.True(t, mat.Equal(want, sys.A), "matrix content")
			require.NotNil(t, sys.X)
			require.NotNil(t, sys.B)
			assert.Equal(t, []float64{1, 1, 1}, sys.X.RawVector().Data)
			assert.Equal(t, []float64{5, 3}, sys.B.RawVector().Data)
		})
	}
}

func TestParse_VectorsOptional(t *testing.T) {
	t.Parallel()

	sys, err := system.Parse([]byte("matrix: {format: dense, rows: 1, cols: 1, data: [2]}\n"), "yaml")
	require.NoError(t, err)
	assert.Nil(t, sys.X)
	assert.Nil(t, sys.B)
	assert.Equal(t, system.FormatDense, sys.Format)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown format":       "matrix: {format: dia, rows: 1, cols: 1}",
		"zero rows":            "matrix: {format: dense, rows: 0, cols: 1, data: []}",
		"dense length":         "matrix: {format: dense, rows: 2, cols: 2, data: [1, 2, 3]}",
		"csc indptr length":    "matrix: {format: csc, rows: 2, cols: 2, indptr: [0, 1], indices: [0], data: [1]}",
		"csc indptr start":     "matrix: {format: csc, rows: 2, cols: 2, indptr: [1, 1, 1], indices: [], data: []}",
		"csc indptr decreases": "matrix: {format: csc, rows: 2, cols: 2, indptr: [0, 2, 1], indices: [0, 1], data: [1, 2]}",
		"csc nnz mismatch":     "matrix: {format: csc, rows: 2, cols: 2, indptr: [0, 1, 2], indices: [0], data: [1, 2]}",
		"csr index range":      "matrix: {format: csr, rows: 2, cols: 2, indptr: [0, 1, 2], indices: [0, 2], data: [1, 2]}",
		"coo lengths":          "matrix: {format: coo, rows: 2, cols: 2, row: [0], col: [0, 1], data: [1]}",
		"coo range":            "matrix: {format: coo, rows: 2, cols: 2, row: [2], col: [0], data: [1]}",
	}

	for name, body := range tests {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := system.Parse([]byte(body), "yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, system.ErrMalformedSystem)
		})
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sys.json")
	body := `{"matrix": {"format": "dense", "rows": 2, "cols": 2, "data": [1, 0, 0, 1]}, "x": [0, 0], "b": [3, 4]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	sys, err := system.Load(path)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), sys.A))

	_, err = system.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
