package dominance_test

import (
	"errors"
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsys/dominance"
	"github.com/katalvlaran/linsys/matrix"
)

// ExampleIsDiagonallyDominant checks the two textbook 2×2 cases.
//
//	[[4, 1],     4 > 1 and 3 > 1  → dominant
//	 [1, 3]]
//
//	[[2, 3],     2 < 3            → not dominant
//	 [1, 1]]
func ExampleIsDiagonallyDominant() {
	good := mat.NewDense(2, 2, []float64{4, 1, 1, 3})
	bad := mat.NewDense(2, 2, []float64{2, 3, 1, 1})

	ok, err := dominance.IsDiagonallyDominant(good)
	fmt.Println(ok, err)

	ok, err = dominance.IsDiagonallyDominant(bad)
	fmt.Println(ok, err)
	// Output:
	// true <nil>
	// false <nil>
}

// ExampleIsDiagonallyDominant_sparse runs the same check on CSC storage.
func ExampleIsDiagonallyDominant_sparse() {
	// [[ 5, 0, 1],
	//  [ 0, 4, 2],
	//  [-1, 1, 3]]
	csc := sparse.NewCSC(3, 3,
		[]int{0, 2, 4, 7},
		[]int{0, 2, 1, 2, 0, 1, 2},
		[]float64{5, -1, 4, 1, 1, 2, 3},
	)

	ok, err := dominance.IsDiagonallyDominant(csc)
	fmt.Println(ok, err)
	// Output:
	// true <nil>
}

// ExampleIsDiagonallyDominant_invalid shows that a non-square matrix yields
// no verdict.
func ExampleIsDiagonallyDominant_invalid() {
	a := mat.NewDense(2, 3, []float64{1, 0, 0, 0, 1, 0})

	_, err := dominance.IsDiagonallyDominant(a)
	fmt.Println(errors.Is(err, matrix.ErrInvalidInput), errors.Is(err, matrix.ErrNonSquare))
	// Output:
	// true true
}

// ExampleViolatingRows lists the rows that break dominance.
func ExampleViolatingRows() {
	a := mat.NewDense(3, 3, []float64{
		4, 1, 1,
		1, 1, 1,
		0, 2, 2,
	})

	rows, _ := dominance.ViolatingRows(a)
	margins, _ := dominance.Margins(a)
	fmt.Println(rows, margins)
	// Output:
	// [1 2] [2 -1 0]
}
