package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// HCat concatenates matrices left to right, the MATLAB literal
// [A B C]. All arguments must have the same number of rows; gonum
// panics with ErrShape otherwise. Panics on an empty argument list.
//
// Example:
//
//	a := matrix.MustParse("1 2; 3 4")
//	b := matrix.MustParse("5; 6")
//	c := matrix.HCat(a, b) // [1 2 5; 3 4 6]
func HCat(ms ...*Matrix) *Matrix {
	if len(ms) == 0 {
		panic("hcat: at least one matrix required")
	}
	out := ms[0].Clone()
	for _, m := range ms[1:] {
		var next mat.Dense
		next.Augment(out.d, m.d)
		out = asDense(&next)
	}
	return out
}

// VCat concatenates matrices top to bottom, the MATLAB literal
// [A; B; C]. All arguments must have the same number of columns.
// Panics on an empty argument list.
//
// Example:
//
//	a := matrix.MustParse("1 2")
//	b := matrix.MustParse("3 4")
//	c := matrix.VCat(a, b) // [1 2; 3 4]
func VCat(ms ...*Matrix) *Matrix {
	if len(ms) == 0 {
		panic("vcat: at least one matrix required")
	}
	out := ms[0].Clone()
	for _, m := range ms[1:] {
		var next mat.Dense
		next.Stack(out.d, m.d)
		out = asDense(&next)
	}
	return out
}

// Block assembles a block matrix from a grid of submatrices, the
// MATLAB literal [A B; C D]: each inner slice is concatenated
// horizontally, then the rows are stacked. Returns an error on an
// empty grid or an empty row.
//
// Example:
//
//	m, err := matrix.Block([][]*matrix.Matrix{
//	    {a, b},
//	    {c, d},
//	})
func Block(rows [][]*Matrix) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("block: empty grid")
	}
	stacked := make([]*Matrix, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("block: row %d is empty", i+1)
		}
		stacked[i] = HCat(row...)
	}
	return VCat(stacked...), nil
}
