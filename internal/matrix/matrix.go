// Package matrix implements the MATLAB-flavored matrix wrapper for golab.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a MATLAB-like matrix: always two-dimensional, float64
// elements, 1-based indexing. Vectors are 1×n or n×1 matrices.
//
// All numerical work is delegated to gonum's dense linear algebra;
// Matrix adds only the MATLAB-style surface.
//
// Example:
//
//	a := matrix.MustParse("1 2; 3 4")
//	b := a.Mul(a.T()) // matrix product
type Matrix struct {
	d *mat.Dense
}

// New creates an r×c matrix from row-major data.
// A nil data slice yields a zero matrix.
func New(r, c int, data []float64) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d (must be positive)", r, c)
	}
	if data != nil && len(data) != r*c {
		return nil, fmt.Errorf("%dx%d matrix requires %d elements, but got %d", r, c, r*c, len(data))
	}
	return &Matrix{d: mat.NewDense(r, c, data)}, nil
}

// FromDense creates a Matrix from a gonum Dense. The data is copied.
func FromDense(d *mat.Dense) *Matrix {
	return &Matrix{d: mat.DenseCopyOf(d)}
}

// FromSlices creates a matrix from a slice of rows.
// All rows must have the same length.
func FromSlices(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty matrix")
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", i+1, len(row), c)
		}
		data = append(data, row...)
	}
	return &Matrix{d: mat.NewDense(len(rows), c, data)}, nil
}

// asDense wraps a Dense without copying. Internal constructor for
// results we already own.
func asDense(d *mat.Dense) *Matrix {
	return &Matrix{d: d}
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) {
	return m.d.Dims()
}

// At returns the element at row i, column j. Indices are 1-based,
// as in MATLAB. Panics if an index is out of range.
//
// Example:
//
//	a := matrix.MustParse("1 2; 3 4")
//	v := a.At(1, 2) // 2, the first row's second element
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.d.At(i-1, j-1)
}

// Set assigns the element at row i, column j. Indices are 1-based.
// Panics if an index is out of range.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.d.Set(i-1, j-1, v)
}

func (m *Matrix) checkIndex(i, j int) {
	r, c := m.d.Dims()
	if i < 1 || i > r {
		panic(fmt.Sprintf("row index %d out of range [1, %d]", i, r))
	}
	if j < 1 || j > c {
		panic(fmt.Sprintf("column index %d out of range [1, %d]", j, c))
	}
}

// T returns the transpose as a new matrix.
func (m *Matrix) T() *Matrix {
	return asDense(mat.DenseCopyOf(m.d.T()))
}

// H returns the conjugate transpose. Elements are real, so H equals T;
// it exists for parity with the A' operator.
func (m *Matrix) H() *Matrix {
	return m.T()
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	return asDense(mat.DenseCopyOf(m.d))
}

// Raw returns the underlying gonum Dense. The matrix shares the
// returned value's data; mutate with care.
func (m *Matrix) Raw() *mat.Dense {
	return m.d
}

// Equal reports whether m and other have the same dimensions and
// exactly equal elements.
func (m *Matrix) Equal(other *Matrix) bool {
	return mat.Equal(m.d, other.d)
}

// EqualApprox reports whether m and other have the same dimensions and
// all elements within tol of each other.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	return mat.EqualApprox(m.d, other.d, tol)
}

// String returns a human-readable layout of the matrix.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.d, mat.Squeeze()))
}
