package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EMul returns the elementwise (Hadamard) product, MATLAB's .*
// operator. The dimensions must match.
//
// Example:
//
//	a := matrix.MustParse("1 2; 3 4")
//	b := matrix.MustParse("5 6; 7 8")
//	c := a.EMul(b) // [5 12; 21 32]
func (m *Matrix) EMul(other *Matrix) *Matrix {
	var out mat.Dense
	out.MulElem(m.d, other.d)
	return asDense(&out)
}

// EDiv returns the elementwise quotient, MATLAB's ./ operator.
// Division by a zero element yields ±Inf or NaN, as in the
// underlying arithmetic.
func (m *Matrix) EDiv(other *Matrix) *Matrix {
	var out mat.Dense
	out.DivElem(m.d, other.d)
	return asDense(&out)
}

// EPow returns the elementwise power m(i,j)^other(i,j), MATLAB's .^
// operator with a matrix exponent. The dimensions must match.
func (m *Matrix) EPow(other *Matrix) *Matrix {
	r, c := m.Dims()
	or, oc := other.Dims()
	if r != or || c != oc {
		panic(mat.ErrShape)
	}
	var out mat.Dense
	out.Apply(func(i, j int, v float64) float64 {
		return math.Pow(v, other.d.At(i, j))
	}, m.d)
	return asDense(&out)
}

// EPowScalar returns the elementwise power m(i,j)^p, MATLAB's .^
// operator with a scalar exponent.
//
// Example:
//
//	a := matrix.MustParse("1 2; 3 4")
//	sq := a.EPowScalar(2) // [1 4; 9 16]
func (m *Matrix) EPowScalar(p float64) *Matrix {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return math.Pow(v, p) }, m.d)
	return asDense(&out)
}
