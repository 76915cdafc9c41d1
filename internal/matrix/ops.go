package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Add returns m + other, elementwise. The dimensions must match;
// gonum panics with ErrShape otherwise.
//
// Example:
//
//	a := matrix.MustParse("1 2; 3 4")
//	b := matrix.MustParse("5 6; 7 8")
//	c := a.Add(b) // [6 8; 10 12]
func (m *Matrix) Add(other *Matrix) *Matrix {
	var out mat.Dense
	out.Add(m.d, other.d)
	return asDense(&out)
}

// Sub returns m - other, elementwise.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	var out mat.Dense
	out.Sub(m.d, other.d)
	return asDense(&out)
}

// Mul returns the matrix product m·other, MATLAB's * operator.
// The inner dimensions must agree.
//
// Example:
//
//	a := matrix.MustParse("1 2; 3 4")
//	b := matrix.MustParse("5 6; 7 8")
//	c := a.Mul(b) // [19 22; 43 50]
func (m *Matrix) Mul(other *Matrix) *Matrix {
	var out mat.Dense
	out.Mul(m.d, other.d)
	return asDense(&out)
}

// Div returns the right division m·inv(other), MATLAB's / operator.
// Returns an error if other is not square or not invertible.
//
// Solve is better conditioned for solving linear systems; Div exists
// for operator parity.
func (m *Matrix) Div(other *Matrix) (*Matrix, error) {
	inv, err := other.Inv()
	if err != nil {
		return nil, fmt.Errorf("div: %w", err)
	}
	return m.Mul(inv), nil
}

// Pow returns the matrix power m^p, MATLAB's ^ operator. The matrix
// must be square. p == 0 yields the identity; negative p raises the
// inverse, so an error is returned when m is singular.
//
// Example:
//
//	a := matrix.MustParse("1 2; 3 4")
//	sq := a.Pow(2) // a·a
func (m *Matrix) Pow(p int) (*Matrix, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("pow: matrix must be square, got %dx%d", r, c)
	}

	base := m
	if p < 0 {
		inv, err := m.Inv()
		if err != nil {
			return nil, fmt.Errorf("pow: %w", err)
		}
		base = inv
		p = -p
	}

	out := Eye(r)
	for i := 0; i < p; i++ {
		out = out.Mul(base)
	}
	return out, nil
}

// Scale returns c*m, scalar multiplication.
func (m *Matrix) Scale(c float64) *Matrix {
	var out mat.Dense
	out.Scale(c, m.d)
	return asDense(&out)
}

// AddScalar returns the matrix with c added to every element.
func (m *Matrix) AddScalar(c float64) *Matrix {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return v + c }, m.d)
	return asDense(&out)
}
