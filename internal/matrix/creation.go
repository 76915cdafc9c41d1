package matrix

import (
	"fmt"
	"math/rand"
)

func mustNew(r, c int, data []float64) *Matrix {
	m, err := New(r, c, data)
	if err != nil {
		panic(err) // Dimension validation at the call site should prevent this
	}
	return m
}

// Zeros creates an r×c matrix of zeros.
//
// Example:
//
//	z := matrix.Zeros(3, 4)
func Zeros(r, c int) *Matrix {
	return mustNew(r, c, nil)
}

// Ones creates an r×c matrix of ones.
func Ones(r, c int) *Matrix {
	return Full(r, c, 1)
}

// Full creates an r×c matrix with every element set to v.
func Full(r, c int, v float64) *Matrix {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = v
	}
	return mustNew(r, c, data)
}

// Eye creates the n×n identity matrix.
//
// Example:
//
//	i3 := matrix.Eye(3)
func Eye(n int) *Matrix {
	m := Zeros(n, n)
	for i := 1; i <= n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Rand creates an r×c matrix with elements drawn uniformly from [0, 1)
// using the shared math/rand source.
func Rand(r, c int) *Matrix {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rand.Float64() //nolint:gosec // G404: numeric prototyping uses math/rand intentionally
	}
	return mustNew(r, c, data)
}

// Randn creates an r×c matrix with elements drawn from the standard
// normal distribution N(0, 1).
func Randn(r, c int) *Matrix {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rand.NormFloat64() //nolint:gosec // G404: numeric prototyping uses math/rand intentionally
	}
	return mustNew(r, c, data)
}

// Linspace creates a 1×n row vector of n evenly spaced values from a
// to b inclusive. For n == 1 the result contains b, as in MATLAB.
//
// Example:
//
//	x := matrix.Linspace(0, 1, 5) // [0  0.25  0.5  0.75  1]
func Linspace(a, b float64, n int) *Matrix {
	if n < 1 {
		panic(fmt.Sprintf("linspace: n must be at least 1, got %d", n))
	}
	if n == 1 {
		return mustNew(1, 1, []float64{b})
	}
	data := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range data {
		data[i] = a + float64(i)*step
	}
	data[n-1] = b // avoid drift in the endpoint
	return mustNew(1, n, data)
}

// Diag mirrors MATLAB's diag duality. Given a row or column vector of
// length n it returns the n×n matrix with that diagonal; given any
// other matrix it returns the main diagonal as a column vector.
//
// Example:
//
//	d := matrix.Diag(matrix.MustParse("1 2 3")) // 3×3 diagonal matrix
//	v := matrix.Diag(d)                         // 3×1 column vector [1; 2; 3]
func Diag(m *Matrix) *Matrix {
	r, c := m.Dims()
	if r == 1 || c == 1 {
		n := r * c
		out := Zeros(n, n)
		for i := 0; i < n; i++ {
			if r == 1 {
				out.Set(i+1, i+1, m.d.At(0, i))
			} else {
				out.Set(i+1, i+1, m.d.At(i, 0))
			}
		}
		return out
	}
	n := minInt(r, c)
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = m.d.At(i, i)
	}
	return mustNew(n, 1, data)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
