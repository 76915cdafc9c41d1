// Copyright 2025 The golab Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix is the public API for golab matrices. It re-exports
// the implementation in internal/matrix.
package matrix

import (
	gomat "gonum.org/v1/gonum/mat"

	"github.com/golab-num/golab/internal/matrix"
)

// Matrix is a MATLAB-like matrix: two-dimensional, float64 elements,
// 1-based indexing. See the package documentation for the operator
// mapping.
type Matrix = matrix.Matrix

// Construction

// New creates an r×c matrix from row-major data. A nil data slice
// yields a zero matrix.
func New(r, c int, data []float64) (*Matrix, error) {
	return matrix.New(r, c, data)
}

// FromDense creates a Matrix from a gonum Dense. The data is copied.
func FromDense(d *gomat.Dense) *Matrix {
	return matrix.FromDense(d)
}

// FromSlices creates a matrix from a slice of equally sized rows.
func FromSlices(rows [][]float64) (*Matrix, error) {
	return matrix.FromSlices(rows)
}

// Parse builds a matrix from a MATLAB-style literal such as
// "1 2; 3 4". Rows split on semicolons or newlines, columns on spaces
// and/or commas.
//
// Example:
//
//	a, err := matrix.Parse("1 2 3; 4 5 6")
func Parse(expr string) (*Matrix, error) {
	return matrix.Parse(expr)
}

// MustParse is like Parse but panics on error. Intended for literals
// written directly in source.
func MustParse(expr string) *Matrix {
	return matrix.MustParse(expr)
}

// MATLAB-style constructors

// Zeros creates an r×c matrix of zeros.
func Zeros(r, c int) *Matrix { return matrix.Zeros(r, c) }

// Ones creates an r×c matrix of ones.
func Ones(r, c int) *Matrix { return matrix.Ones(r, c) }

// Full creates an r×c matrix with every element set to v.
func Full(r, c int, v float64) *Matrix { return matrix.Full(r, c, v) }

// Eye creates the n×n identity matrix.
func Eye(n int) *Matrix { return matrix.Eye(n) }

// Rand creates an r×c matrix with elements drawn uniformly from [0, 1).
func Rand(r, c int) *Matrix { return matrix.Rand(r, c) }

// Randn creates an r×c matrix with elements drawn from N(0, 1).
func Randn(r, c int) *Matrix { return matrix.Randn(r, c) }

// Linspace creates a 1×n row vector of evenly spaced values from a to
// b inclusive.
func Linspace(a, b float64, n int) *Matrix { return matrix.Linspace(a, b, n) }

// Diag returns the diagonal matrix of a vector, or the main diagonal
// of a matrix as a column vector, mirroring MATLAB's diag duality.
func Diag(m *Matrix) *Matrix { return matrix.Diag(m) }

// Concatenation

// HCat concatenates matrices left to right, the literal [A B C].
func HCat(ms ...*Matrix) *Matrix { return matrix.HCat(ms...) }

// VCat concatenates matrices top to bottom, the literal [A; B; C].
func VCat(ms ...*Matrix) *Matrix { return matrix.VCat(ms...) }

// Block assembles a block matrix from a grid of submatrices, the
// literal [A B; C D].
func Block(rows [][]*Matrix) (*Matrix, error) { return matrix.Block(rows) }
