package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// machEps is the float64 machine epsilon, 2^-52.
const machEps = 2.220446049250313e-16

// Inv returns the inverse of the matrix. Returns an error if the
// matrix is not square or is singular to working precision; the
// wrapped gonum condition error stays reachable through errors.As.
//
// Example:
//
//	a := matrix.MustParse("4 7; 2 6")
//	inv, err := a.Inv()
func (m *Matrix) Inv() (*Matrix, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("inv: matrix must be square, got %dx%d", r, c)
	}
	var out mat.Dense
	if err := out.Inverse(m.d); err != nil {
		return nil, fmt.Errorf("inv: %w", err)
	}
	return asDense(&out), nil
}

// PInv returns the Moore-Penrose pseudoinverse, computed from the thin
// SVD with singular values below max(r,c)·eps·smax treated as zero.
func (m *Matrix) PInv() (*Matrix, error) {
	var svd mat.SVD
	if ok := svd.Factorize(m.d, mat.SVDThin); !ok {
		return nil, fmt.Errorf("pinv: SVD factorization failed")
	}

	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	tol := m.svdTolerance(s)
	k := len(s)
	sinv := mat.NewDense(k, k, nil)
	for i, sv := range s {
		if sv > tol {
			sinv.Set(i, i, 1/sv)
		}
	}

	var tmp, out mat.Dense
	tmp.Mul(&v, sinv)
	out.Mul(&tmp, u.T())
	return asDense(&out), nil
}

// Det returns the determinant. Panics if the matrix is not square,
// following gonum.
func (m *Matrix) Det() float64 {
	return mat.Det(m.d)
}

// Rank returns the numerical rank: the number of singular values
// above max(r,c)·eps·smax, the tolerance dense numeric libraries
// conventionally default to.
func (m *Matrix) Rank() (int, error) {
	var svd mat.SVD
	if ok := svd.Factorize(m.d, mat.SVDThin); !ok {
		return 0, fmt.Errorf("rank: SVD factorization failed")
	}
	s := svd.Values(nil)
	tol := m.svdTolerance(s)
	rank := 0
	for _, sv := range s {
		if sv > tol {
			rank++
		}
	}
	return rank, nil
}

func (m *Matrix) svdTolerance(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	r, c := m.Dims()
	n := r
	if c > n {
		n = c
	}
	return float64(n) * machEps * s[0] // s is sorted descending
}

// Eig computes the eigen-decomposition of a square matrix. It returns
// the eigenvalues and the matrix of right eigenvectors stored column
// by column. Both are complex: real matrices can have conjugate
// eigenpairs.
//
// Example:
//
//	a := matrix.MustParse("2 0; 0 3")
//	vals, vecs, err := a.Eig()
func (m *Matrix) Eig() (values []complex128, vectors *mat.CDense, err error) {
	r, c := m.Dims()
	if r != c {
		return nil, nil, fmt.Errorf("eig: matrix must be square, got %dx%d", r, c)
	}
	var eig mat.Eigen
	if ok := eig.Factorize(m.d, mat.EigenRight); !ok {
		return nil, nil, fmt.Errorf("eig: factorization failed")
	}
	var vecs mat.CDense
	eig.VectorsTo(&vecs)
	return eig.Values(nil), &vecs, nil
}

// Solve solves the linear system m·x = b, MATLAB's \ operator.
// For non-square m the least-squares solution is returned. Returns an
// error when m is singular or the system is otherwise unsolvable.
//
// Example:
//
//	a := matrix.MustParse("3 1; 1 2")
//	b := matrix.MustParse("9; 8")
//	x, err := a.Solve(b) // [2; 3]
func (m *Matrix) Solve(b *Matrix) (*Matrix, error) {
	var out mat.Dense
	if err := out.Solve(m.d, b.d); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	return asDense(&out), nil
}

// Trace returns the sum of the diagonal elements. Panics if the
// matrix is not square, following gonum.
func (m *Matrix) Trace() float64 {
	return mat.Trace(m.d)
}

// Norm returns a matrix norm. Valid orders follow gonum's mat.Norm:
// 1 (maximum absolute column sum), 2 (Frobenius), and +Inf (maximum
// absolute row sum).
func (m *Matrix) Norm(ord float64) float64 {
	return mat.Norm(m.d, ord)
}
