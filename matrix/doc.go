// Copyright 2025 The golab Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides MATLAB-like matrix syntax on top of gonum.
//
// # Overview
//
// golab is a thin convenience layer, not an engine. It offers:
//   - MATLAB-style literals: Parse("1 2; 3 4")
//   - 1-based indexing: a.At(1, 2)
//   - Distinct elementwise and matrix operators: EMul vs Mul
//   - Concatenation helpers: HCat, VCat, Block
//
// Every numerical operation delegates to gonum.org/v1/gonum/mat; this
// package only remaps the surface syntax.
//
// # Basic Usage
//
//	import "github.com/golab-num/golab/matrix"
//
//	func main() {
//	    a := matrix.MustParse("1 2; 3 4")
//	    b := matrix.MustParse("5 6; 7 8")
//
//	    c := a.Mul(b)  // matrix product, MATLAB *
//	    d := a.EMul(b) // elementwise product, MATLAB .*
//
//	    inv, err := a.Inv()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(inv)
//	}
//
// # Errors and Panics
//
// The split follows gonum's convention: shape mismatches and bad
// indices are programmer errors and panic; data-dependent failures
// (unparsable literals, singular matrices, failed factorizations)
// return errors.
package matrix
