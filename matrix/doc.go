// Copyright 2026 NetCircuit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the dense matrix type the
// network is built on.
//
// A Matrix is a row-major float64 buffer with a fixed shape. Arithmetic
// returns new matrices and reports incompatible shapes as errors that match
// ErrShapeMismatch; nothing is ever broadcast.
//
// Example:
//
//	w, _ := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	x := matrix.Column(1, 0, -1)
//	y, err := w.Mul(x)  // shape: 2x1
package matrix
