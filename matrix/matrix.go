// Copyright 2026 NetCircuit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/netcircuit/netcircuit/internal/matrix"
)

// Matrix is a dense row-major float64 matrix.
type Matrix = matrix.Matrix

// Shape holds the dimensions of a matrix.
type Shape = matrix.Shape

// ShapeMismatchError reports two operands that cannot be combined.
type ShapeMismatchError = matrix.ShapeMismatchError

// Errors.
var (
	ErrShapeMismatch = matrix.ErrShapeMismatch
	ErrInvalidShape  = matrix.ErrInvalidShape
)

// New creates a zero-filled rows x cols matrix.
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// Full creates a rows x cols matrix filled with fill.
func Full(rows, cols int, fill float64) (*Matrix, error) {
	return matrix.Full(rows, cols, fill)
}

// FromSlice creates a rows x cols matrix from row-major data (copied).
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data)
}

// Column creates an [n x 1] column vector.
func Column(values ...float64) *Matrix {
	return matrix.Column(values...)
}
