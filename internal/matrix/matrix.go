// Package matrix implements the dense 2-D float64 buffer the network is built on.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a dense matrix stored in row-major order.
//
// Shape is fixed at construction. Operations that combine matrices allocate
// a new result and leave both operands untouched; Set and Data are the only
// ways to write into an existing matrix.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New creates a zero-filled rows x cols matrix.
func New(rows, cols int) (*Matrix, error) {
	return Full(rows, cols, 0)
}

// Full creates a rows x cols matrix with every element set to fill.
func Full(rows, cols int, fill float64) (*Matrix, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	data := make([]float64, shape.NumElements())
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// FromSlice creates a rows x cols matrix from row-major data.
// The slice is copied.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %s requires %d elements, but got %d",
			ErrInvalidShape, shape, shape.NumElements(), len(data))
	}

	m := &Matrix{rows: rows, cols: cols, data: make([]float64, len(data))}
	copy(m.data, data)
	return m, nil
}

// Column creates an [n x 1] column vector.
func Column(values ...float64) *Matrix {
	data := make([]float64, len(values))
	copy(data, values)
	return &Matrix{rows: len(values), cols: 1, data: data}
}

// zeros allocates a matrix for an already validated shape.
func zeros(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns the matrix dimensions.
func (m *Matrix) Shape() Shape {
	return Shape{Rows: m.rows, Cols: m.cols}
}

// Len returns the number of elements.
func (m *Matrix) Len() int {
	return len(m.data)
}

// At returns the element at row r, column c.
// Callers guarantee 0 <= r < Rows and 0 <= c < Cols.
func (m *Matrix) At(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Set writes v at row r, column c.
// Callers guarantee 0 <= r < Rows and 0 <= c < Cols.
func (m *Matrix) Set(r, c int, v float64) {
	m.data[r*m.cols+c] = v
}

// Data returns the row-major backing slice.
//
// WARNING: Modifications to the returned slice will modify the matrix.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := zeros(m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Equal reports whether m and other have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.EqualApprox(other, 0)
}

// EqualApprox reports whether m and other have the same shape and every
// pair of elements differs by at most tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if !m.Shape().Equal(other.Shape()) {
		return false
	}
	for i, v := range m.data {
		d := v - other.data[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}

// String renders the matrix one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix(%s)", m.Shape())
	for r := 0; r < m.rows; r++ {
		sb.WriteString("\n[")
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.6g", m.At(r, c))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
