package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// dense wraps the backing slice in a gonum view without copying.
// The matrix must be non-empty.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}

// Mul returns the matrix product m·other.
//
// Requires m.Cols() == other.Rows(). Result shape is [m.Rows() x other.Cols()].
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, mismatch("multiply", m.Shape(), other.Shape())
	}

	out := zeros(m.rows, other.cols)
	if out.Len() == 0 || m.cols == 0 {
		// Empty inner dimension: every dot product is the empty sum.
		return out, nil
	}
	out.dense().Mul(m.dense(), other.dense())
	return out, nil
}

// Add returns the element-wise sum. Shapes must match exactly.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if !m.Shape().Equal(other.Shape()) {
		return nil, mismatch("add", m.Shape(), other.Shape())
	}
	out := zeros(m.rows, m.cols)
	floats.AddTo(out.data, m.data, other.data)
	return out, nil
}

// Sub returns the element-wise difference m - other. Shapes must match exactly.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if !m.Shape().Equal(other.Shape()) {
		return nil, mismatch("subtract", m.Shape(), other.Shape())
	}
	out := zeros(m.rows, m.cols)
	floats.SubTo(out.data, m.data, other.data)
	return out, nil
}

// Hadamard returns the element-wise product. Shapes must match exactly.
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	if !m.Shape().Equal(other.Shape()) {
		return nil, mismatch("hadamard", m.Shape(), other.Shape())
	}
	out := zeros(m.rows, m.cols)
	floats.MulTo(out.data, m.data, other.data)
	return out, nil
}

// Scale returns k·m.
func (m *Matrix) Scale(k float64) *Matrix {
	out := zeros(m.rows, m.cols)
	floats.ScaleTo(out.data, k, m.data)
	return out
}

// T returns the transpose.
func (m *Matrix) T() *Matrix {
	out := zeros(m.cols, m.rows)
	if out.Len() == 0 {
		return out
	}
	out.dense().Copy(m.dense().T())
	return out
}

// Apply returns a new matrix with fn applied to every element.
func (m *Matrix) Apply(fn func(float64) float64) *Matrix {
	out := zeros(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = fn(v)
	}
	return out
}

// Dot returns the sum of element-wise products. Shapes must match exactly.
func (m *Matrix) Dot(other *Matrix) (float64, error) {
	if !m.Shape().Equal(other.Shape()) {
		return 0, mismatch("dot", m.Shape(), other.Shape())
	}
	return floats.Dot(m.data, other.data), nil
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data)
}

// AbsSum returns the sum of absolute values (the L1 norm of the elements).
func (m *Matrix) AbsSum() float64 {
	return floats.Norm(m.data, 1)
}

// MaxAbs returns the largest absolute value, or 0 for an empty matrix.
func (m *Matrix) MaxAbs() float64 {
	return floats.Norm(m.data, math.Inf(1))
}

// Max returns the largest element, or -Inf for an empty matrix.
func (m *Matrix) Max() float64 {
	if len(m.data) == 0 {
		return math.Inf(-1)
	}
	return floats.Max(m.data)
}

// ArgMax returns the flat index of the largest element, or -1 for an empty matrix.
func (m *Matrix) ArgMax() int {
	if len(m.data) == 0 {
		return -1
	}
	return floats.MaxIdx(m.data)
}
