package matrix

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromSlice(t *testing.T, rows, cols int, data []float64) *Matrix {
	t.Helper()
	m, err := FromSlice(rows, cols, data)
	require.NoError(t, err)
	return m
}

func TestFull(t *testing.T) {
	m, err := Full(2, 3, 1.5)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for _, v := range m.Data() {
		assert.Equal(t, 1.5, v)
	}
}

func TestNew_ZeroSized(t *testing.T) {
	m, err := New(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, Shape{Rows: 0, Cols: 4}, m.Shape())
}

func TestNew_InvalidShape(t *testing.T) {
	_, err := New(-1, 3)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = New(math.MaxInt, 2)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := FromSlice(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestFromSlice_Copies(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m := mustFromSlice(t, 2, 2, src)
	src[0] = 99
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestAtSet_RowMajor(t *testing.T) {
	m := mustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, 2.0, m.At(0, 1))

	m.Set(1, 0, -7)
	assert.Equal(t, -7.0, m.Data()[3])
}

func TestColumn(t *testing.T) {
	v := Column(1, 2, 3)
	assert.Equal(t, Shape{Rows: 3, Cols: 1}, v.Shape())
	assert.True(t, v.Shape().IsColumn())
	assert.Equal(t, 3.0, v.At(2, 0))
}

func TestClone_Independent(t *testing.T) {
	m := Column(1, 2)
	c := m.Clone()
	c.Set(0, 0, 10)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.False(t, m.Equal(c))
}

func TestEqualApprox(t *testing.T) {
	a := Column(1, 2)
	b := Column(1+1e-9, 2)
	assert.True(t, a.EqualApprox(b, 1e-6))
	assert.False(t, a.Equal(b))
	assert.False(t, a.EqualApprox(a.T(), 1))
}

func TestString(t *testing.T) {
	m := mustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, "Matrix(2x2)\n[1 2]\n[3 4]", m.String())
}

func TestShapeMismatchError_Message(t *testing.T) {
	err := mismatch("multiply", Shape{Rows: 2, Cols: 3}, Shape{Rows: 4, Cols: 1})

	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.Contains(t, err.Error(), "2x3")
	assert.Contains(t, err.Error(), "4x1")

	var sm *ShapeMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "multiply", sm.Op)
}
