package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomMatrix(rng *rand.Rand, rows, cols int) *Matrix {
	m := zeros(rows, cols)
	for i := range m.data {
		m.data[i] = rng.Float64()*2 - 1
	}
	return m
}

func TestMul(t *testing.T) {
	a := mustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustFromSlice(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	c, err := a.Mul(b)
	require.NoError(t, err)

	// [1 2 3]   [7  8 ]   [58  64 ]
	// [4 5 6] · [9  10] = [139 154]
	//           [11 12]
	expected := mustFromSlice(t, 2, 2, []float64{58, 64, 139, 154})
	assert.True(t, c.EqualApprox(expected, 1e-12), "got %v", c)
}

func TestMul_ShapeProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for m := 1; m <= 4; m++ {
		for n := 1; n <= 4; n++ {
			for p := 1; p <= 4; p++ {
				c, err := randomMatrix(rng, m, n).Mul(randomMatrix(rng, n, p))
				require.NoError(t, err)
				assert.Equal(t, Shape{Rows: m, Cols: p}, c.Shape())
			}
		}
	}
}

func TestMul_Mismatch(t *testing.T) {
	a := zeros(2, 3)
	b := zeros(4, 2)

	_, err := a.Mul(b)
	require.ErrorIs(t, err, ErrShapeMismatch)

	var sm *ShapeMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, Shape{Rows: 2, Cols: 3}, sm.Left)
	assert.Equal(t, Shape{Rows: 4, Cols: 2}, sm.Right)
}

func TestMul_EmptyInnerDimension(t *testing.T) {
	c, err := zeros(3, 0).Mul(zeros(0, 2))
	require.NoError(t, err)
	assert.Equal(t, Shape{Rows: 3, Cols: 2}, c.Shape())
	assert.Equal(t, 0.0, c.Sum())
}

func TestMul_SelfProduct(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []float64{1, 1, 0, 1})
	c, err := a.Mul(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 0, 1}, c.Data())
}

func TestAddSub(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustFromSlice(t, 2, 2, []float64{10, 20, 30, 40})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Data())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27, 36}, diff.Data())

	// Operands untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
}

func TestAdd_Commutative(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := randomMatrix(rng, 3, 4)
	b := randomMatrix(rng, 3, 4)

	ab, err := a.Add(b)
	require.NoError(t, err)
	ba, err := b.Add(a)
	require.NoError(t, err)
	assert.True(t, ab.EqualApprox(ba, 1e-12))

	c := randomMatrix(rng, 3, 4)
	abc1, err := ab.Add(c)
	require.NoError(t, err)
	bc, err := b.Add(c)
	require.NoError(t, err)
	abc2, err := a.Add(bc)
	require.NoError(t, err)
	assert.True(t, abc1.EqualApprox(abc2, 1e-12))
}

func TestElementwise_Mismatch(t *testing.T) {
	a := zeros(2, 2)
	b := zeros(2, 1)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Sub(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Hadamard(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Dot(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// Transposed shape is still a mismatch: no broadcasting.
	_, err = zeros(1, 2).Add(zeros(2, 1))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestHadamard(t *testing.T) {
	a := Column(1, 2, 3)
	b := Column(4, 5, 6)

	h, err := a.Hadamard(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 10, 18}, h.Data())

	hb, err := b.Hadamard(a)
	require.NoError(t, err)
	assert.True(t, h.Equal(hb))
}

func TestScale(t *testing.T) {
	s := Column(1, -2).Scale(-0.5)
	assert.Equal(t, []float64{-0.5, 1}, s.Data())
}

func TestTranspose(t *testing.T) {
	a := mustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	at := a.T()

	assert.Equal(t, Shape{Rows: 3, Cols: 2}, at.Shape())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, a.At(r, c), at.At(c, r))
		}
	}
}

func TestTranspose_SelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, shape := range []Shape{{1, 1}, {1, 5}, {5, 1}, {3, 7}, {0, 2}} {
		a := randomMatrix(rng, shape.Rows, shape.Cols)
		assert.True(t, a.T().T().Equal(a), "shape %s", shape)
	}
}

func TestApply(t *testing.T) {
	a := Column(-1, 0, 2)
	sq := a.Apply(func(x float64) float64 { return x * x })
	assert.Equal(t, []float64{1, 0, 4}, sq.Data())
	assert.Equal(t, []float64{-1, 0, 2}, a.Data())
}

func TestReductions(t *testing.T) {
	a := Column(3, -5, 1)
	assert.Equal(t, -1.0, a.Sum())
	assert.Equal(t, 9.0, a.AbsSum())
	assert.Equal(t, 5.0, a.MaxAbs())
	assert.Equal(t, 3.0, a.Max())
	assert.Equal(t, 0, a.ArgMax())

	d, err := a.Dot(Column(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, -1.0, d)

	empty := zeros(0, 1)
	assert.Equal(t, 0.0, empty.MaxAbs())
	assert.Equal(t, -1, empty.ArgMax())
}
