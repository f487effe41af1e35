package nn

import (
	"fmt"

	"github.com/netcircuit/netcircuit/internal/matrix"
)

// Layer is one affine transform followed by an activation.
//
// Performs: a = act(W·x + b)
// where:
//   - x is a column vector with shape [in_features, 1]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias column with shape [out_features, 1]
//
// Shapes are fixed once the layer exists; training only rewrites values.
type Layer struct {
	weights    *matrix.Matrix // [out_features, in_features]
	bias       *matrix.Matrix // [out_features, 1]
	activation Activation
}

// NewLayer creates a layer from explicit weights and bias.
//
// The bias must be a column with as many rows as weights. The matrices are
// copied. Most callers build layers through Build instead; NewLayer exists
// for hand-specified networks.
func NewLayer(weights, bias *matrix.Matrix, activation Activation) (*Layer, error) {
	if !bias.Shape().Equal(matrix.Shape{Rows: weights.Rows(), Cols: 1}) {
		return nil, &matrix.ShapeMismatchError{Op: "layer bias", Left: weights.Shape(), Right: bias.Shape()}
	}
	switch activation {
	case Sigmoid, ReLU, Softmax:
	default:
		return nil, fmt.Errorf("nn: unsupported layer activation %s", activation)
	}

	return &Layer{
		weights:    weights.Clone(),
		bias:       bias.Clone(),
		activation: activation,
	}, nil
}

// Forward computes the layer output for a column-vector input.
//
// Input shape: [in_features, 1]
// Output shape: [out_features, 1]
func (l *Layer) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	z, err := l.linear(input)
	if err != nil {
		return nil, err
	}
	return l.activation.apply(z), nil
}

// linear computes the pre-activation z = W·x + b.
func (l *Layer) linear(input *matrix.Matrix) (*matrix.Matrix, error) {
	if !input.Shape().Equal(matrix.Shape{Rows: l.InFeatures(), Cols: 1}) {
		return nil, &matrix.ShapeMismatchError{Op: "layer forward", Left: l.weights.Shape(), Right: input.Shape()}
	}
	wx, err := l.weights.Mul(input)
	if err != nil {
		return nil, err
	}
	return wx.Add(l.bias)
}

// Weights returns the weight matrix [out_features, in_features].
// Callers must not modify it.
func (l *Layer) Weights() *matrix.Matrix {
	return l.weights
}

// Bias returns the bias column [out_features, 1].
// Callers must not modify it.
func (l *Layer) Bias() *matrix.Matrix {
	return l.bias
}

// Activation returns the layer's activation kind.
func (l *Layer) Activation() Activation {
	return l.activation
}

// InFeatures returns the number of input features.
func (l *Layer) InFeatures() int {
	return l.weights.Cols()
}

// OutFeatures returns the number of output features.
func (l *Layer) OutFeatures() int {
	return l.weights.Rows()
}
