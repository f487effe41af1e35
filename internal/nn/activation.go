package nn

import (
	"fmt"
	"math"

	"github.com/netcircuit/netcircuit/internal/matrix"
)

// Activation selects the non-linearity applied after a layer's affine transform.
//
// The set is closed: Sigmoid, ReLU and Softmax. The config token "input" is
// only meaningful on the first line of a network config and never ends up on
// a Layer.
type Activation int

// Supported activations.
const (
	Sigmoid Activation = iota
	ReLU
	Softmax
)

// activationInput marks the first config line, which declares only the input size.
const activationInput Activation = -1

// String returns a human-readable activation name.
func (a Activation) String() string {
	switch a {
	case Sigmoid:
		return "Sigmoid"
	case ReLU:
		return "ReLU"
	case Softmax:
		return "Softmax"
	case activationInput:
		return "Input"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// parseActivation maps a config token to an activation. Tokens are case-sensitive.
func parseActivation(token string) (Activation, bool) {
	switch token {
	case "input":
		return activationInput, true
	case "sigmoid":
		return Sigmoid, true
	case "ReLU":
		return ReLU, true
	case "softmax":
		return Softmax, true
	default:
		return 0, false
	}
}

func sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// sigmoidPrime takes the post-activation value a = sigmoid(z).
func sigmoidPrime(a float64) float64 { return a * (1.0 - a) }

// reluPrime takes the pre-activation value z.
func reluPrime(z float64) float64 {
	if z > 0 {
		return 1
	}
	return 0
}

// SoftmaxVector applies the numerically stable softmax to every element of z,
// treating the matrix as one vector:
//
//	softmax(z)_i = exp(z_i - max(z)) / sum_j exp(z_j - max(z))
//
// The result sums to 1 and is unchanged when a constant is added to z.
func SoftmaxVector(z *matrix.Matrix) *matrix.Matrix {
	maxVal := z.Max()
	exps := z.Apply(func(v float64) float64 { return math.Exp(v - maxVal) })
	sum := exps.Sum()
	return exps.Apply(func(v float64) float64 { return v / sum })
}

// apply maps a pre-activation vector z to the layer output.
func (a Activation) apply(z *matrix.Matrix) *matrix.Matrix {
	switch a {
	case Softmax:
		return SoftmaxVector(z)
	case Sigmoid:
		return z.Apply(sigmoid)
	case ReLU:
		return z.Apply(relu)
	default:
		panic(fmt.Sprintf("nn: activation %s cannot be applied", a))
	}
}

// delta turns the error propagated into a hidden layer into that layer's
// error signal. z is the layer's pre-activation, out its post-activation.
func (a Activation) delta(errSignal, z, out *matrix.Matrix) *matrix.Matrix {
	switch a {
	case Sigmoid:
		return must(errSignal.Hadamard(out.Apply(sigmoidPrime)))
	case ReLU:
		return must(errSignal.Hadamard(z.Apply(reluPrime)))
	case Softmax:
		// Jacobian-vector product: a ⊙ (e - <a, e>).
		dot := must(out.Dot(errSignal))
		shifted := errSignal.Apply(func(v float64) float64 { return v - dot })
		return must(out.Hadamard(shifted))
	default:
		panic(fmt.Sprintf("nn: activation %s has no derivative", a))
	}
}
