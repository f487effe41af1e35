// Package optim implements the parameter update rule used by the training step.
//
// The network trains one example at a time with plain gradient descent:
//
//	param = param - lr * gradient
//
// An optional L1 penalty pushes weights toward zero:
//
//	loss     += l1 * sum(|W|)
//	gradient += l1 * sign(W)
package optim

import (
	"github.com/netcircuit/netcircuit/internal/matrix"
	"gonum.org/v1/gonum/floats"
)

// SGD implements Stochastic Gradient Descent with an optional L1 penalty.
//
// Example:
//
//	sgd := optim.SGD{LR: 0.01, L1: 1e-4}
//	grad, err := sgd.Regularize(grad, weights)
//	...
//	err = sgd.Step(weights, grad)
type SGD struct {
	LR float64 // Learning rate
	L1 float64 // L1 coefficient; the penalty is disabled when <= 0
}

// Penalty returns L1 * sum(|W|), or 0 when the penalty is disabled.
func (s SGD) Penalty(weights *matrix.Matrix) float64 {
	if s.L1 <= 0 {
		return 0
	}
	return s.L1 * weights.AbsSum()
}

// Regularize returns grad + L1*sign(W). When the penalty is disabled grad
// is returned unchanged.
func (s SGD) Regularize(grad, weights *matrix.Matrix) (*matrix.Matrix, error) {
	if s.L1 <= 0 {
		return grad, nil
	}
	return grad.Add(weights.Apply(sign).Scale(s.L1))
}

// Step updates param in place: param -= LR * grad.
func (s SGD) Step(param, grad *matrix.Matrix) error {
	if !param.Shape().Equal(grad.Shape()) {
		return &matrix.ShapeMismatchError{Op: "sgd step", Left: param.Shape(), Right: grad.Shape()}
	}
	floats.AddScaled(param.Data(), -s.LR, grad.Data())
	return nil
}

// sign returns -1, 0 or 1; sign(0) is 0.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
