package nn

import (
	"fmt"
	"math"

	"github.com/netcircuit/netcircuit/internal/matrix"
	"github.com/netcircuit/netcircuit/internal/optim"
)

// logEpsilon floors predictions before taking the log.
const logEpsilon = 1e-7

// TrainSnapshot holds everything one training step computed, for display.
// Every matrix in it belongs to the caller.
type TrainSnapshot struct {
	// Activations has one entry per column: [0] is the input, [i] is layer
	// i-1's output. Computed with the weights from before the update.
	Activations []*matrix.Matrix
	// Deltas[i] is layer i's error signal (gradient w.r.t. its pre-activation).
	Deltas []*matrix.Matrix
	// WeightGrads[i] is the gradient applied to layer i's weights,
	// including the L1 term.
	WeightGrads []*matrix.Matrix
	// Loss is the cross-entropy loss plus the L1 penalty.
	Loss float64
}

// crossEntropy computes -sum(target * log(max(pred, 1e-7))).
func crossEntropy(pred, target *matrix.Matrix) float64 {
	p, t := pred.Data(), target.Data()
	loss := 0.0
	for i := range p {
		loss -= t[i] * math.Log(math.Max(p[i], logEpsilon))
	}
	return loss
}

// checkTarget validates that target is [OutputSize, 1].
func (n *Network) checkTarget(target *matrix.Matrix) error {
	want := matrix.Shape{Rows: n.OutputSize(), Cols: 1}
	if !target.Shape().Equal(want) {
		return &matrix.ShapeMismatchError{Op: "network target", Left: want, Right: target.Shape()}
	}
	return nil
}

// Loss returns the cross-entropy loss of the current weights on one example,
// without the L1 penalty and without updating anything.
func (n *Network) Loss(input, target *matrix.Matrix) (float64, error) {
	out, err := n.Forward(input)
	if err != nil {
		return 0, err
	}
	if err := n.checkTarget(target); err != nil {
		return 0, err
	}
	return crossEntropy(out, target), nil
}

// OutputDeltaExact reports whether the output error a - target is the exact
// cross-entropy gradient for the configured output activation. It is exact
// for Softmax and Sigmoid outputs; for a ReLU output TrainStep still uses
// a - target, which is only an approximation.
func (n *Network) OutputDeltaExact() bool {
	if len(n.layers) == 0 {
		return false
	}
	return n.layers[len(n.layers)-1].activation != ReLU
}

// TrainStep runs one gradient-descent step on a single example and updates
// the weights and biases in place.
//
// Steps:
//  1. Forward, keeping z (pre-activation) and a (post-activation) per layer
//  2. Loss = -sum(target * log(max(a_out, 1e-7)))
//  3. Output delta = a_out - target
//  4. Hidden deltas: e = W_{l+1}^T · delta_{l+1}, then
//     Sigmoid: e ⊙ a(1-a), ReLU: e ⊙ [z > 0], Softmax: a ⊙ (e - <a, e>)
//  5. Weight gradient = delta_l · a_{l-1}^T, bias gradient = delta_l
//  6. If l1 > 0: loss += l1*sum|W|, gradient += l1*sign(W)
//  7. W -= lr * gradW, b -= lr * gradB
//
// Input must be [InputSize, 1] and target [OutputSize, 1]. Any shape failure
// past those checks is a bug in network construction and panics.
func (n *Network) TrainStep(input, target *matrix.Matrix, lr, l1 float64) (*TrainSnapshot, error) {
	if err := n.checkInput(input); err != nil {
		return nil, err
	}
	if err := n.checkTarget(target); err != nil {
		return nil, err
	}

	numLayers := len(n.layers)

	// Forward with memory.
	zs := make([]*matrix.Matrix, numLayers)
	acts := make([]*matrix.Matrix, 0, numLayers+1)
	acts = append(acts, input.Clone())
	for i, layer := range n.layers {
		zs[i] = must(layer.linear(acts[i]))
		acts = append(acts, layer.activation.apply(zs[i]))
	}

	output := acts[numLayers]
	loss := crossEntropy(output, target)

	// Backward.
	deltas := make([]*matrix.Matrix, numLayers)
	deltas[numLayers-1] = must(output.Sub(target))
	for l := numLayers - 2; l >= 0; l-- {
		propagated := must(n.layers[l+1].weights.T().Mul(deltas[l+1]))
		deltas[l] = n.layers[l].activation.delta(propagated, zs[l], acts[l+1])
	}

	sgd := optim.SGD{LR: lr, L1: l1}

	// Gradients (and penalty) use the weights from before any update.
	grads := make([]*matrix.Matrix, numLayers)
	for l, layer := range n.layers {
		grad := must(deltas[l].Mul(acts[l].T()))
		grads[l] = must(sgd.Regularize(grad, layer.weights))
		loss += sgd.Penalty(layer.weights)
	}

	for l, layer := range n.layers {
		mustDo(sgd.Step(layer.weights, grads[l]))
		mustDo(sgd.Step(layer.bias, deltas[l]))
	}

	return &TrainSnapshot{
		Activations: acts,
		Deltas:      deltas,
		WeightGrads: grads,
		Loss:        loss,
	}, nil
}

// must panics on an internal shape error.
func must[T any](v T, err error) T {
	mustDo(err)
	return v
}

func mustDo(err error) {
	if err != nil {
		panic(fmt.Sprintf("nn: internal shape error: %v", err))
	}
}
