package trainer

import (
	"errors"
	"math/rand"

	"github.com/netcircuit/netcircuit/internal/matrix"
)

// Sample is one supervised example: a column input and a one-hot target.
type Sample struct {
	Input  *matrix.Matrix // [inputs, 1]
	Target *matrix.Matrix // [classes, 1], one-hot
	Label  int
}

// Generator produces a deterministic stream of synthetic classification
// samples. Input features are uniform in [0, 1); the label is the class c
// whose features (indices i with i % classes == c) have the largest sum.
type Generator struct {
	rng     *rand.Rand
	inputs  int
	classes int
}

// NewGenerator creates a generator for inputs features and classes labels.
// The same seed always yields the same sequence.
func NewGenerator(inputs, classes int, seed int64) (*Generator, error) {
	if inputs <= 0 || classes <= 0 {
		return nil, errors.New("trainer: generator needs at least one input and one class")
	}
	return &Generator{
		//nolint:gosec // Synthetic data, not security-critical.
		rng:     rand.New(rand.NewSource(seed)),
		inputs:  inputs,
		classes: classes,
	}, nil
}

// Next returns the next sample.
func (g *Generator) Next() Sample {
	values := make([]float64, g.inputs)
	scores := make([]float64, g.classes)
	for i := range values {
		values[i] = g.rng.Float64()
		scores[i%g.classes] += values[i]
	}

	label := 0
	for c, s := range scores {
		if s > scores[label] {
			label = c
		}
	}

	target := matrix.Column(make([]float64, g.classes)...)
	target.Set(label, 0, 1)
	return Sample{Input: matrix.Column(values...), Target: target, Label: label}
}

// Take returns the next n samples.
func (g *Generator) Take(n int) []Sample {
	out := make([]Sample, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}
