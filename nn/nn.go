// Copyright 2026 NetCircuit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/netcircuit/netcircuit/internal/matrix"
	"github.com/netcircuit/netcircuit/internal/nn"
)

// Network is an ordered stack of fully connected layers.
type Network = nn.Network

// Layer is one affine transform followed by an activation.
type Layer = nn.Layer

// Activation selects a layer's non-linearity.
type Activation = nn.Activation

// Supported activations.
const (
	Sigmoid = nn.Sigmoid
	ReLU    = nn.ReLU
	Softmax = nn.Softmax
)

// TrainSnapshot holds everything one training step computed.
type TrainSnapshot = nn.TrainSnapshot

// Column describes one column of neurons for layout.
type Column = nn.Column

// ConfigError describes why a network config was rejected.
type ConfigError = nn.ConfigError

// Option configures network construction.
type Option = nn.Option

// ConfigError reasons, for comparing against ConfigError.Reason.
const (
	ReasonEmptyLine          = nn.ReasonEmptyLine
	ReasonUnknownActivation  = nn.ReasonUnknownActivation
	ReasonInsufficientLayers = nn.ReasonInsufficientLayers
	ReasonMisplacedInput     = nn.ReasonMisplacedInput
	ReasonUnreadable         = nn.ReasonUnreadable
)

// Errors.
var (
	ErrEmptyNetwork = nn.ErrEmptyNetwork
	ErrConfig       = nn.ErrConfig
)

// New returns an Unbuilt network.
func New() *Network {
	return nn.New()
}

// Build parses a network config and returns the Built network.
//
// Example:
//
//	net, err := nn.Build("|input|*|\n|sigmoid|\n|softmax|*|") // 2 -> 1 -> 2
func Build(text string, opts ...Option) (*Network, error) {
	return nn.Build(text, opts...)
}

// LoadFile reads a network config from path.
func LoadFile(path string, opts ...Option) (*Network, error) {
	return nn.LoadFile(path, opts...)
}

// NewLayer creates a layer from explicit weights and bias.
func NewLayer(weights, bias *matrix.Matrix, activation Activation) (*Layer, error) {
	return nn.NewLayer(weights, bias, activation)
}

// FromLayers assembles a network from explicitly constructed layers.
func FromLayers(layers ...*Layer) (*Network, error) {
	return nn.FromLayers(layers...)
}

// WithSeed makes weight initialization reproducible.
func WithSeed(seed int64) Option {
	return nn.WithSeed(seed)
}

// WithRand draws initial weights from rng.
func WithRand(rng *rand.Rand) Option {
	return nn.WithRand(rng)
}

// SoftmaxVector applies the numerically stable softmax to z.
func SoftmaxVector(z *matrix.Matrix) *matrix.Matrix {
	return nn.SoftmaxVector(z)
}

// EdgeStrengths scales weights to |w| / max|w|.
func EdgeStrengths(weights *matrix.Matrix) *matrix.Matrix {
	return nn.EdgeStrengths(weights)
}
