package nn

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/netcircuit/netcircuit/internal/matrix"
)

// Network is an ordered stack of fully connected layers.
//
// A Network starts Unbuilt (no layers). A successful BuildFromConfig makes
// it Built; after that the topology never changes and training only rewrites
// weight and bias values.
//
// A Network does no locking. Callers must not run TrainStep concurrently
// with any other method on the same Network. Concurrent Forward calls
// without a concurrent TrainStep are safe.
//
// Example:
//
//	net, err := nn.Build("|input|*|\n|sigmoid|\n|softmax|*|")
//	out, err := net.Forward(matrix.Column(1.0, 1.0))  // shape: [2, 1]
type Network struct {
	layers []*Layer
}

// Option configures network construction.
type Option func(*buildOptions)

type buildOptions struct {
	rng *rand.Rand
}

// WithRand draws initial weights from rng.
func WithRand(rng *rand.Rand) Option {
	return func(o *buildOptions) {
		o.rng = rng
	}
}

// WithSeed draws initial weights from a generator seeded with seed,
// making construction reproducible.
func WithSeed(seed int64) Option {
	return func(o *buildOptions) {
		//nolint:gosec // Weight initialization does not need a cryptographic source.
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// New returns an Unbuilt network.
func New() *Network {
	return &Network{}
}

// Build parses a network config and returns the Built network.
func Build(text string, opts ...Option) (*Network, error) {
	n := New()
	if err := n.BuildFromConfig(text, opts...); err != nil {
		return nil, err
	}
	return n, nil
}

// LoadFile reads a network config from path and returns the Built network.
func LoadFile(path string, opts ...Option) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open network config: %w", err)
	}
	defer f.Close()

	n := New()
	if err := n.build(f, opts...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// FromLayers assembles a network from explicitly constructed layers.
// Each layer's input size must equal the previous layer's output size.
func FromLayers(layers ...*Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyNetwork
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].InFeatures() != layers[i-1].OutFeatures() {
			return nil, &matrix.ShapeMismatchError{
				Op:    fmt.Sprintf("chain layer %d", i),
				Left:  layers[i-1].weights.Shape(),
				Right: layers[i].weights.Shape(),
			}
		}
	}
	return &Network{layers: append([]*Layer(nil), layers...)}, nil
}

// BuildFromConfig parses text and replaces the network's layers.
//
// Layer i gets weights of shape [neurons_i, neurons_{i-1}] drawn with Xavier
// initialization and a zero bias. On error the network keeps whatever layers
// it held before.
func (n *Network) BuildFromConfig(text string, opts ...Option) error {
	return n.build(strings.NewReader(text), opts...)
}

func (n *Network) build(r io.Reader, opts ...Option) error {
	specs, err := parseConfig(r)
	if err != nil {
		return err
	}

	o := buildOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newRand()
	}

	// specs[0] only declares the input size.
	layers := make([]*Layer, 0, len(specs)-1)
	for i := 1; i < len(specs); i++ {
		inSize := specs[i-1].neurons
		outSize := specs[i].neurons

		weights, err := Xavier(inSize, outSize, o.rng)
		if err != nil {
			return fmt.Errorf("config line %d: %w", specs[i].line, err)
		}
		bias, err := matrix.New(outSize, 1)
		if err != nil {
			return fmt.Errorf("config line %d: %w", specs[i].line, err)
		}

		layers = append(layers, &Layer{
			weights:    weights,
			bias:       bias,
			activation: specs[i].activation,
		})
	}

	n.layers = layers
	return nil
}

// Built reports whether the network has layers.
func (n *Network) Built() bool {
	return len(n.layers) > 0
}

// Layers returns the layers in order. The slice is a copy; the layers are not.
func (n *Network) Layers() []*Layer {
	return append([]*Layer(nil), n.layers...)
}

// InputSize returns the declared input size, or 0 when Unbuilt.
func (n *Network) InputSize() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[0].InFeatures()
}

// OutputSize returns the size of the output layer, or 0 when Unbuilt.
func (n *Network) OutputSize() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[len(n.layers)-1].OutFeatures()
}

// checkInput validates that the network is Built and input is [InputSize, 1].
func (n *Network) checkInput(input *matrix.Matrix) error {
	if len(n.layers) == 0 {
		return ErrEmptyNetwork
	}
	want := matrix.Shape{Rows: n.InputSize(), Cols: 1}
	if !input.Shape().Equal(want) {
		return &matrix.ShapeMismatchError{Op: "network input", Left: want, Right: input.Shape()}
	}
	return nil
}

// Forward runs the input through every layer and returns the output
// column [OutputSize, 1].
func (n *Network) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	if err := n.checkInput(input); err != nil {
		return nil, err
	}

	current := input
	for _, layer := range n.layers {
		out, err := layer.Forward(current)
		if err != nil {
			return nil, err
		}
		current = out
	}
	return current, nil
}

// ForwardAll is Forward but returns every intermediate output.
// Element 0 is a copy of the input; element i is layer i-1's output.
func (n *Network) ForwardAll(input *matrix.Matrix) ([]*matrix.Matrix, error) {
	if err := n.checkInput(input); err != nil {
		return nil, err
	}

	acts := make([]*matrix.Matrix, 0, len(n.layers)+1)
	acts = append(acts, input.Clone())
	for _, layer := range n.layers {
		out, err := layer.Forward(acts[len(acts)-1])
		if err != nil {
			return nil, err
		}
		acts = append(acts, out)
	}
	return acts, nil
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	layers := make([]*Layer, len(n.layers))
	for i, l := range n.layers {
		layers[i] = &Layer{weights: l.weights.Clone(), bias: l.bias.Clone(), activation: l.activation}
	}
	return &Network{layers: layers}
}

// Predict returns the index of the largest output.
func (n *Network) Predict(input *matrix.Matrix) (int, error) {
	out, err := n.Forward(input)
	if err != nil {
		return -1, err
	}
	return out.ArgMax(), nil
}

// String lists one "OUTxIN(Activation)" line per layer.
func (n *Network) String() string {
	var sb strings.Builder
	for _, l := range n.layers {
		fmt.Fprintf(&sb, "%dx%d(%s)\n", l.OutFeatures(), l.InFeatures(), l.activation)
	}
	return sb.String()
}
