package nn

import "github.com/netcircuit/netcircuit/internal/matrix"

// Column describes one column of neurons as a visualization lays it out.
// Column 0 is the input; column i (i > 0) is layer i-1's output.
type Column struct {
	Neurons    int
	Activation Activation // Meaningless when Input is true
	Input      bool
}

// Columns returns Layers()+1 columns, or nil when the network is Unbuilt.
func (n *Network) Columns() []Column {
	if len(n.layers) == 0 {
		return nil
	}

	cols := make([]Column, 0, len(n.layers)+1)
	cols = append(cols, Column{Neurons: n.InputSize(), Input: true})
	for _, l := range n.layers {
		cols = append(cols, Column{Neurons: l.OutFeatures(), Activation: l.activation})
	}
	return cols
}

// EdgeStrengths scales weights to |w| / max|w| so the strongest edge of a
// layer maps to 1. A layer whose weights are all zero maps to all zeros.
func EdgeStrengths(weights *matrix.Matrix) *matrix.Matrix {
	maxMag := weights.MaxAbs()
	if maxMag == 0 {
		return weights.Apply(func(float64) float64 { return 0 })
	}
	return weights.Apply(func(w float64) float64 {
		if w < 0 {
			w = -w
		}
		return w / maxMag
	})
}
