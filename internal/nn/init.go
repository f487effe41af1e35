package nn

import (
	"math"
	"math/rand"

	"github.com/netcircuit/netcircuit/internal/matrix"
)

// Xavier (Glorot) initialization for weights.
//
// Returns a [fanOut x fanIn] matrix with values drawn from
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
func Xavier(fanIn, fanOut int, rng *rand.Rand) (*matrix.Matrix, error) {
	w, err := matrix.New(fanOut, fanIn)
	if err != nil {
		return nil, err
	}

	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	data := w.Data()
	for i := range data {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return w, nil
}

// newRand returns a generator seeded from the runtime's entropy source.
func newRand() *rand.Rand {
	//nolint:gosec // Weight initialization does not need a cryptographic source.
	return rand.New(rand.NewSource(rand.Int63()))
}
