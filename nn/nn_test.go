// Copyright 2026 NetCircuit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/netcircuit/netcircuit/matrix"
	"github.com/netcircuit/netcircuit/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildForwardTrain(t *testing.T) {
	net, err := nn.Build("|input|*|\n|sigmoid|\n|softmax|*|", nn.WithSeed(1))
	require.NoError(t, err)

	out, err := net.Forward(matrix.Column(1.0, 1.0))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out.Sum(), 1e-5)

	snap, err := net.TrainStep(matrix.Column(1.0, 1.0), matrix.Column(0, 1), 0.01, 0)
	require.NoError(t, err)
	assert.Len(t, snap.Activations, 3)

	cols := net.Columns()
	require.Len(t, cols, 3)
	assert.True(t, cols[0].Input)
	assert.Equal(t, nn.Softmax, cols[2].Activation)
}

func TestBuild_ConfigError(t *testing.T) {
	_, err := nn.Build("|input|*|\n|tanh|*|")
	assert.ErrorIs(t, err, nn.ErrConfig)

	var ce *nn.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Line)
	assert.Equal(t, nn.ReasonUnknownActivation, ce.Reason)

	_, err = nn.Build("|input|*|*|")
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, nn.ReasonInsufficientLayers, ce.Reason)
}

func TestUnbuilt(t *testing.T) {
	_, err := nn.New().Forward(matrix.Column(1))
	assert.ErrorIs(t, err, nn.ErrEmptyNetwork)
}

func TestSoftmaxVector(t *testing.T) {
	assert.InDelta(t, 1.0, nn.SoftmaxVector(matrix.Column(3, -1, 2)).Sum(), 1e-12)
}
