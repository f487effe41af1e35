// Copyright 2026 NetCircuit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the feed-forward network a visualization shell drives.
//
// # Overview
//
// This package contains:
//   - Network: layers built from a text config, Forward/ForwardAll, TrainStep
//   - Layer: weights [out x in], bias [out x 1] and an Activation
//   - Activations: Sigmoid, ReLU, Softmax
//   - TrainSnapshot: everything one training step computed, for display
//   - Topology helpers: Columns, EdgeStrengths
//
// # Config Format
//
// One line per column of neurons. Lines without "|" are ignored. The number
// of non-empty "|"-separated tokens is the neuron count and the first token
// names the activation (input, sigmoid, ReLU, softmax):
//
//	|input|*|*|*|*|
//	|sigmoid|*|*|*|
//	|softmax|*|
//
// builds 5 -> 4 -> 2. The activation token is itself one neuron.
//
// # Basic Usage
//
//	net, err := nn.Build(cfg)
//	if err != nil {
//	    return err
//	}
//
//	// Static display
//	acts, err := net.ForwardAll(input)
//
//	// Animated training
//	snap, err := net.TrainStep(input, target, 0.01, 0)
//	draw(snap.Activations, snap.Deltas, snap.WeightGrads)
//
// # Concurrency
//
// A Network has no internal locking. Never call TrainStep while another
// goroutine uses the same Network.
package nn
