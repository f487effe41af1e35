// Copyright 2026 NetCircuit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim exposes the update rule applied by nn.Network.TrainStep.
//
// # Overview
//
// Training is single-example gradient descent with an optional L1 penalty.
// There is no momentum and no optimizer state between steps.
//
// # Basic Usage
//
//	import "github.com/netcircuit/netcircuit/optim"
//
//	sgd := optim.SGD{LR: 0.05, L1: 1e-4}
//	loss += sgd.Penalty(weights)
//	grad, err := sgd.Regularize(grad, weights)
//	if err != nil {
//	    return err
//	}
//	if err := sgd.Step(weights, grad); err != nil {
//	    return err
//	}
//
// Step updates the parameter matrix in place.
package optim
