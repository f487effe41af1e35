// Copyright 2026 NetCircuit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/netcircuit/netcircuit/internal/optim"

// SGD is plain gradient descent with an optional L1 penalty.
//
// Example:
//
//	sgd := optim.SGD{LR: 0.01}
//	err := sgd.Step(weights, grad)
type SGD = optim.SGD
