// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/seqnet/internal/optim"
	"github.com/born-ml/seqnet/nn"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Model is the view of a pipeline that TrainStep drives.
type Model = optim.Model

// ErrLengthMismatch is returned when parameter and gradient views differ in length.
var ErrLengthMismatch = optim.ErrLengthMismatch

// SGD (Stochastic Gradient Descent)

// SGD represents the plain SGD optimizer.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	loss, err := sgd.TrainStep(model, input, target, nn.NewMSELoss())
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// TrainStep runs zero-grad, forward, loss, backward and opt's update for a
// single sample and returns its loss.
func TrainStep(opt Optimizer, model Model, input, target []float32, lossFn nn.LossFunction) (float32, error) {
	return optim.TrainStep(opt, model, input, target, lossFn)
}
