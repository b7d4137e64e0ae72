// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training seqnet
// pipelines.
//
// # Overview
//
// This package contains:
//   - Optimizer interface: in-place update over aligned parameter/gradient views
//   - SGD: Stochastic Gradient Descent (param -= lr * grad)
//   - TrainStep: one complete single-sample training step
//
// # Training Loop Pattern
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	mse := nn.NewMSELoss()
//
//	for epoch := range numEpochs {
//	    for _, s := range samples {
//	        // zero grads → forward → loss → backward → update
//	        loss, err := sgd.TrainStep(model, s.Input, s.Target, mse)
//	        if err != nil {
//	            return err
//	        }
//	    }
//	}
//
// # Custom Optimizers
//
// Any type with Step(params []*float32, grads []float32) error and
// GetLR() float32 can be passed to TrainStep. params and grads are rebuilt
// from the model on every step and are positionally aligned.
package optim
