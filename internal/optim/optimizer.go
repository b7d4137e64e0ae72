// Package optim implements optimization algorithms for training seqnet
// pipelines.
//
// This package provides:
//   - Optimizer interface: in-place update of aligned parameter/gradient views
//   - SGD: plain stochastic gradient descent
//   - TrainStep: one zero-grad → forward → loss → backward → update cycle
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	for epoch := range epochs {
//	    for _, s := range samples {
//	        loss, err := sgd.TrainStep(model, s.Input, s.Target, nn.NewMSELoss())
//	    }
//	}
package optim

import (
	"errors"
	"fmt"

	"github.com/born-ml/seqnet/internal/nn"
)

// ErrLengthMismatch is returned when parameter and gradient views differ in length.
var ErrLengthMismatch = errors.New("parameters and gradients differ in length")

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies the update rule in place.
	//
	// params and grads must be positionally aligned: grads[k] is the
	// gradient of *params[k]. Returns ErrLengthMismatch, without touching
	// any parameter, when their lengths differ.
	Step(params []*float32, grads []float32) error

	// GetLR returns the current learning rate.
	GetLR() float32
}

// Model is the view of a pipeline that TrainStep drives.
//
// *nn.Sequential satisfies it.
type Model interface {
	InputDim() int
	OutputDim() int
	Forward(input []float32) ([]float32, error)
	Backward(gradOutput []float32) ([]float32, error)
	ZeroGrad()
	ParametersMut() []*float32
	Gradients() []float32
}

// TrainStep runs one training step for a single sample and returns its loss.
//
// The sequence is: zero the model gradients, run forward, compute the loss
// and its gradient, run backward, then hand the aligned parameter and
// gradient views to opt. Input and target widths are checked before the
// model is touched.
func TrainStep(opt Optimizer, model Model, input, target []float32, lossFn nn.LossFunction) (float32, error) {
	if len(input) != model.InputDim() {
		return 0, &nn.DimensionError{Op: "TrainStep input", Expected: model.InputDim(), Actual: len(input)}
	}
	if len(target) != model.OutputDim() {
		return 0, &nn.DimensionError{Op: "TrainStep target", Expected: model.OutputDim(), Actual: len(target)}
	}

	model.ZeroGrad()

	pred, err := model.Forward(input)
	if err != nil {
		return 0, fmt.Errorf("forward: %w", err)
	}

	loss, err := lossFn.ComputeLoss(pred, target)
	if err != nil {
		return 0, fmt.Errorf("loss: %w", err)
	}
	grad, err := lossFn.ComputeGradient(pred, target)
	if err != nil {
		return 0, fmt.Errorf("loss gradient: %w", err)
	}

	if _, err := model.Backward(grad); err != nil {
		return 0, fmt.Errorf("backward: %w", err)
	}

	if err := opt.Step(model.ParametersMut(), model.Gradients()); err != nil {
		return 0, fmt.Errorf("update: %w", err)
	}
	return loss, nil
}
