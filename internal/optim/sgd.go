package optim

import (
	"fmt"

	"github.com/born-ml/seqnet/internal/nn"
)

// SGD implements Stochastic Gradient Descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// SGD keeps no per-parameter state; the learning rate is its only
// hyperparameter.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	loss, err := sgd.TrainStep(model, input, target, nn.NewMSELoss())
type SGD struct {
	lr float32
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float32 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{lr: config.LR}
}

// Step applies param -= lr * grad to every aligned pair.
func (s *SGD) Step(params []*float32, grads []float32) error {
	if len(params) != len(grads) {
		return fmt.Errorf("SGD.Step: %d parameters, %d gradients: %w", len(params), len(grads), ErrLengthMismatch)
	}

	for k, p := range params {
		*p -= s.lr * grads[k]
	}
	return nil
}

// TrainStep runs one full training step on a single sample with this
// optimizer. See the package-level TrainStep.
func (s *SGD) TrainStep(model Model, input, target []float32, lossFn nn.LossFunction) (float32, error) {
	return TrainStep(s, model, input, target, lossFn)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}
