// Package train drives single-sample training of a seqnet pipeline over a
// small in-memory dataset.
package train

import (
	"errors"
	"fmt"

	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/optim"
	"github.com/born-ml/seqnet/internal/parallel"
)

var (
	// ErrEmptyDataset is returned when there is nothing to train on.
	ErrEmptyDataset = errors.New("dataset is empty")
	// ErrInvalidConfig is returned by Fit for a negative Config field.
	ErrInvalidConfig = errors.New("invalid training config")
)

// Sample is one input/target pair.
type Sample struct {
	Input  []float32
	Target []float32
}

// XOR returns the 4-sample XOR dataset.
func XOR() []Sample {
	return []Sample{
		{Input: []float32{0, 0}, Target: []float32{0}},
		{Input: []float32{0, 1}, Target: []float32{1}},
		{Input: []float32{1, 0}, Target: []float32{1}},
		{Input: []float32{1, 1}, Target: []float32{0}},
	}
}

// Config holds configuration for Fit.
type Config struct {
	Epochs   int     // Full passes over the dataset (default: 1000)
	LR       float32 // SGD learning rate (default: 0.1)
	LogEvery int     // OnEpoch cadence in epochs (default: 100)

	// OnEpoch, if set, is called with the mean sample loss of every
	// LogEvery-th epoch (starting with epoch 0) and of the final epoch.
	OnEpoch func(epoch int, meanLoss float32)
}

func (c Config) validate() error {
	switch {
	case c.Epochs < 0:
		return fmt.Errorf("epochs %d: %w", c.Epochs, ErrInvalidConfig)
	case c.LR < 0:
		return fmt.Errorf("learning rate %g: %w", c.LR, ErrInvalidConfig)
	case c.LogEvery < 0:
		return fmt.Errorf("log every %d: %w", c.LogEvery, ErrInvalidConfig)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Epochs == 0 {
		c.Epochs = 1000
	}
	if c.LR == 0 {
		c.LR = 0.1
	}
	if c.LogEvery == 0 {
		c.LogEvery = 100
	}
	return c
}

// Fit trains model on data with SGD and MSE loss, one sample per step, in
// dataset order. Returns the mean loss of the last epoch.
//
// Zero Config fields take their defaults; negative ones are rejected with
// ErrInvalidConfig before the model is touched.
func Fit(model *nn.Sequential, data []Sample, cfg Config) (float32, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	cfg = cfg.withDefaults()

	sgd := optim.NewSGD(optim.SGDConfig{LR: cfg.LR})
	mse := nn.NewMSELoss()

	var mean float32
	for epoch := range cfg.Epochs {
		var total float32
		for i, s := range data {
			loss, err := sgd.TrainStep(model, s.Input, s.Target, mse)
			if err != nil {
				return 0, fmt.Errorf("epoch %d sample %d: %w", epoch, i, err)
			}
			total += loss
		}
		mean = total / float32(len(data))

		if cfg.OnEpoch != nil && (epoch%cfg.LogEvery == 0 || epoch == cfg.Epochs-1) {
			cfg.OnEpoch(epoch, mean)
		}
	}
	return mean, nil
}

// Prediction is the model output for one sample.
type Prediction struct {
	Output []float32
	Loss   float32
}

// Evaluate runs model on every sample and scores it with lossFn.
//
// Samples are spread over workers per cfg. Each sample runs on its own clone
// of model, so forward caches are never shared and model is not modified.
func Evaluate(model *nn.Sequential, data []Sample, lossFn nn.LossFunction, cfg parallel.Config) ([]Prediction, float32, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyDataset
	}

	preds := make([]Prediction, len(data))
	errs := make([]error, len(data))

	parallel.For(len(data), func(i int) {
		m := model.Clone()
		out, err := m.Forward(data[i].Input)
		if err != nil {
			errs[i] = fmt.Errorf("sample %d: %w", i, err)
			return
		}
		loss, err := lossFn.ComputeLoss(out, data[i].Target)
		if err != nil {
			errs[i] = fmt.Errorf("sample %d: %w", i, err)
			return
		}
		preds[i] = Prediction{Output: out, Loss: loss}
	}, cfg)

	if err := errors.Join(errs...); err != nil {
		return nil, 0, err
	}

	var total float32
	for _, p := range preds {
		total += p.Loss
	}
	return preds, total / float32(len(preds)), nil
}
