package nn

import "fmt"

// Builder constructs a Sequential pipeline one layer at a time.
//
// Each method appends a layer whose input width is the current trailing
// width. The first error stops the chain; later calls are no-ops and Build
// returns that error.
//
// Example:
//
//	model, err := nn.NewBuilder(2, nn.NewRNG(1)).Linear(8).Tanh().Linear(1).Build()
type Builder struct {
	seq *Sequential
	rng *RNG
	err error
}

// NewBuilder starts a pipeline accepting vectors of width inputDim.
//
// rng is used for the Xavier initialization of every Linear layer the
// builder creates, in append order.
func NewBuilder(inputDim int, rng *RNG) *Builder {
	seq, err := NewSequential(inputDim)
	return &Builder{seq: seq, rng: rng, err: err}
}

// Linear appends a Linear layer with bias producing outputDim features.
func (b *Builder) Linear(outputDim int) *Builder {
	return b.linear(outputDim, true)
}

// LinearNoBias appends a Linear layer without bias.
func (b *Builder) LinearNoBias(outputDim int) *Builder {
	return b.linear(outputDim, false)
}

// Tanh appends a Tanh layer of the current width.
func (b *Builder) Tanh() *Builder {
	return b.Activation(ActivationTanh)
}

// ReLU appends a ReLU layer of the current width.
func (b *Builder) ReLU() *Builder {
	return b.Activation(ActivationReLU)
}

// Activation appends an activation layer of the current width.
func (b *Builder) Activation(a ActivationType) *Builder {
	if b.err != nil {
		return b
	}
	layer, err := NewActivation(a, b.seq.OutputDim())
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(layer)
}

// Add appends an already constructed layer.
func (b *Builder) Add(layer Layer) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.seq.Add(layer); err != nil {
		b.err = fmt.Errorf("layer %d: %w", b.seq.Len(), err)
	}
	return b
}

// Build returns the pipeline or the first error hit while building it.
func (b *Builder) Build() (*Sequential, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.seq, nil
}

func (b *Builder) linear(outputDim int, bias bool) *Builder {
	if b.err != nil {
		return b
	}
	layer, err := NewLinear(b.seq.OutputDim(), outputDim, bias, b.rng)
	if err != nil {
		b.err = fmt.Errorf("layer %d: %w", b.seq.Len(), err)
		return b
	}
	return b.Add(layer)
}

// MLPConfig describes a multi-layer perceptron.
//
// The network is InputDim -> HiddenDims[0] -> ... -> OutputDim with
// Activation after every hidden Linear layer and none after the output layer.
type MLPConfig struct {
	InputDim   int
	HiddenDims []int
	OutputDim  int
	Activation ActivationType // default: ActivationTanh
	NoBias     bool           // Disable biases on every Linear layer
}

// Build constructs the pipeline described by the config.
func (c MLPConfig) Build(rng *RNG) (*Sequential, error) {
	b := NewBuilder(c.InputDim, rng)
	for _, h := range c.HiddenDims {
		b.linear(h, !c.NoBias).Activation(c.Activation)
	}
	b.linear(c.OutputDim, !c.NoBias)

	model, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("mlp: %w", err)
	}
	return model, nil
}
