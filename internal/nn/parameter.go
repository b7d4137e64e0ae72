package nn

import "slices"

// Parameter represents a learnable tensor of a layer.
//
// Data and its gradient accumulator are flat slices of equal length that are
// allocated once and never reallocated, so references into them stay valid
// for the lifetime of the layer.
type Parameter struct {
	name string    // Parameter name (e.g. "weight", "bias")
	data []float32 // Current values
	grad []float32 // Accumulated gradient
}

// NewParameter wraps data as a parameter with a zeroed gradient.
func NewParameter(name string, data []float32) *Parameter {
	return &Parameter{
		name: name,
		data: data,
		grad: make([]float32, len(data)),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the live parameter values.
func (p *Parameter) Data() []float32 {
	return p.data
}

// Grad returns the live gradient accumulator.
func (p *Parameter) Grad() []float32 {
	return p.grad
}

// Len returns the number of scalars in the parameter.
func (p *Parameter) Len() int {
	return len(p.data)
}

// ZeroGrad sets every gradient entry to zero.
func (p *Parameter) ZeroGrad() {
	clear(p.grad)
}

func (p *Parameter) clone() *Parameter {
	return NewParameter(p.name, slices.Clone(p.data))
}
