package nn

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ActivationType selects an elementwise activation in configs.
type ActivationType int

// Supported activations.
const (
	ActivationTanh ActivationType = iota
	ActivationReLU
)

// String returns the activation name.
func (a ActivationType) String() string {
	switch a {
	case ActivationTanh:
		return "tanh"
	case ActivationReLU:
		return "relu"
	default:
		return fmt.Sprintf("ActivationType(%d)", int(a))
	}
}

// NewActivation creates the activation layer of type a with width dim.
func NewActivation(a ActivationType, dim int) (Layer, error) {
	var (
		layer Layer
		err   error
	)
	switch a {
	case ActivationTanh:
		layer, err = NewTanh(dim)
	case ActivationReLU:
		layer, err = NewReLU(dim)
	default:
		return nil, fmt.Errorf("unknown activation %v", a)
	}
	if err != nil {
		return nil, err
	}
	return layer, nil
}

// Tanh is a hyperbolic tangent activation layer.
//
// Applies the element-wise function tanh(x). Forward caches its output
// because the derivative is expressed through it: d/dx tanh(x) = 1 - tanh(x)².
type Tanh struct {
	owner

	dim          int
	cachedOutput []float32
}

// NewTanh creates a Tanh layer of width dim.
func NewTanh(dim int) (*Tanh, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("tanh %d: %w", dim, ErrInvalidDimension)
	}
	return &Tanh{dim: dim}, nil
}

// Kind returns KindTanh.
func (t *Tanh) Kind() Kind { return KindTanh }

// InputDim returns the layer width.
func (t *Tanh) InputDim() int { return t.dim }

// OutputDim returns the layer width.
func (t *Tanh) OutputDim() int { return t.dim }

// Forward applies tanh elementwise.
func (t *Tanh) Forward(input []float32) ([]float32, error) {
	if err := checkDim("Tanh.Forward", t.dim, len(input)); err != nil {
		return nil, err
	}

	output := make([]float32, t.dim)
	for i, x := range input {
		output[i] = math32.Tanh(x)
	}

	t.cachedOutput = output
	// Callers own the returned slice; the cache must not alias it.
	return append([]float32(nil), output...), nil
}

// Backward returns grad_input[i] = grad_output[i] * (1 - y[i]²).
func (t *Tanh) Backward(gradOutput []float32) ([]float32, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	if err := checkDim("Tanh.Backward", t.dim, len(gradOutput)); err != nil {
		return nil, err
	}

	gradInput := make([]float32, t.dim)
	for i, y := range t.cachedOutput {
		gradInput[i] = gradOutput[i] * (1 - y*y)
	}
	return gradInput, nil
}

// ZeroGrad drops the cached output. Tanh has no parameters.
func (t *Tanh) ZeroGrad() {
	t.cachedOutput = nil
}

func (t *Tanh) ready() error {
	if t.cachedOutput == nil {
		return fmt.Errorf("Tanh.Backward: %w", ErrBackwardBeforeForward)
	}
	return nil
}

func (t *Tanh) clone() Layer {
	return &Tanh{dim: t.dim}
}

// ReLU is a Rectified Linear Unit activation layer.
//
// Applies the element-wise function max(0, x). Forward caches its input;
// the derivative is a 0/1 gate on the sign of that input.
type ReLU struct {
	owner

	dim         int
	cachedInput []float32
}

// NewReLU creates a ReLU layer of width dim.
func NewReLU(dim int) (*ReLU, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("relu %d: %w", dim, ErrInvalidDimension)
	}
	return &ReLU{dim: dim}, nil
}

// Kind returns KindReLU.
func (r *ReLU) Kind() Kind { return KindReLU }

// InputDim returns the layer width.
func (r *ReLU) InputDim() int { return r.dim }

// OutputDim returns the layer width.
func (r *ReLU) OutputDim() int { return r.dim }

// Forward applies max(0, x) elementwise.
func (r *ReLU) Forward(input []float32) ([]float32, error) {
	if err := checkDim("ReLU.Forward", r.dim, len(input)); err != nil {
		return nil, err
	}

	output := make([]float32, r.dim)
	for i, x := range input {
		output[i] = max(x, 0)
	}

	r.cachedInput = append([]float32(nil), input...)
	return output, nil
}

// Backward passes grad_output through where the cached input was positive.
func (r *ReLU) Backward(gradOutput []float32) ([]float32, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if err := checkDim("ReLU.Backward", r.dim, len(gradOutput)); err != nil {
		return nil, err
	}

	gradInput := make([]float32, r.dim)
	for i, x := range r.cachedInput {
		if x > 0 {
			gradInput[i] = gradOutput[i]
		}
	}
	return gradInput, nil
}

// ZeroGrad drops the cached input. ReLU has no parameters.
func (r *ReLU) ZeroGrad() {
	r.cachedInput = nil
}

func (r *ReLU) ready() error {
	if r.cachedInput == nil {
		return fmt.Errorf("ReLU.Backward: %w", ErrBackwardBeforeForward)
	}
	return nil
}

func (r *ReLU) clone() Layer {
	return &ReLU{dim: r.dim}
}
