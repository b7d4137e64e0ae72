// Package nn implements the layers and the sequential pipeline of seqnet.
//
// This package provides:
//   - Layer: the closed set of pipeline stages (Linear, Tanh, ReLU)
//   - Parameter: a named learnable tensor with its gradient accumulator
//   - Sequential: an ordered chain of layers with flattened parameter views
//   - Builder / MLPConfig: width-checked construction of pipelines
//   - LossFunction / MSELoss: the loss contract consumed by optimizers
//
// Gradients are derived by hand per layer. Every Forward caches exactly the
// state its layer's Backward needs, and Backward accumulates parameter
// gradients until ZeroGrad is called.
package nn

import "fmt"

// Kind identifies a layer variant.
type Kind int

// Layer kinds.
const (
	KindLinear Kind = iota
	KindTanh
	KindReLU
)

// String returns the layer kind name.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "Linear"
	case KindTanh:
		return "Tanh"
	case KindReLU:
		return "ReLU"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Layer is a single differentiable stage of a Sequential pipeline.
//
// The set of implementations is closed: only *Linear, *Tanh and *ReLU
// satisfy it. Sequential switches over them exhaustively.
//
// Lifecycle of the forward cache:
//   - Forward stores the state Backward will read.
//   - Backward reads the cache without modifying it.
//   - Backward without a cached Forward fails with ErrBackwardBeforeForward.
type Layer interface {
	// Kind reports which variant this layer is.
	Kind() Kind

	// InputDim is the width of vectors accepted by Forward.
	InputDim() int

	// OutputDim is the width of vectors returned by Forward.
	OutputDim() int

	// Forward computes the layer output and caches backward state.
	Forward(input []float32) ([]float32, error)

	// Backward returns the gradient with respect to the layer input and
	// accumulates any parameter gradients.
	Backward(gradOutput []float32) ([]float32, error)

	// ZeroGrad resets accumulated gradients.
	ZeroGrad()

	// ready reports whether Backward may be called.
	ready() error

	// clone returns a deep copy with zeroed gradients and no cache.
	clone() Layer

	isOwned() bool
	setOwned()
}

// owner marks a layer as held by a pipeline. A layer has at most one owner
// for its whole lifetime.
type owner struct {
	owned bool
}

func (o *owner) isOwned() bool { return o.owned }

func (o *owner) setOwned() { o.owned = true }
