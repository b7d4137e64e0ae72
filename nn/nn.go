// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/seqnet/internal/nn"
)

// Layer is a single differentiable stage of a pipeline.
type Layer = nn.Layer

// Kind identifies a layer variant.
type Kind = nn.Kind

// Layer kinds.
const (
	KindLinear = nn.KindLinear
	KindTanh   = nn.KindTanh
	KindReLU   = nn.KindReLU
)

// Parameter represents a learnable tensor with its gradient accumulator.
type Parameter = nn.Parameter

// Initialization

// RNG is an explicitly seeded generator for weight initialization.
type RNG = nn.RNG

// NewRNG creates a generator from seed.
func NewRNG(seed uint64) *RNG {
	return nn.NewRNG(seed)
}

// Xavier returns fanIn*fanOut weights drawn from U(-L, L), L = sqrt(6/(fanIn+fanOut)).
func Xavier(fanIn, fanOut int, rng *RNG) []float32 {
	return nn.Xavier(fanIn, fanOut, rng)
}

// Layers

// Linear represents a fully connected (affine) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	layer, err := nn.NewLinear(784, 128, true, nn.NewRNG(1))
func NewLinear(inputDim, outputDim int, bias bool, rng *RNG) (*Linear, error) {
	return nn.NewLinear(inputDim, outputDim, bias, rng)
}

// Activations

// ActivationType selects an activation in configs.
type ActivationType = nn.ActivationType

// Supported activations.
const (
	ActivationTanh = nn.ActivationTanh
	ActivationReLU = nn.ActivationReLU
)

// Tanh represents the hyperbolic tangent activation.
type Tanh = nn.Tanh

// NewTanh creates a Tanh layer of width dim.
func NewTanh(dim int) (*Tanh, error) {
	return nn.NewTanh(dim)
}

// ReLU represents the Rectified Linear Unit activation.
type ReLU = nn.ReLU

// NewReLU creates a ReLU layer of width dim.
func NewReLU(dim int) (*ReLU, error) {
	return nn.NewReLU(dim)
}

// NewActivation creates the activation layer of type a with width dim.
func NewActivation(a ActivationType, dim int) (Layer, error) {
	return nn.NewActivation(a, dim)
}

// Pipelines

// Sequential is an ordered chain of layers.
type Sequential = nn.Sequential

// NewSequential creates an empty pipeline accepting vectors of width inputDim.
func NewSequential(inputDim int) (*Sequential, error) {
	return nn.NewSequential(inputDim)
}

// Builder constructs a Sequential pipeline one layer at a time.
type Builder = nn.Builder

// NewBuilder starts a pipeline accepting vectors of width inputDim.
//
// Example:
//
//	model, err := nn.NewBuilder(2, nn.NewRNG(42)).Linear(8).Tanh().Linear(1).Build()
func NewBuilder(inputDim int, rng *RNG) *Builder {
	return nn.NewBuilder(inputDim, rng)
}

// MLPConfig describes a multi-layer perceptron.
type MLPConfig = nn.MLPConfig

// Loss functions

// LossFunction scores a prediction against a target.
type LossFunction = nn.LossFunction

// MSELoss computes Mean Squared Error loss.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// Errors

// DimensionError reports a vector whose length differs from the declared width.
type DimensionError = nn.DimensionError

// Sentinel errors.
var (
	ErrDimensionMismatch     = nn.ErrDimensionMismatch
	ErrBackwardBeforeForward = nn.ErrBackwardBeforeForward
	ErrInvalidDimension      = nn.ErrInvalidDimension
	ErrNilRNG                = nn.ErrNilRNG
	ErrMissingParameter      = nn.ErrMissingParameter
	ErrLayerShared           = nn.ErrLayerShared
)
