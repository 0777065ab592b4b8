// Copyright 2025 gradtape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tape is the public entry point to the differentiation engine.
//
// It wraps internal/tapecore behind generic type aliases and constructor
// functions, the same way born/autodiff wraps born/internal/autodiff: the
// engine itself lives in an internal package so its representation can
// change freely, and this package is the only one users import.
//
// Example:
//
//	g := tape.NewGraph1[numeric.Scalar](tape.NewEval[numeric.Scalar]())
//	x := g.Variable(2)
//	y := g.Variable(3)
//	z, _ := g.Mul(x, y)
//	zid, _ := z.ID()
//	grads, _ := g.EvaluateGradients(zid, 1)
//	xid, _ := x.ID()
//	xGrad, _ := grads.Get(xid)
package tape

import (
	"github.com/born-ml/gradtape/algebra"
	"github.com/born-ml/gradtape/internal/tapecore"
)

// Value pairs a forward datum with the gradient id it was recorded under,
// if any.
type Value[D any] = tapecore.Value[D]

// NodeID is a dense, monotonically increasing tape node index.
type NodeID = tapecore.NodeID

// Constant wraps d with no gradient id.
func Constant[D any](d D) Value[D] {
	return tapecore.Constant(d)
}

// Eval is the forward-only algebra.
type Eval[D algebra.Numeric[D]] = tapecore.Eval[D]

// NewEval returns a forward-only algebra for D.
func NewEval[D algebra.Numeric[D]]() Eval[D] {
	return tapecore.NewEval[D]()
}

// Check is the dimension-only algebra.
type Check[D algebra.HasDims] = tapecore.Check[D]

// NewCheck returns a dimension-only algebra for D.
func NewCheck[D algebra.HasDims]() Check[D] {
	return tapecore.NewCheck[D]()
}

// Graph adapts an underlying forward algebra into a tape-recording one.
type Graph[D algebra.Numeric[D]] = tapecore.Graph[D]

// GradientStore accumulates gradients keyed by NodeID.
type GradientStore[D algebra.Numeric[D]] = tapecore.GradientStore[D]

// NewGraph1 returns a graph for first-order differentiation: gradients
// computed against it cannot themselves be differentiated.
func NewGraph1[D algebra.Numeric[D]](eval tapecore.Forward[D]) *Graph[D] {
	return tapecore.NewGraph1[D](eval)
}

// NewGraphN returns a graph for higher-order differentiation: gradients
// computed against it are themselves recorded on the same tape, so a
// further backward pass can differentiate through them.
func NewGraphN[D algebra.Numeric[D]](eval tapecore.Forward[D]) *Graph[D] {
	return tapecore.NewGraphN[D](eval)
}
