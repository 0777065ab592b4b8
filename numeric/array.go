// Copyright 2025 gradtape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numeric

import "github.com/born-ml/gradtape/algebra"

// Array is a small, immutable N-D float64 array. Every operation allocates
// a fresh backing slice rather than mutating a receiver, so a Value[Array]
// captured by a backward closure is never invalidated by later forward
// work — the same discipline the teacher's raw tensor buffer enforces via
// reference counting, simplified here because Array never participates in
// an in-place optimization path.
type Array struct {
	dims algebra.Dims
	data []float64
}

// NewArray copies data into a new Array of the given shape. It panics if
// len(data) does not match dims' element count, the same contract
// construction helpers in the teacher's tensor package use (a programmer
// error, not a runtime data error).
func NewArray(dims algebra.Dims, data []float64) Array {
	if len(data) != dims.NumElements() {
		panic("numeric: NewArray: data length does not match dims")
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return Array{dims: dims, data: cp}
}

// Dims reports the array's shape.
func (a Array) Dims() algebra.Dims { return a.dims }

// At returns the flat element at index i.
func (a Array) At(i int) float64 { return a.data[i] }

func (a Array) elementwise(op string, other Array, f func(x, y float64) float64) (Array, error) {
	if !a.dims.Equal(other.dims) {
		return Array{}, algebra.DimMismatch("Array."+op, a.dims, other.dims)
	}
	out := make([]float64, len(a.data))
	for i := range a.data {
		out[i] = f(a.data[i], other.data[i])
	}
	return Array{dims: a.dims, data: out}, nil
}

func (a Array) Add(other Array) (Array, error) {
	return a.elementwise("Add", other, func(x, y float64) float64 { return x + y })
}

func (a Array) Sub(other Array) (Array, error) {
	return a.elementwise("Sub", other, func(x, y float64) float64 { return x - y })
}

func (a Array) Mul(other Array) (Array, error) {
	return a.elementwise("Mul", other, func(x, y float64) float64 { return x * y })
}

func (a Array) Neg() (Array, error) {
	out := make([]float64, len(a.data))
	for i, v := range a.data {
		out[i] = -v
	}
	return Array{dims: a.dims, data: out}, nil
}

func (a Array) ZeroLike() Array {
	return Array{dims: a.dims, data: make([]float64, len(a.data))}
}

func (a Array) OneLike() Array {
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = 1
	}
	return Array{dims: a.dims, data: out}
}
