// Copyright 2025 gradtape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package algebra

// Core is the minimal capability bundle every execution mode implements: the
// ability to introduce a value (as a variable or as a constant) and to add
// two values. D is the datum type carried by the underlying computation; V
// is the value representation the algebra actually operates on (a raw datum
// under Eval, a Dims under Check, a tape-recording wrapper under Graph).
type Core[D, V any] interface {
	// Variable introduces d as a differentiable input. Under Graph this
	// allocates a tape node whose backward closure contributes nothing;
	// under Eval and Check it is the identity.
	Variable(d D) V

	// Constant introduces d as a non-differentiable input. The result never
	// carries a gradient id.
	Constant(d D) V

	// Add returns the sum of a and b, or a DimensionMismatch error if their
	// shapes disagree.
	Add(a, b V) (V, error)
}

// Arith extends Core with the rest of the arithmetic capability bundle.
// Algebras that don't need subtraction or multiplication (a hypothetical
// addition-only algebra) can implement Core alone.
type Arith[V any] interface {
	// Neg returns the additive inverse of v.
	Neg(v V) (V, error)

	// Sub returns a - b.
	Sub(a, b V) (V, error)

	// Mul returns the product of a and b.
	Mul(a, b V) (V, error)
}

// Numeric is the capability a concrete datum type implements to describe its
// own forward arithmetic. Eval and Graph's forward pass both delegate to
// these methods directly, so a new datum type never requires changes to the
// tape engine itself.
type Numeric[D any] interface {
	Add(D) (D, error)
	Sub(D) (D, error)
	Mul(D) (D, error)
	Neg() (D, error)

	// ZeroLike returns the additive identity shaped like the receiver.
	ZeroLike() D

	// OneLike returns the multiplicative identity shaped like the receiver.
	OneLike() D
}

// HasDims is implemented by datum types that support dimension checking
// under the Check algebra.
type HasDims interface {
	Dims() Dims
}
