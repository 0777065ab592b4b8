// Copyright 2025 gradtape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package algebra declares the capability contracts every execution mode of
// the tape engine is built against, plus the error taxonomy the engine uses
// to report failure.
//
// A datum type never depends on the tape engine directly. Instead it
// implements algebra.Numeric (so it can be evaluated) and, optionally,
// algebra.HasDims (so it can be dimension-checked). Capability bundles
// (Core, Arith) describe what an algebra can do over a value representation
// V, which lets the exact same formula compile against forward values,
// shapes, or tape-recording wrappers without the formula code knowing which
// one it's running under.
//
// Example:
//
//	func square[D, V any](c interface {
//		algebra.Core[D, V]
//		algebra.Arith[V]
//	}, x V) (V, error) {
//		return c.Mul(x, x)
//	}
package algebra
