// Copyright 2025 gradtape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numeric provides concrete datum types that exercise the tape
// engine: Scalar (a bare float64), Array (a small N-D float64 array with a
// checked shape), and Sym (a symbolic, string-rendering expression used to
// carry differentiation through by construction rather than by number).
//
// None of these types import the tape engine. Each implements only
// algebra.Numeric (and, where shape matters, algebra.HasDims), which is the
// entire surface the engine requires of a datum type.
package numeric
