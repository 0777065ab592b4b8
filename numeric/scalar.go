// Copyright 2025 gradtape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numeric

import "github.com/born-ml/gradtape/algebra"

// Scalar is a bare float64 datum. Its arithmetic never fails: the error
// returns exist only to satisfy algebra.Numeric, matching datum types whose
// operations can fail (Array's shape checks, for instance).
type Scalar float64

func (s Scalar) Add(other Scalar) (Scalar, error) { return s + other, nil }
func (s Scalar) Sub(other Scalar) (Scalar, error) { return s - other, nil }
func (s Scalar) Mul(other Scalar) (Scalar, error) { return s * other, nil }
func (s Scalar) Neg() (Scalar, error)             { return -s, nil }

func (s Scalar) ZeroLike() Scalar { return 0 }
func (s Scalar) OneLike() Scalar  { return 1 }

// Dims reports a scalar's shape: always empty.
func (s Scalar) Dims() algebra.Dims { return algebra.Dims{} }
