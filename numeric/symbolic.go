// Copyright 2025 gradtape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numeric

// Sym is a symbolic expression rendered as text rather than computed as a
// number: differentiating a graph of Sym values produces the gradient
// expression itself, not its value. Mul concatenates by juxtaposition
// ("ab"), Add parenthesizes and joins ("(a+b)"), and Neg wraps with a unary
// minus ("(-a)") — the same rendering a written-out product/sum of symbols
// would use.
type Sym string

// NewSym returns a symbol rendered as name.
func NewSym(name string) Sym { return Sym(name) }

func (s Sym) String() string { return string(s) }

func (s Sym) Add(other Sym) (Sym, error) {
	return "(" + s + "+" + other + ")", nil
}

func (s Sym) Mul(other Sym) (Sym, error) {
	return s + other, nil
}

func (s Sym) Neg() (Sym, error) {
	return "(-" + s + ")", nil
}

// Sub is expressed in terms of Add and Neg: a - b is a + (-b).
func (s Sym) Sub(other Sym) (Sym, error) {
	neg, _ := other.Neg()
	return s.Add(neg)
}

func (s Sym) ZeroLike() Sym { return "0" }
func (s Sym) OneLike() Sym  { return "1" }
