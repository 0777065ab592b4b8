package tapecore

import "github.com/born-ml/gradtape/algebra"

// Eval is the forward-only algebra: Variable and Constant are the identity,
// and every arithmetic operation delegates straight to D's own Numeric
// implementation. No tape is involved.
type Eval[D algebra.Numeric[D]] struct{}

// NewEval returns a forward-only algebra for D.
func NewEval[D algebra.Numeric[D]]() Eval[D] {
	return Eval[D]{}
}

func (Eval[D]) Variable(d D) D { return d }
func (Eval[D]) Constant(d D) D { return d }

func (Eval[D]) Add(a, b D) (D, error) { return a.Add(b) }
func (Eval[D]) Neg(v D) (D, error)    { return v.Neg() }
func (Eval[D]) Sub(a, b D) (D, error) { return a.Sub(b) }
func (Eval[D]) Mul(a, b D) (D, error) { return a.Mul(b) }
