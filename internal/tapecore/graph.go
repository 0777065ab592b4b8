package tapecore

import "github.com/born-ml/gradtape/algebra"

// Forward is the capability a graph needs from the algebra it wraps: plain
// forward arithmetic over D, with no recording.
type Forward[D any] interface {
	algebra.Core[D, D]
	algebra.Arith[D]
}

// gradEngine computes the vector-Jacobian-product contributions a node's
// backward closure needs, over Value[D] rather than bare D. Graph[D] itself
// satisfies this interface (its public Core/Arith methods operate on
// Value[D]), which is what lets a Graph wired for higher-order
// differentiation reference itself: every contribution computed during a
// backward pass is recorded as a new node on the very same tape, so a
// second backward pass can differentiate through the first.
//
// A first-order graph instead wires in firstOrderGradEngine, which performs
// the same arithmetic directly against the wrapped forward algebra and
// never records, so gradients computed for it carry no id and cannot
// themselves be differentiated.
type gradEngine[D algebra.Numeric[D]] interface {
	algebra.Core[D, Value[D]]
	algebra.Arith[Value[D]]
}

// Graph adapts an underlying forward algebra into one that also records
// every operation's inputs onto a Tape, so that a later backward pass can
// recover gradients for every recorded Variable. Whether that recording is
// itself differentiable (enabling second- and higher-order gradients) is
// decided once, at construction time, by which gradEngine is installed.
type Graph[D algebra.Numeric[D]] struct {
	eval   Forward[D]
	tape   *Tape[D]
	engine gradEngine[D]
}

// NewGraph1 returns a graph whose gradients are terminal: VJP contributions
// are computed directly against eval and never recorded, so Graph1's
// gradients cannot themselves be differentiated. This is the common case
// and the cheaper of the two engines.
func NewGraph1[D algebra.Numeric[D]](eval Forward[D]) *Graph[D] {
	g := &Graph[D]{eval: eval, tape: NewTape[D]()}
	g.engine = firstOrderGradEngine[D]{eval: eval}
	return g
}

// NewGraphN returns a graph whose gradients are themselves recorded onto
// the same tape as the forward pass, so a second (or further) backward
// pass can differentiate through the first. This is higher-order
// differentiation by self-reference: the graph's own Core/Arith
// implementation doubles as the gradient engine.
func NewGraphN[D algebra.Numeric[D]](eval Forward[D]) *Graph[D] {
	g := &Graph[D]{eval: eval, tape: NewTape[D]()}
	g.engine = g
	return g
}

// NumNodes reports how many nodes have been recorded so far.
func (g *Graph[D]) NumNodes() int {
	return g.tape.Len()
}

// Variable introduces d as a differentiable input, recording a leaf node
// with no backward contribution of its own.
func (g *Graph[D]) Variable(d D) Value[D] {
	fwd := g.eval.Variable(d)
	id := g.tape.Record(func(Value[D], *GradientStore[D]) error { return nil })
	return Variable(fwd, id)
}

// Constant introduces d as a non-differentiable input.
func (g *Graph[D]) Constant(d D) Value[D] {
	return Constant(g.eval.Constant(d))
}

// Add records the sum of a and b. If neither operand carries a gradient id
// the result is folded to a constant, recording nothing.
func (g *Graph[D]) Add(a, b Value[D]) (Value[D], error) {
	fwd, err := g.eval.Add(a.Data(), b.Data())
	if err != nil {
		return Value[D]{}, err
	}
	if !a.HasID() && !b.HasID() {
		return Constant(fwd), nil
	}
	aID, aHas := a.ID()
	bID, bHas := b.ID()
	id := g.tape.Record(func(grad Value[D], store *GradientStore[D]) error {
		if aHas {
			if err := store.Add(aID, grad, g.engine.Add); err != nil {
				return err
			}
		}
		if bHas {
			if err := store.Add(bID, grad, g.engine.Add); err != nil {
				return err
			}
		}
		return nil
	})
	return Variable(fwd, id), nil
}

// Neg records the additive inverse of v.
func (g *Graph[D]) Neg(v Value[D]) (Value[D], error) {
	fwd, err := g.eval.Neg(v.Data())
	if err != nil {
		return Value[D]{}, err
	}
	if !v.HasID() {
		return Constant(fwd), nil
	}
	vID, _ := v.ID()
	id := g.tape.Record(func(grad Value[D], store *GradientStore[D]) error {
		contrib, err := g.engine.Neg(grad)
		if err != nil {
			return err
		}
		return store.Add(vID, contrib, g.engine.Add)
	})
	return Variable(fwd, id), nil
}

// Sub records a - b.
func (g *Graph[D]) Sub(a, b Value[D]) (Value[D], error) {
	fwd, err := g.eval.Sub(a.Data(), b.Data())
	if err != nil {
		return Value[D]{}, err
	}
	if !a.HasID() && !b.HasID() {
		return Constant(fwd), nil
	}
	aID, aHas := a.ID()
	bID, bHas := b.ID()
	id := g.tape.Record(func(grad Value[D], store *GradientStore[D]) error {
		if aHas {
			if err := store.Add(aID, grad, g.engine.Add); err != nil {
				return err
			}
		}
		if bHas {
			negGrad, err := g.engine.Neg(grad)
			if err != nil {
				return err
			}
			if err := store.Add(bID, negGrad, g.engine.Add); err != nil {
				return err
			}
		}
		return nil
	})
	return Variable(fwd, id), nil
}

// Mul records the product of a and b, applying the product rule: the
// contribution to a's gradient is grad*b, and to b's gradient is a*grad.
// Operand order is preserved rather than normalized, so this is correct
// even when D's Mul is not commutative.
func (g *Graph[D]) Mul(a, b Value[D]) (Value[D], error) {
	fwd, err := g.eval.Mul(a.Data(), b.Data())
	if err != nil {
		return Value[D]{}, err
	}
	if !a.HasID() && !b.HasID() {
		return Constant(fwd), nil
	}
	aID, aHas := a.ID()
	bID, bHas := b.ID()
	id := g.tape.Record(func(grad Value[D], store *GradientStore[D]) error {
		if aHas {
			contrib, err := g.engine.Mul(grad, b)
			if err != nil {
				return err
			}
			if err := store.Add(aID, contrib, g.engine.Add); err != nil {
				return err
			}
		}
		if bHas {
			contrib, err := g.engine.Mul(a, grad)
			if err != nil {
				return err
			}
			if err := store.Add(bID, contrib, g.engine.Add); err != nil {
				return err
			}
		}
		return nil
	})
	return Variable(fwd, id), nil
}

// firstOrderGradEngine computes VJP contributions directly against the
// wrapped forward algebra, wrapping every result as a constant. Gradients
// produced under this engine cannot themselves be differentiated.
type firstOrderGradEngine[D algebra.Numeric[D]] struct {
	eval Forward[D]
}

func (e firstOrderGradEngine[D]) Variable(d D) Value[D] { return Constant(d) }
func (e firstOrderGradEngine[D]) Constant(d D) Value[D] { return Constant(d) }

func (e firstOrderGradEngine[D]) Add(a, b Value[D]) (Value[D], error) {
	d, err := e.eval.Add(a.Data(), b.Data())
	if err != nil {
		return Value[D]{}, err
	}
	return Constant(d), nil
}

func (e firstOrderGradEngine[D]) Neg(v Value[D]) (Value[D], error) {
	d, err := e.eval.Neg(v.Data())
	if err != nil {
		return Value[D]{}, err
	}
	return Constant(d), nil
}

func (e firstOrderGradEngine[D]) Sub(a, b Value[D]) (Value[D], error) {
	d, err := e.eval.Sub(a.Data(), b.Data())
	if err != nil {
		return Value[D]{}, err
	}
	return Constant(d), nil
}

func (e firstOrderGradEngine[D]) Mul(a, b Value[D]) (Value[D], error) {
	d, err := e.eval.Mul(a.Data(), b.Data())
	if err != nil {
		return Value[D]{}, err
	}
	return Constant(d), nil
}
