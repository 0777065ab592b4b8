package tapecore

import (
	"fmt"

	"github.com/born-ml/gradtape/algebra"
)

// backwardFunc is the vector-Jacobian-product closure recorded for one node:
// given the gradient flowing into this node's output, it accumulates
// gradients for the node's inputs into store.
type backwardFunc[D algebra.Numeric[D]] func(outputGrad Value[D], store *GradientStore[D]) error

type node[D algebra.Numeric[D]] struct {
	backward backwardFunc[D]
}

// Tape is an append-only store of backward closures, indexed by the
// NodeID assigned when each closure was recorded. Nodes are never deleted
// except by the consuming variants of the backward driver (Take), which
// release a node's closure once it has fired so its captured operands can
// be garbage collected.
type Tape[D algebra.Numeric[D]] struct {
	nodes []*node[D]
}

// NewTape returns an empty tape.
func NewTape[D algebra.Numeric[D]]() *Tape[D] {
	return &Tape[D]{}
}

// Record appends backward as a new node and returns its id. Ids are handed
// out in strict construction order.
func (t *Tape[D]) Record(backward backwardFunc[D]) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &node[D]{backward: backward})
	return id
}

// Len returns the number of nodes recorded so far.
func (t *Tape[D]) Len() int {
	return len(t.nodes)
}

// Peek returns the backward closure for id without consuming it. Used by
// the non-consuming backward driver, which may need to run the same tape
// more than once.
func (t *Tape[D]) Peek(id NodeID) (backwardFunc[D], error) {
	n, err := t.at(id)
	if err != nil {
		return nil, err
	}
	if n.backward == nil {
		return nil, algebra.Spent("Tape.Peek", int64(id))
	}
	return n.backward, nil
}

// Take returns the backward closure for id and clears it. A later Take or
// Peek of the same id fails with a TapeSpent error.
func (t *Tape[D]) Take(id NodeID) (backwardFunc[D], error) {
	n, err := t.at(id)
	if err != nil {
		return nil, err
	}
	if n.backward == nil {
		return nil, algebra.Spent("Tape.Take", int64(id))
	}
	fn := n.backward
	n.backward = nil
	return fn, nil
}

func (t *Tape[D]) at(id NodeID) (*node[D], error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, algebra.Wrap("Tape", fmt.Sprintf("node id %d out of range", id), nil)
	}
	return t.nodes[id], nil
}
