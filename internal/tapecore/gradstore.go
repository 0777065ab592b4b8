package tapecore

import "github.com/born-ml/gradtape/algebra"

// GradientStore accumulates gradients keyed by NodeID as the backward
// driver walks the tape. Both the first-order and higher-order gradient
// engines share this single representation: it always holds Value[D], never
// a bare D, so a higher-order pass can freely feed a stored gradient back
// into the recording algebra without a separate bridging type.
type GradientStore[D algebra.Numeric[D]] struct {
	grads map[NodeID]Value[D]
}

// NewGradientStore returns an empty store.
func NewGradientStore[D algebra.Numeric[D]]() *GradientStore[D] {
	return &GradientStore[D]{grads: make(map[NodeID]Value[D])}
}

// Get returns the accumulated gradient for id, if any.
func (s *GradientStore[D]) Get(id NodeID) (Value[D], bool) {
	v, ok := s.grads[id]
	return v, ok
}

// Seed installs v as the gradient for id with no prior contribution. Used
// once per backward pass, to install the seed gradient at the root.
func (s *GradientStore[D]) Seed(id NodeID, v Value[D]) {
	s.grads[id] = v
}

// Add accumulates grad into whatever is already stored for id. When a
// prior contribution exists, the two are combined via add, the *active*
// gradient engine's own Add — under a first-order graph this just sums the
// two datums and discards any id, but under a higher-order graph it records
// a genuine Add node on the tape, so the combined gradient can itself be
// differentiated through both contributions. Calling D's own arithmetic
// directly here, instead of add, would be a correctness bug for the
// higher-order case: it would silently drop half of the dependency graph
// that a further backward pass needs to see.
func (s *GradientStore[D]) Add(id NodeID, grad Value[D], add func(a, b Value[D]) (Value[D], error)) error {
	existing, ok := s.grads[id]
	if !ok {
		s.grads[id] = grad
		return nil
	}
	sum, err := add(existing, grad)
	if err != nil {
		return algebra.Wrap("GradientStore.Add", "accumulating gradient", err)
	}
	s.grads[id] = sum
	return nil
}

// Len returns the number of distinct node ids with an accumulated
// gradient.
func (s *GradientStore[D]) Len() int {
	return len(s.grads)
}
