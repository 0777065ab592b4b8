package tapecore

import "github.com/born-ml/gradtape/algebra"

// Check is the dimension-only algebra: every operation runs over
// algebra.Dims instead of the datum itself, catching shape mismatches
// without ever touching real data.
type Check[D algebra.HasDims] struct{}

// NewCheck returns a dimension-only algebra for D.
func NewCheck[D algebra.HasDims]() Check[D] {
	return Check[D]{}
}

func (Check[D]) Variable(d D) algebra.Dims { return d.Dims() }
func (Check[D]) Constant(d D) algebra.Dims { return d.Dims() }

func (Check[D]) Add(a, b algebra.Dims) (algebra.Dims, error) {
	if !a.Equal(b) {
		return nil, algebra.DimMismatch("Check.Add", a, b)
	}
	return a, nil
}

func (Check[D]) Neg(v algebra.Dims) (algebra.Dims, error) {
	return v, nil
}

func (Check[D]) Sub(a, b algebra.Dims) (algebra.Dims, error) {
	if !a.Equal(b) {
		return nil, algebra.DimMismatch("Check.Sub", a, b)
	}
	return a, nil
}

func (Check[D]) Mul(a, b algebra.Dims) (algebra.Dims, error) {
	if !a.Equal(b) {
		return nil, algebra.DimMismatch("Check.Mul", a, b)
	}
	return a, nil
}
