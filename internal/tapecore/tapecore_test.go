package tapecore_test

import (
	"testing"

	"github.com/born-ml/gradtape/algebra"
	"github.com/born-ml/gradtape/internal/tapecore"
	"github.com/born-ml/gradtape/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1 — product gradient: a=1, b=2, c=a*b. evaluate_gradients(c,1) => {a:2, b:1}.
func TestS1_ProductGradient(t *testing.T) {
	g := tapecore.NewGraph1[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())

	a := g.Variable(1)
	b := g.Variable(2)
	c, err := g.Mul(a, b)
	require.NoError(t, err)

	cID, ok := c.ID()
	require.True(t, ok)

	grads, err := g.EvaluateGradients(cID, 1)
	require.NoError(t, err)

	aID, _ := a.ID()
	bID, _ := b.ID()

	aGrad, ok := grads.Get(aID)
	require.True(t, ok)
	assert.Equal(t, numeric.Scalar(2), aGrad.Data())

	bGrad, ok := grads.Get(bID)
	require.True(t, ok)
	assert.Equal(t, numeric.Scalar(1), bGrad.Data())
}

// S2 — integer subtraction: a=1, b=2, c=a-b. Forward c=-1.
// evaluate_gradients_once(c,1) => {a:1, b:-1}.
func TestS2_SubtractionGradientOnce(t *testing.T) {
	g := tapecore.NewGraph1[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())

	a := g.Variable(1)
	b := g.Variable(2)
	c, err := g.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, numeric.Scalar(-1), c.Data())

	cID, _ := c.ID()
	grads, err := g.EvaluateGradientsOnce(cID, 1)
	require.NoError(t, err)

	aID, _ := a.ID()
	bID, _ := b.ID()

	aGrad, _ := grads.Get(aID)
	assert.Equal(t, numeric.Scalar(1), aGrad.Data())

	bGrad, _ := grads.Get(bID)
	assert.Equal(t, numeric.Scalar(-1), bGrad.Data())
}

// S3/S4 — second and third order via GraphN: x=1, y=0.4, z=x*y*y.
// d/dx,d/dy of z, then differentiate dz[x] again, then again.
func TestS3S4_HigherOrder(t *testing.T) {
	g := tapecore.NewGraphN[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())

	x := g.Variable(1)
	y := g.Variable(0.4)

	xy, err := g.Mul(x, y)
	require.NoError(t, err)
	z, err := g.Mul(xy, y)
	require.NoError(t, err)

	zID, _ := z.ID()
	dz, err := g.ComputeGradients(zID, tapecore.Constant[numeric.Scalar](1))
	require.NoError(t, err)

	xID, _ := x.ID()
	yID, _ := y.ID()

	dzx, ok := dz.Get(xID)
	require.True(t, ok)
	// dz/dx = y*y = 0.16
	assert.InDelta(t, 0.16, float64(dzx.Data()), 1e-9)

	dzxID, ok := dzx.ID()
	require.True(t, ok, "dz/dx must itself carry a gradient id under GraphN")

	d2z, err := g.ComputeGradients(dzxID, tapecore.Constant[numeric.Scalar](1))
	require.NoError(t, err)

	d2zy, ok := d2z.Get(yID)
	require.True(t, ok)
	// d2z/dydx = 2y = 0.8
	assert.InDelta(t, 0.8, float64(d2zy.Data()), 1e-9)

	d2zyID, ok := d2zy.ID()
	require.True(t, ok, "second derivative must itself carry a gradient id under GraphN")

	d3z, err := g.ComputeGradients(d2zyID, tapecore.Constant[numeric.Scalar](1))
	require.NoError(t, err)

	d3zy, ok := d3z.Get(yID)
	require.True(t, ok)
	// d3z/dy2dx = 2
	assert.InDelta(t, 2.0, float64(d3zy.Data()), 1e-9)
}

// S5 lives in the numeric package (symbolic_test.go), since it exercises
// numeric.Sym directly.

// S6 — dimension check: add of shapes (4,3) and (4,2) fails under Check,
// Eval, and Graph1, and Graph1 appends no node on failure.
func TestS6_DimensionMismatch(t *testing.T) {
	a := numeric.NewArray(algebra.Dims{4, 3}, make([]float64, 12))
	b := numeric.NewArray(algebra.Dims{4, 2}, make([]float64, 8))

	check := tapecore.NewCheck[numeric.Array]()
	_, err := check.Add(a.Dims(), b.Dims())
	requireDimMismatch(t, err)

	ev := tapecore.NewEval[numeric.Array]()
	_, err = ev.Add(a, b)
	requireDimMismatch(t, err)

	g := tapecore.NewGraph1[numeric.Array](tapecore.NewEval[numeric.Array]())
	before := g.NumNodes()
	av := g.Variable(a)
	bv := g.Variable(b)
	before = g.NumNodes() // after recording the two variables
	_, err = g.Add(av, bv)
	requireDimMismatch(t, err)
	assert.Equal(t, before, g.NumNodes(), "a failed Add must not append a node")
}

func requireDimMismatch(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var typed *algebra.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, algebra.DimensionMismatch, typed.Kind)
}

// Invariant 1 — id monotonicity: every recorded node's inputs have ids
// strictly less than the node's own id. We verify this indirectly: each
// Variable/operation returns an id equal to the current node count at the
// time it was recorded, so ids assigned to later operations are always
// larger than ids assigned to their (already-constructed) inputs.
func TestInvariant_IDMonotonicity(t *testing.T) {
	g := tapecore.NewGraph1[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())

	a := g.Variable(1)
	b := g.Variable(2)
	c, err := g.Add(a, b)
	require.NoError(t, err)

	aID, _ := a.ID()
	bID, _ := b.ID()
	cID, _ := c.ID()

	assert.Less(t, aID, cID)
	assert.Less(t, bID, cID)
}

// Invariant 2 — no-id iff constant: an operation over only constants
// produces a constant result (no id, no node appended).
func TestInvariant_NoIDIffConstant(t *testing.T) {
	g := tapecore.NewGraph1[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())

	before := g.NumNodes()
	a := g.Constant(1)
	b := g.Constant(2)
	c, err := g.Add(a, b)
	require.NoError(t, err)

	assert.False(t, a.HasID())
	assert.False(t, b.HasID())
	assert.False(t, c.HasID())
	assert.Equal(t, before, g.NumNodes())
}

// Invariant 3 — topological correctness: a node's gradient accounts for
// every path that reaches it, not just the first one recorded. Here y feeds
// the product through both operands (y*y), so dz/dy must sum both
// contributions rather than reflect only one.
func TestInvariant_TopologicalCorrectness(t *testing.T) {
	g := tapecore.NewGraph1[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())

	y := g.Variable(3)
	z, err := g.Mul(y, y)
	require.NoError(t, err)
	zID, _ := z.ID()

	grads, err := g.EvaluateGradients(zID, 1)
	require.NoError(t, err)

	yID, _ := y.ID()
	yGrad, ok := grads.Get(yID)
	require.True(t, ok)
	// d(y*y)/dy = 2y = 6, not y = 3: both paths must be counted.
	assert.InDelta(t, 6.0, float64(yGrad.Data()), 1e-9)
}

// Invariant 4 — idempotent non-consuming backward: repeated
// EvaluateGradients on an unmodified tape yields equal gradient stores.
func TestInvariant_IdempotentEvaluateGradients(t *testing.T) {
	g := tapecore.NewGraph1[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())

	a := g.Variable(2)
	b := g.Variable(3)
	c, err := g.Mul(a, b)
	require.NoError(t, err)
	cID, _ := c.ID()

	first, err := g.EvaluateGradients(cID, 1)
	require.NoError(t, err)
	second, err := g.EvaluateGradients(cID, 1)
	require.NoError(t, err)

	aID, _ := a.ID()
	g1, _ := first.Get(aID)
	g2, _ := second.Get(aID)
	assert.Equal(t, g1.Data(), g2.Data())
}

// Invariant 5 — linearity of seed.
func TestInvariant_LinearityOfSeed(t *testing.T) {
	g := tapecore.NewGraph1[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())

	a := g.Variable(2)
	b := g.Variable(3)
	c, err := g.Mul(a, b)
	require.NoError(t, err)
	cID, _ := c.ID()
	aID, _ := a.ID()

	s1, err := g.EvaluateGradients(cID, 1)
	require.NoError(t, err)
	s2, err := g.EvaluateGradients(cID, 2)
	require.NoError(t, err)
	combined, err := g.EvaluateGradients(cID, 5) // 1*1 + 2*2 == 5
	require.NoError(t, err)

	g1, _ := s1.Get(aID)
	g2, _ := s2.Get(aID)
	gc, _ := combined.Get(aID)

	want := float64(g1.Data())*1 + float64(g2.Data())*2
	assert.InDelta(t, want, float64(gc.Data()), 1e-9)
}

// Invariant 6 — mode equivalence: Graph1's forward datum matches Eval's.
func TestInvariant_ModeEquivalence(t *testing.T) {
	eval := tapecore.NewEval[numeric.Scalar]()
	evalResult, err := eval.Mul(2, 3)
	require.NoError(t, err)

	g := tapecore.NewGraph1[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())
	a := g.Variable(2)
	b := g.Variable(3)
	c, err := g.Mul(a, b)
	require.NoError(t, err)

	assert.Equal(t, evalResult, c.Data())
}

// Invariant 7 — higher-order consistency: under GraphN, the second
// derivative of a cubic obtained via two ComputeGradients passes matches
// the closed-form second derivative at the same point.
func TestInvariant_HigherOrderConsistency(t *testing.T) {
	g := tapecore.NewGraphN[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())

	x := g.Variable(3)
	x2, err := g.Mul(x, x)
	require.NoError(t, err)
	x3, err := g.Mul(x2, x)
	require.NoError(t, err)
	x3ID, _ := x3.ID()

	// f(x) = x^3, f'(x) = 3x^2 = 27 at x=3.
	d1, err := g.ComputeGradients(x3ID, tapecore.Constant[numeric.Scalar](1))
	require.NoError(t, err)
	xID, _ := x.ID()
	dx, ok := d1.Get(xID)
	require.True(t, ok)
	assert.InDelta(t, 27.0, float64(dx.Data()), 1e-9)

	dxID, ok := dx.ID()
	require.True(t, ok, "first derivative must itself carry a gradient id under GraphN")

	// f''(x) = 6x = 18 at x=3.
	d2, err := g.ComputeGradients(dxID, tapecore.Constant[numeric.Scalar](1))
	require.NoError(t, err)
	d2x, ok := d2.Get(xID)
	require.True(t, ok)
	assert.InDelta(t, 18.0, float64(d2x.Data()), 1e-9)
}

// Invariant 8 — tape-spent rejection: a second consuming pass over an
// already-consumed node fails with TapeSpent.
func TestInvariant_TapeSpentRejection(t *testing.T) {
	g := tapecore.NewGraph1[numeric.Scalar](tapecore.NewEval[numeric.Scalar]())

	a := g.Variable(2)
	b := g.Variable(3)
	c, err := g.Mul(a, b)
	require.NoError(t, err)
	cID, _ := c.ID()

	_, err = g.EvaluateGradientsOnce(cID, 1)
	require.NoError(t, err)

	_, err = g.EvaluateGradientsOnce(cID, 1)
	require.Error(t, err)

	var typed *algebra.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, algebra.TapeSpent, typed.Kind)
}
