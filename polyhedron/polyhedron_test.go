package polyhedron_test

import (
	"testing"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/constraint"
	"github.com/katalvlaran/ppl/generator"
	"github.com/katalvlaran/ppl/polyhedron"
	"github.com/katalvlaran/ppl/rowkind"
	"github.com/stretchr/testify/require"
)

func nonStrict(t *testing.T, numVars int, coeffs []int64, b int64) *constraint.Constraint {
	t.Helper()
	e, err := constraint.NewLinearExpression(numVars)
	require.NoError(t, err)
	for i, c := range coeffs {
		require.NoError(t, e.SetCoefficient(constraint.Variable(i), bigint.FromInt64(c)))
	}
	e.SetInhomogeneousTerm(bigint.FromInt64(b))
	return constraint.NonStrict(e)
}

func strict(t *testing.T, numVars int, coeffs []int64, b int64) *constraint.Constraint {
	t.Helper()
	e, err := constraint.NewLinearExpression(numVars)
	require.NoError(t, err)
	for i, c := range coeffs {
		require.NoError(t, e.SetCoefficient(constraint.Variable(i), bigint.FromInt64(c)))
	}
	e.SetInhomogeneousTerm(bigint.FromInt64(b))
	return constraint.Strict(e)
}

func point(t *testing.T, coords ...int64) *generator.Generator {
	t.Helper()
	cs := make([]*bigint.Int, len(coords))
	for i, c := range coords {
		cs[i] = bigint.FromInt64(c)
	}
	g, err := generator.Point(cs, bigint.FromInt64(1))
	require.NoError(t, err)
	return g
}

// Triangle (0,0),(1,0),(0,1) built from three half-plane constraints:
// x >= 0, y >= 0, x+y <= 1.
func TestTriangleFromConstraints(t *testing.T) {
	t.Parallel()

	cs, err := constraint.New(2, rowkind.Closed)
	require.NoError(t, err)
	require.NoError(t, cs.Insert(nonStrict(t, 2, []int64{1, 0}, 0)))  // x >= 0
	require.NoError(t, cs.Insert(nonStrict(t, 2, []int64{0, 1}, 0)))  // y >= 0
	require.NoError(t, cs.Insert(nonStrict(t, 2, []int64{-1, -1}, 1))) // -x-y+1 >= 0

	p, err := polyhedron.FromConstraints(cs, nil)
	require.NoError(t, err)
	require.NoError(t, p.Minimize())

	empty, err := p.IsEmpty()
	require.NoError(t, err)
	require.False(t, empty)

	bounded, err := p.IsBounded()
	require.NoError(t, err)
	require.True(t, bounded)

	require.Equal(t, 3, p.Generators().NumGenerators())
	for i := 0; i < p.Generators().NumGenerators(); i++ {
		require.True(t, p.Generators().Generator(i).IsPoint())
	}
}

// Half-line x >= 0 in 1-D: a point at the origin plus a ray.
func TestHalfLineFromConstraints(t *testing.T) {
	t.Parallel()

	cs, err := constraint.New(1, rowkind.Closed)
	require.NoError(t, err)
	require.NoError(t, cs.Insert(nonStrict(t, 1, []int64{1}, 0))) // x >= 0

	p, err := polyhedron.FromConstraints(cs, nil)
	require.NoError(t, err)
	require.NoError(t, p.Minimize())

	bounded, err := p.IsBounded()
	require.NoError(t, err)
	require.False(t, bounded)

	var points, rays int
	for i := 0; i < p.Generators().NumGenerators(); i++ {
		g := p.Generators().Generator(i)
		if g.IsPoint() {
			points++
		}
		if g.IsRay() {
			rays++
		}
	}
	require.Equal(t, 1, points)
	require.Equal(t, 1, rays)
}

// NNC strict vs closed: x > 0 in 1-D.
func TestNNCStrictVsClosed(t *testing.T) {
	t.Parallel()

	cs, err := constraint.New(1, rowkind.NNC)
	require.NoError(t, err)
	require.NoError(t, cs.Insert(strict(t, 1, []int64{1}, 0))) // x > 0

	p, err := polyhedron.FromConstraints(cs, nil)
	require.NoError(t, err)
	require.NoError(t, p.Minimize())

	var closurePoints, points, rays int
	for i := 0; i < p.Generators().NumGenerators(); i++ {
		g := p.Generators().Generator(i)
		switch {
		case g.IsClosurePoint():
			closurePoints++
		case g.IsPoint():
			points++
		case g.IsRay():
			rays++
		}
	}
	require.Equal(t, 1, closurePoints)
	require.Equal(t, 1, points)
	require.Equal(t, 1, rays)

	closed, err := p.IsTopologicallyClosed()
	require.NoError(t, err)
	require.False(t, closed)
}

// Emptiness detection: x >= 1 and x <= 0 together are unsatisfiable.
func TestEmptinessDetection(t *testing.T) {
	t.Parallel()

	cs, err := constraint.New(1, rowkind.Closed)
	require.NoError(t, err)
	require.NoError(t, cs.Insert(nonStrict(t, 1, []int64{1}, -1))) // x - 1 >= 0
	require.NoError(t, cs.Insert(nonStrict(t, 1, []int64{-1}, 0))) // -x >= 0

	p, err := polyhedron.FromConstraints(cs, nil)
	require.NoError(t, err)
	require.NoError(t, p.Minimize())

	empty, err := p.IsEmpty()
	require.NoError(t, err)
	require.True(t, empty)
	require.Equal(t, 0, p.Generators().NumGenerators())

	// Only a point (or closure point) generator can promote an empty
	// polyhedron out of emptiness; any other kind is rejected outright.
	require.Error(t, p.AddGenerator(generator.Line([]*bigint.Int{bigint.FromInt64(1)})))

	require.NoError(t, p.AddGenerator(point(t, 5)))
	promoted, err := p.IsEmpty()
	require.NoError(t, err)
	require.False(t, promoted)
}

// Poly-hull exactness: two isolated points never hull exactly.
func TestPolyHullExactness(t *testing.T) {
	t.Parallel()

	gs1, err := generator.New(2, rowkind.Closed)
	require.NoError(t, err)
	require.NoError(t, gs1.Insert(point(t, 0, 0)))
	p, err := polyhedron.FromGenerators(gs1, nil)
	require.NoError(t, err)

	gs2, err := generator.New(2, rowkind.Closed)
	require.NoError(t, err)
	require.NoError(t, gs2.Insert(point(t, 2, 0)))
	q, err := polyhedron.FromGenerators(gs2, nil)
	require.NoError(t, err)

	before := p.Clone()
	exact, err := polyhedron.PolyHullAssignIfExact(p, q)
	require.NoError(t, err)
	require.False(t, exact)
	require.True(t, polyhedron.Equals(p, before))
}

// H79-widening chain stabilizes: Q0 = {(0,0)}, Qn+1 = hull(Qn, shift_x(Qn)).
func TestH79WideningChainStabilizes(t *testing.T) {
	t.Parallel()

	gs, err := generator.New(2, rowkind.Closed)
	require.NoError(t, err)
	require.NoError(t, gs.Insert(point(t, 0, 0)))
	q, err := polyhedron.FromGenerators(gs, nil)
	require.NoError(t, err)
	require.NoError(t, q.Minimize())

	shiftX := func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) {
		out := p.Clone()
		e, err := constraint.NewLinearExpression(2)
		if err != nil {
			return nil, err
		}
		require.NoError(t, e.SetCoefficient(0, bigint.FromInt64(1)))
		e.SetInhomogeneousTerm(bigint.FromInt64(1))
		if err := out.AffineImage(0, e, bigint.FromInt64(1)); err != nil {
			return nil, err
		}
		return out, nil
	}

	widened := q
	for i := 0; i < 4; i++ {
		shifted, err := shiftX(widened)
		require.NoError(t, err)
		next, err := polyhedron.PolyHull(widened, shifted)
		require.NoError(t, err)
		require.NoError(t, next.H79WideningAssign(widened))
		widened = next
	}

	bounded, err := widened.IsBounded()
	require.NoError(t, err)
	require.False(t, bounded, "chain should widen to an unbounded half-plane")
}

// Intersection of two overlapping squares: the shared square.
func TestIntersectionOfSquares(t *testing.T) {
	t.Parallel()

	buildSquare := func(lo, hi int64) *polyhedron.Polyhedron {
		cs, err := constraint.New(2, rowkind.Closed)
		require.NoError(t, err)
		require.NoError(t, cs.Insert(nonStrict(t, 2, []int64{1, 0}, -lo)))
		require.NoError(t, cs.Insert(nonStrict(t, 2, []int64{0, 1}, -lo)))
		require.NoError(t, cs.Insert(nonStrict(t, 2, []int64{-1, 0}, hi)))
		require.NoError(t, cs.Insert(nonStrict(t, 2, []int64{0, -1}, hi)))
		p, err := polyhedron.FromConstraints(cs, nil)
		require.NoError(t, err)
		return p
	}

	a := buildSquare(0, 2)
	b := buildSquare(1, 3)

	inter, err := polyhedron.Intersection(a, b)
	require.NoError(t, err)
	require.NoError(t, inter.Minimize())

	bounded, err := inter.IsBounded()
	require.NoError(t, err)
	require.True(t, bounded)
	require.Equal(t, 4, inter.Generators().NumGenerators())
}
