package convert_test

import (
	"testing"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/constraint"
	"github.com/katalvlaran/ppl/convert"
	"github.com/katalvlaran/ppl/generator"
	"github.com/katalvlaran/ppl/rowkind"
	"github.com/katalvlaran/ppl/saturation"
	"github.com/stretchr/testify/require"
)

func coords(xs ...int64) []*bigint.Int {
	out := make([]*bigint.Int, len(xs))
	for i, x := range xs {
		out[i] = bigint.FromInt64(x)
	}
	return out
}

// buildQuadrant returns the generator system of the first quadrant of
// R^2: the origin, plus the two axis rays.
func buildQuadrant(t *testing.T) (*generator.System, *saturation.Matrix) {
	t.Helper()
	gs, err := generator.New(2, rowkind.Closed)
	require.NoError(t, err)

	origin, err := generator.Point(coords(0, 0), bigint.FromInt64(1))
	require.NoError(t, err)
	require.NoError(t, gs.Insert(origin))
	require.NoError(t, gs.Insert(generator.Ray(coords(1, 0))))
	require.NoError(t, gs.Insert(generator.Ray(coords(0, 1))))

	sat := saturation.New(gs.NumGenerators(), 0, saturation.SatC)
	return gs, sat
}

func TestIncorporateInequalityKeepsBoundedSide(t *testing.T) {
	t.Parallel()

	gs, sat := buildQuadrant(t)

	// x <= 1, i.e. -x + 1 >= 0.
	e, err := constraint.NewLinearExpression(2)
	require.NoError(t, err)
	require.NoError(t, e.SetCoefficient(constraint.Variable(0), bigint.FromInt64(-1)))
	e.SetInhomogeneousTerm(bigint.FromInt64(1))
	c := constraint.NonStrict(e)

	require.NoError(t, convert.AddConstraint(gs, sat, c))

	require.Equal(t, gs.NumGenerators(), sat.NumRows())
	require.EqualValues(t, 1, sat.NumCols())
}

func TestIncorporateEqualityCollapsesDimension(t *testing.T) {
	t.Parallel()

	gs, sat := buildQuadrant(t)

	// y = 0.
	e, err := constraint.NewLinearExpression(2)
	require.NoError(t, err)
	require.NoError(t, e.SetCoefficient(constraint.Variable(1), bigint.FromInt64(1)))
	c := constraint.Equal(e)

	require.NoError(t, convert.AddConstraint(gs, sat, c))

	for i := 0; i < gs.NumGenerators(); i++ {
		g := gs.Generator(i)
		require.True(t, g.Coordinate(1).IsZero())
	}
}
