package generator_test

import (
	"testing"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/generator"
	"github.com/katalvlaran/ppl/rowkind"
	"github.com/stretchr/testify/require"
)

func coords(xs ...int64) []*bigint.Int {
	out := make([]*bigint.Int, len(xs))
	for i, x := range xs {
		out[i] = bigint.FromInt64(x)
	}
	return out
}

func TestClosurePointForbiddenInClosed(t *testing.T) {
	t.Parallel()

	gs, err := generator.New(1, rowkind.Closed)
	require.NoError(t, err)

	cp, err := generator.ClosurePoint(coords(0), bigint.FromInt64(1))
	require.NoError(t, err)
	require.ErrorIs(t, gs.Insert(cp), generator.ErrClosurePointInClosed)
}

func TestPointKindClassification(t *testing.T) {
	t.Parallel()

	p, err := generator.Point(coords(1, 2), bigint.FromInt64(1))
	require.NoError(t, err)
	require.Equal(t, generator.PointKind, p.Kind())

	l := generator.Line(coords(1, 0))
	require.Equal(t, generator.LineKind, l.Kind())

	r := generator.Ray(coords(0, 1))
	require.Equal(t, generator.RayKind, r.Kind())
}

func TestMatchingClosurePoint(t *testing.T) {
	t.Parallel()

	gs, err := generator.New(1, rowkind.NNC)
	require.NoError(t, err)

	p, err := generator.Point(coords(1), bigint.FromInt64(1))
	require.NoError(t, err)
	require.NoError(t, gs.Insert(p))
	require.NoError(t, gs.Insert(p.MatchingClosurePoint()))

	require.True(t, gs.EveryPointHasMatchingClosurePoint())
}

func TestRemoveInvalidLinesAndRays(t *testing.T) {
	t.Parallel()

	gs, err := generator.New(1, rowkind.Closed)
	require.NoError(t, err)
	require.NoError(t, gs.Insert(generator.Ray(coords(0))))
	p, err := generator.Point(coords(1), bigint.FromInt64(1))
	require.NoError(t, err)
	require.NoError(t, gs.Insert(p))

	gs.RemoveInvalidLinesAndRays()
	require.Equal(t, 1, gs.NumGenerators())
}
