package simplify_test

import (
	"testing"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/linsys"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
	"github.com/katalvlaran/ppl/saturation"
	"github.com/katalvlaran/ppl/simplify"
	"github.com/stretchr/testify/require"
)

func coeffs(xs ...int64) []*bigint.Int {
	out := make([]*bigint.Int, len(xs))
	for i, x := range xs {
		out[i] = bigint.FromInt64(x)
	}
	return out
}

func TestMinimizeDropsDuplicateRow(t *testing.T) {
	t.Parallel()

	sys := linsys.New(3, rowkind.Closed)
	r1 := row.New(coeffs(0, 1, 0), rowkind.RayOrPointOrInequality, rowkind.Closed)
	r2 := row.New(coeffs(0, 1, 0), rowkind.RayOrPointOrInequality, rowkind.Closed)
	r3 := row.New(coeffs(0, 0, 1), rowkind.RayOrPointOrInequality, rowkind.Closed)
	require.NoError(t, sys.Insert(r1))
	require.NoError(t, sys.Insert(r2))
	require.NoError(t, sys.Insert(r3))

	sat := saturation.New(3, 1, saturation.SatG)
	require.NoError(t, sat.Set(0, 0))
	require.NoError(t, sat.Set(1, 0))
	require.NoError(t, sat.Set(2, 0))

	require.NoError(t, simplify.Minimize(sys, sat))

	require.Equal(t, 2, sys.NumRows())
	require.Equal(t, sat.NumRows(), sys.NumRows())
}

func TestMinimizeEliminatesRedundantLine(t *testing.T) {
	t.Parallel()

	sys := linsys.New(3, rowkind.Closed)
	l1 := row.New(coeffs(0, 1, 0), rowkind.LineOrEquality, rowkind.Closed)
	l2 := row.New(coeffs(0, 2, 0), rowkind.LineOrEquality, rowkind.Closed)
	require.NoError(t, sys.Insert(l1))
	require.NoError(t, sys.Insert(l2))

	sat := saturation.New(2, 0, saturation.SatG)

	require.NoError(t, simplify.Minimize(sys, sat))

	require.Equal(t, 1, sys.NumRows())
}
