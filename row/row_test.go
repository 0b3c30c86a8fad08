package row_test

import (
	"testing"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
	"github.com/stretchr/testify/require"
)

func coeffs(xs ...int64) []*bigint.Int {
	out := make([]*bigint.Int, len(xs))
	for i, x := range xs {
		out[i] = bigint.FromInt64(x)
	}
	return out
}

func TestStrongNormalize(t *testing.T) {
	t.Parallel()

	r := row.New(coeffs(0, 4, 6), rowkind.RayOrPointOrInequality, rowkind.Closed)
	require.NoError(t, r.StrongNormalize())
	require.True(t, r.At(1).Equal(bigint.FromInt64(2)))
	require.True(t, r.At(2).Equal(bigint.FromInt64(3)))
}

func TestSignNormalizeOnlyAffectsLineOrEquality(t *testing.T) {
	t.Parallel()

	line := row.New(coeffs(0, -1, -2), rowkind.LineOrEquality, rowkind.Closed)
	line.SignNormalize()
	require.Equal(t, 1, line.At(1).Sign())

	ray := row.New(coeffs(0, -1, -2), rowkind.RayOrPointOrInequality, rowkind.Closed)
	ray.SignNormalize()
	require.Equal(t, -1, ray.At(1).Sign())
}

func TestCombineEliminatesColumn(t *testing.T) {
	t.Parallel()

	a := row.New(coeffs(0, 2, 4), rowkind.RayOrPointOrInequality, rowkind.Closed)
	b := row.New(coeffs(0, 3, 9), rowkind.RayOrPointOrInequality, rowkind.Closed)

	require.NoError(t, a.Combine(b, 1))
	require.True(t, a.At(1).IsZero())
}

func TestCompareOrdersLinesBeforeRays(t *testing.T) {
	t.Parallel()

	line := row.New(coeffs(0, 1), rowkind.LineOrEquality, rowkind.Closed)
	ray := row.New(coeffs(0, 1), rowkind.RayOrPointOrInequality, rowkind.Closed)
	require.Equal(t, -1, line.Compare(ray))
	require.Equal(t, 1, ray.Compare(line))
}

func TestReducedScalarProductIgnoresEpsilon(t *testing.T) {
	t.Parallel()

	closedRow := row.New(coeffs(0, 1), rowkind.RayOrPointOrInequality, rowkind.Closed)
	nncRow := row.New(coeffs(0, 1, 5), rowkind.RayOrPointOrInequality, rowkind.NNC)

	got := closedRow.ReducedScalarProduct(nncRow)
	require.True(t, got.Equal(bigint.FromInt64(1)))
}

func TestParallelClass(t *testing.T) {
	t.Parallel()

	a := row.New(coeffs(0, 1, 2), rowkind.RayOrPointOrInequality, rowkind.Closed)
	b := row.New(coeffs(5, 1, 2), rowkind.RayOrPointOrInequality, rowkind.Closed)
	c := row.New(coeffs(0, -1, -2), rowkind.RayOrPointOrInequality, rowkind.Closed)
	d := row.New(coeffs(0, 1, 3), rowkind.RayOrPointOrInequality, rowkind.Closed)

	require.Equal(t, 1, a.ParallelClass(b))
	require.Equal(t, 1, a.ParallelClass(c))
	require.Equal(t, 2, a.ParallelClass(d))
	require.Equal(t, 0, a.ParallelClass(a.Clone()))
}
