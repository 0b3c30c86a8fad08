package linsys_test

import (
	"testing"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/linsys"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
	"github.com/stretchr/testify/require"
)

func c(xs ...int64) []*bigint.Int {
	out := make([]*bigint.Int, len(xs))
	for i, x := range xs {
		out[i] = bigint.FromInt64(x)
	}
	return out
}

func TestInsertPendingPreservesCursor(t *testing.T) {
	t.Parallel()

	s := linsys.New(2, rowkind.Closed)
	require.NoError(t, s.Insert(row.New(c(0, 1), rowkind.RayOrPointOrInequality, rowkind.Closed)))
	require.Equal(t, 1, s.PendingStart())

	require.NoError(t, s.InsertPending(row.New(c(0, 2), rowkind.RayOrPointOrInequality, rowkind.Closed)))
	require.Equal(t, 1, s.PendingStart())
	require.Equal(t, 2, s.NumRows())
	require.True(t, s.HasPending())
}

func TestSortRows(t *testing.T) {
	t.Parallel()

	s := linsys.New(2, rowkind.Closed)
	require.NoError(t, s.InsertPending(row.New(c(0, 3), rowkind.RayOrPointOrInequality, rowkind.Closed)))
	require.NoError(t, s.InsertPending(row.New(c(0, 1), rowkind.RayOrPointOrInequality, rowkind.Closed)))
	require.NoError(t, s.InsertPending(row.New(c(0, 2), rowkind.LineOrEquality, rowkind.Closed)))
	s.MarkPendingProcessed()
	s.SortRows()
	require.True(t, s.Sorted())
	require.Equal(t, rowkind.LineOrEquality, s.Row(0).Kind())
}

func TestAddAndRemoveDimensionColumns(t *testing.T) {
	t.Parallel()

	s := linsys.New(2, rowkind.Closed)
	require.NoError(t, s.Insert(row.New(c(0, 1), rowkind.RayOrPointOrInequality, rowkind.Closed)))
	require.NoError(t, s.AddDimensionColumns(1))
	require.Equal(t, 3, s.NumColumns())
	require.Equal(t, 3, s.Row(0).Length())
	require.True(t, s.Row(0).At(2).IsZero())

	require.NoError(t, s.RemoveDimensionColumns(1))
	require.Equal(t, 2, s.NumColumns())
}

func TestAdjustTopologyClosedToNNCAndBack(t *testing.T) {
	t.Parallel()

	s := linsys.New(2, rowkind.Closed)
	require.NoError(t, s.Insert(row.New(c(0, 1), rowkind.RayOrPointOrInequality, rowkind.Closed)))

	ok, err := s.AdjustTopologyAndSpaceDimension(rowkind.NNC, 1, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, s.NumColumns())
	require.Equal(t, rowkind.NNC, s.Topology())

	ok, err = s.AdjustTopologyAndSpaceDimension(rowkind.Closed, 1, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, s.NumColumns())
	require.Equal(t, rowkind.Closed, s.Topology())
}

func TestAdjustTopologyRefused(t *testing.T) {
	t.Parallel()

	s := linsys.New(3, rowkind.NNC)
	ok, err := s.AdjustTopologyAndSpaceDimension(rowkind.Closed, 1, func() bool { return false })
	require.ErrorIs(t, err, linsys.ErrTopologyRefused)
	require.False(t, ok)
	require.Equal(t, rowkind.NNC, s.Topology())
}

func TestPermuteColumns(t *testing.T) {
	t.Parallel()

	s := linsys.New(3, rowkind.Closed)
	require.NoError(t, s.Insert(row.New(c(0, 1, 2), rowkind.RayOrPointOrInequality, rowkind.Closed)))

	require.NoError(t, s.PermuteColumns([]int{0, 2, 1}))
	require.True(t, s.Row(0).At(1).Equal(bigint.FromInt64(2)))
	require.True(t, s.Row(0).At(2).Equal(bigint.FromInt64(1)))
}

func TestRemoveRowsWhere(t *testing.T) {
	t.Parallel()

	s := linsys.New(2, rowkind.Closed)
	require.NoError(t, s.InsertPending(row.New(c(0, 0), rowkind.RayOrPointOrInequality, rowkind.Closed)))
	require.NoError(t, s.InsertPending(row.New(c(0, 1), rowkind.RayOrPointOrInequality, rowkind.Closed)))
	s.MarkPendingProcessed()

	s.RemoveRowsWhere(func(r *row.Row) bool {
		return r.At(0).IsZero() && r.AllHomogeneousZero()
	})
	require.Equal(t, 1, s.NumRows())
}
