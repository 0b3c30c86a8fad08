package saturation_test

import (
	"testing"

	"github.com/katalvlaran/ppl/saturation"
	"github.com/stretchr/testify/require"
)

func TestSetClearTest(t *testing.T) {
	t.Parallel()

	m := saturation.New(2, 3, saturation.SatC)
	require.NoError(t, m.Set(0, 1))
	require.True(t, m.Test(0, 1))
	require.NoError(t, m.Clear(0, 1))
	require.False(t, m.Test(0, 1))
}

func TestTransposeRoundTrip(t *testing.T) {
	t.Parallel()

	m := saturation.New(2, 3, saturation.SatC)
	require.NoError(t, m.Set(0, 2))
	require.NoError(t, m.Set(1, 0))

	tr := m.Transpose()
	require.Equal(t, saturation.SatG, tr.Orientation())
	require.True(t, tr.Test(2, 0))
	require.True(t, tr.Test(0, 1))

	back := tr.Transpose()
	require.Equal(t, saturation.SatC, back.Orientation())
	require.True(t, back.Test(0, 2))
	require.True(t, back.Test(1, 0))
}

func TestAppendAndRemoveRow(t *testing.T) {
	t.Parallel()

	m := saturation.New(1, 2, saturation.SatC)
	idx := m.AppendRow()
	require.Equal(t, 1, idx)
	require.Equal(t, 2, m.NumRows())

	require.NoError(t, m.RemoveRow(0))
	require.Equal(t, 1, m.NumRows())
}
