package ascii_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/ppl/ascii"
	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/constraint"
	"github.com/katalvlaran/ppl/generator"
	"github.com/katalvlaran/ppl/linsys"
	"github.com/katalvlaran/ppl/polyhedron"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
	"github.com/katalvlaran/ppl/saturation"
	"github.com/stretchr/testify/require"
)

func buildRow(t *testing.T, coeffs []int64, kind rowkind.Kind, topology rowkind.Topology) *row.Row {
	t.Helper()
	cs := make([]*bigint.Int, len(coeffs))
	for i, c := range coeffs {
		cs[i] = bigint.FromInt64(c)
	}
	return row.New(cs, kind, topology)
}

func TestSystemRoundTrip(t *testing.T) {
	t.Parallel()

	sys := linsys.New(3, rowkind.Closed)
	require.NoError(t, sys.Insert(buildRow(t, []int64{0, 1, 0}, rowkind.RayOrPointOrInequality, rowkind.Closed)))
	require.NoError(t, sys.Insert(buildRow(t, []int64{0, 0, 1}, rowkind.RayOrPointOrInequality, rowkind.Closed)))
	require.NoError(t, sys.InsertPending(buildRow(t, []int64{1, 1, 1}, rowkind.RayOrPointOrInequality, rowkind.Closed)))

	var buf bytes.Buffer
	require.NoError(t, ascii.DumpSystem(&buf, sys))

	got, err := ascii.LoadSystem(&buf)
	require.NoError(t, err)
	require.Equal(t, sys.NumRows(), got.NumRows())
	require.Equal(t, sys.NumColumns(), got.NumColumns())
	require.Equal(t, sys.Topology(), got.Topology())
	require.Equal(t, sys.PendingStart(), got.PendingStart())
	for i := 0; i < sys.NumRows(); i++ {
		require.Equal(t, 0, sys.Row(i).Compare(got.Row(i)))
	}
}

func TestConstraintSystemRoundTrip(t *testing.T) {
	t.Parallel()

	cs, err := constraint.New(2, rowkind.NNC)
	require.NoError(t, err)
	e1, err := constraint.NewLinearExpression(2)
	require.NoError(t, err)
	require.NoError(t, e1.SetCoefficient(0, bigint.FromInt64(1)))
	require.NoError(t, cs.Insert(constraint.NonStrict(e1)))
	e2, err := constraint.NewLinearExpression(2)
	require.NoError(t, err)
	require.NoError(t, e2.SetCoefficient(1, bigint.FromInt64(1)))
	require.NoError(t, cs.Insert(constraint.Strict(e2)))

	var buf bytes.Buffer
	require.NoError(t, ascii.DumpConstraintSystem(&buf, cs))

	got, err := ascii.LoadConstraintSystem(&buf)
	require.NoError(t, err)
	require.Equal(t, cs.NumConstraints(), got.NumConstraints())
	require.Equal(t, cs.Topology(), got.Topology())
	require.True(t, got.Constraint(1).IsStrict())
}

func TestGeneratorSystemRoundTrip(t *testing.T) {
	t.Parallel()

	gs, err := generator.New(2, rowkind.Closed)
	require.NoError(t, err)
	p, err := generator.Point([]*bigint.Int{bigint.FromInt64(1), bigint.FromInt64(2)}, bigint.FromInt64(1))
	require.NoError(t, err)
	require.NoError(t, gs.Insert(p))
	require.NoError(t, gs.Insert(generator.Ray([]*bigint.Int{bigint.FromInt64(1), bigint.FromInt64(0)})))

	var buf bytes.Buffer
	require.NoError(t, ascii.DumpGeneratorSystem(&buf, gs))

	got, err := ascii.LoadGeneratorSystem(&buf)
	require.NoError(t, err)
	require.Equal(t, gs.NumGenerators(), got.NumGenerators())
	require.True(t, got.Generator(0).IsPoint())
	require.True(t, got.Generator(1).IsRay())
}

func TestSaturationRoundTrip(t *testing.T) {
	t.Parallel()

	m := saturation.New(2, 3, saturation.SatC)
	require.NoError(t, m.Set(0, 1))
	require.NoError(t, m.Set(1, 2))

	var buf bytes.Buffer
	require.NoError(t, ascii.DumpSaturation(&buf, m))

	got, err := ascii.LoadSaturation(&buf)
	require.NoError(t, err)
	require.Equal(t, m.NumRows(), got.NumRows())
	require.Equal(t, m.NumCols(), got.NumCols())
	require.Equal(t, m.Orientation(), got.Orientation())
	require.True(t, got.Test(0, 1))
	require.True(t, got.Test(1, 2))
	require.False(t, got.Test(0, 0))
}

func TestPolyhedronRoundTrip(t *testing.T) {
	t.Parallel()

	p, err := polyhedron.NewUniverse(2, rowkind.Closed, nil)
	require.NoError(t, err)
	require.NoError(t, p.Minimize())

	var buf bytes.Buffer
	require.NoError(t, ascii.DumpPolyhedron(&buf, p))

	got, err := ascii.LoadPolyhedron(&buf, nil)
	require.NoError(t, err)
	require.Equal(t, p.SpaceDimension(), got.SpaceDimension())
	require.Equal(t, p.Topology(), got.Topology())

	empty, err := got.IsEmpty()
	require.NoError(t, err)
	require.False(t, empty)
	universe, err := got.IsUniverse()
	require.NoError(t, err)
	require.True(t, universe)
}
