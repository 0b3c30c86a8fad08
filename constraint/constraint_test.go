package constraint_test

import (
	"testing"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/constraint"
	"github.com/katalvlaran/ppl/rowkind"
	"github.com/stretchr/testify/require"
)

func expr(t *testing.T, numVars int, coeffs []int64, b int64) *constraint.LinearExpression {
	t.Helper()
	e, err := constraint.NewLinearExpression(numVars)
	require.NoError(t, err)
	for i, c := range coeffs {
		require.NoError(t, e.SetCoefficient(constraint.Variable(i), bigint.FromInt64(c)))
	}
	e.SetInhomogeneousTerm(bigint.FromInt64(b))
	return e
}

func TestStrictForbiddenInClosed(t *testing.T) {
	t.Parallel()

	cs, err := constraint.New(1, rowkind.Closed)
	require.NoError(t, err)

	c := constraint.Strict(expr(t, 1, []int64{1}, 0)) // x > 0
	err = cs.Insert(c)
	require.ErrorIs(t, err, constraint.ErrStrictInClosed)
}

func TestInsertPromotesTopology(t *testing.T) {
	t.Parallel()

	cs, err := constraint.New(1, rowkind.NNC)
	require.NoError(t, err)

	c := constraint.NonStrict(expr(t, 1, []int64{1}, 0)) // x >= 0, built closed-tagged
	require.NoError(t, cs.Insert(c))
	require.Equal(t, 1, cs.NumConstraints())
	require.False(t, cs.Constraint(0).IsStrict())
}

func TestTautologicalAndInconsistent(t *testing.T) {
	t.Parallel()

	tauto := constraint.NonStrict(expr(t, 1, []int64{0}, 1)) // 0*x + 1 >= 0
	require.True(t, tauto.IsTautological())

	bad := constraint.NonStrict(expr(t, 1, []int64{0}, -1)) // 0*x - 1 >= 0
	require.True(t, bad.IsInconsistent())
}
