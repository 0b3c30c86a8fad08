package bigint_test

import (
	"testing"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		a, b   int64
		expect int64
	}{
		{"coprime", 7, 5, 1},
		{"shared_factor", 12, 18, 6},
		{"zero_a", 0, 9, 9},
		{"zero_b", 9, 0, 9},
		{"both_zero", 0, 0, 0},
		{"negative", -12, 18, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := bigint.FromInt64(tc.a).GCD(bigint.FromInt64(tc.b))
			want := bigint.FromInt64(tc.expect)
			require.True(t, got.Equal(want), "GCD(%d,%d)=%s want %d", tc.a, tc.b, got, tc.expect)
		})
	}
}

func TestLCM(t *testing.T) {
	t.Parallel()

	got := bigint.FromInt64(4).LCM(bigint.FromInt64(6))
	require.True(t, got.Equal(bigint.FromInt64(12)))
}

func TestExactDiv(t *testing.T) {
	t.Parallel()

	q, err := bigint.FromInt64(12).ExactDiv(bigint.FromInt64(4))
	require.NoError(t, err)
	require.True(t, q.Equal(bigint.FromInt64(3)))

	_, err = bigint.FromInt64(12).ExactDiv(bigint.FromInt64(5))
	require.ErrorIs(t, err, bigint.ErrNotExact)

	_, err = bigint.FromInt64(12).ExactDiv(bigint.Zero())
	require.ErrorIs(t, err, bigint.ErrDivisionByZero)
}

func TestGCDAll(t *testing.T) {
	t.Parallel()

	xs := []*bigint.Int{bigint.FromInt64(0), bigint.FromInt64(8), bigint.FromInt64(12)}
	got := bigint.GCDAll(xs)
	require.True(t, got.Equal(bigint.FromInt64(4)))
}
