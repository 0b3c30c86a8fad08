package config_test

import (
	"testing"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	c := config.New()
	require.Positive(t, c.MaxSpaceDimension())
	require.Positive(t, c.IrrationalPrecision())
	require.NotNil(t, c.NewInt(5))
}

func TestOptionsOverrideDefaults(t *testing.T) {
	t.Parallel()

	c := config.New(
		config.WithMaxSpaceDimension(8),
		config.WithIrrationalPrecision(128),
	)
	require.Equal(t, 8, c.MaxSpaceDimension())
	require.EqualValues(t, 128, c.IrrationalPrecision())
}

func TestWithMaxSpaceDimensionPanicsOnNegative(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		config.WithMaxSpaceDimension(-1)
	})
}

func TestWithBigIntAllocatorPanicsOnNil(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		config.WithBigIntAllocator(nil)
	})
}

func TestWithBigIntAllocatorIsUsed(t *testing.T) {
	t.Parallel()

	called := false
	c := config.New(config.WithBigIntAllocator(func(v int64) *bigint.Int {
		called = true
		return bigint.FromInt64(v)
	}))
	c.NewInt(3)
	require.True(t, called)
}
