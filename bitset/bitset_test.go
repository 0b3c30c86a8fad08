package bitset_test

import (
	"testing"

	"github.com/katalvlaran/ppl/bitset"
	"github.com/stretchr/testify/require"
)

func TestSetTestClear(t *testing.T) {
	t.Parallel()

	s := bitset.New(8)
	require.False(t, s.Test(3))
	s.SetBit(3)
	require.True(t, s.Test(3))
	s.ClearBit(3)
	require.False(t, s.Test(3))
}

func TestSuperSet(t *testing.T) {
	t.Parallel()

	a := bitset.New(8)
	a.SetBit(1)
	a.SetBit(2)
	a.SetBit(3)

	b := bitset.New(8)
	b.SetBit(1)
	b.SetBit(2)

	require.True(t, a.IsSuperSet(b))
	require.False(t, b.IsSuperSet(a))
}

func TestUnionClone(t *testing.T) {
	t.Parallel()

	a := bitset.New(4)
	a.SetBit(0)
	b := bitset.New(4)
	b.SetBit(1)

	u := a.Union(b)
	require.True(t, u.Test(0))
	require.True(t, u.Test(1))

	clone := u.Clone()
	clone.ClearBit(0)
	require.True(t, u.Test(0), "clone must not alias original")
}
