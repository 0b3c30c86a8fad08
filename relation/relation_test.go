package relation_test

import (
	"testing"

	"github.com/katalvlaran/ppl/relation"
	"github.com/stretchr/testify/require"
)

func TestConFlagsImpliesAndUnion(t *testing.T) {
	t.Parallel()

	f := relation.ConIsIncluded.Union(relation.ConSaturates)
	require.True(t, f.Implies(relation.ConIsIncluded))
	require.True(t, f.Implies(relation.ConSaturates))
	require.False(t, f.Implies(relation.ConIsDisjoint))
}

func TestConFlagsString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "NOTHING", relation.ConNothing.String())
	require.Equal(t, "IS_INCLUDED & SATURATES", relation.ConIsIncluded.Union(relation.ConSaturates).String())
}

func TestGenFlagsSubsumes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "NOTHING", relation.GenNothing.String())
	require.Equal(t, "SUBSUMES", relation.GenSubsumes.String())
	require.True(t, relation.GenSubsumes.Implies(relation.GenSubsumes))
}
