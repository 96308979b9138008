package compset_test

import (
	"testing"

	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompTable_AddRemoveSet(t *testing.T) {
	t1 := compset.NewCompTable()
	c1 := compset.NewComponentSet(t1.NextID(), []string{"a", "b"})
	require.NoError(t, t1.AddSet(c1, false))

	assert.True(t, t1.Contains("a"))
	assert.ElementsMatch(t, []string{"a", "b"}, t1.Modified())
	t1.ClearModified()

	require.NoError(t, t1.RemoveSet(c1))
	assert.False(t, t1.Contains("a"))
	assert.ElementsMatch(t, []string{"a", "b"}, t1.Modified())
}

func TestCompTable_AddSet_DuplicateID(t *testing.T) {
	t1 := compset.NewCompTable()
	c1 := compset.NewComponentSet(1, []string{"a"})
	require.NoError(t, t1.AddSet(c1, false))
	require.ErrorIs(t, t1.AddSet(compset.NewComponentSet(1, []string{"b"}), false), compset.ErrDuplicateSetID)
}

func TestCompTable_AddSet_Maximal(t *testing.T) {
	t1 := compset.NewCompTable()
	big := compset.NewComponentSet(t1.NextID(), []string{"a", "b", "c"})
	require.NoError(t, t1.AddSet(big, true))

	// subset: skipped, adds nothing new
	small := compset.NewComponentSet(t1.NextID(), []string{"a", "b"})
	require.NoError(t, t1.AddSet(small, true))
	assert.Len(t, t1.Sets(), 1)

	// superset: replaces the existing (now-subsumed) set
	t1.ClearModified()
	bigger := compset.NewComponentSet(t1.NextID(), []string{"a", "b", "c", "d"})
	require.NoError(t, t1.AddSet(bigger, true))
	assert.Len(t, t1.Sets(), 1)
	assert.Equal(t, bigger.ID, t1.Sets()[0].ID)
}

func TestCompTable_RemoveSet_Unknown(t *testing.T) {
	t1 := compset.NewCompTable()
	require.ErrorIs(t, t1.RemoveSet(compset.NewComponentSet(99, nil)), compset.ErrSetNotFound)
}

func TestComponentSet_SubsetOf(t *testing.T) {
	a := compset.NewComponentSet(1, []string{"x", "y"})
	b := compset.NewComponentSet(2, []string{"x", "y", "z"})
	assert.True(t, a.SubsetOf(b))
	assert.False(t, b.SubsetOf(a))
}
