package dfs_test

import (
	"testing"

	"github.com/marco-caputo/multilevel-graphs/core"
	"github.com/marco-caputo/multilevel-graphs/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCycles_Triangle(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "2")
	_, _ = g.AddEdge("2", "3")
	_, _ = g.AddEdge("3", "1")

	found, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"1", "2", "3", "1"}, cycles[0])
}

func TestDetectCycles_Acyclic(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "2")
	_, _ = g.AddEdge("2", "3")

	found, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cycles)
}

func TestCanonical_RotationInvariant(t *testing.T) {
	sigA, _ := dfs.Canonical([]string{"1", "2", "3", "1"})
	sigB, _ := dfs.Canonical([]string{"2", "3", "1", "2"})
	assert.Equal(t, sigA, sigB)
}
