package bfs_test

import (
	"testing"

	"github.com/marco-caputo/multilevel-graphs/bfs"
	"github.com/marco-caputo/multilevel-graphs/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBFS_Reachable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")

	ok, err := bfs.Reachable(g, "a", "c")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bfs.Reachable(g, "c", "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBFS_UnknownStart(t *testing.T) {
	g := core.NewGraph()
	_, err := bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}
