package decgraph_test

import (
	"testing"

	"github.com/marco-caputo/multilevel-graphs/core"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBase(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}, {"3", "4"}, {"4", "5"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestNaturalTransformation_RoundTripsToPlainGraph(t *testing.T) {
	g := seedBase(t)
	d := decgraph.NaturalTransformation(g)
	assert.Equal(t, 0, d.Level)
	assert.Len(t, d.Nodes(), 5)
	assert.Len(t, d.Edges(), 5)

	back := d.Graph()
	assert.ElementsMatch(t, g.Vertices(), back.Vertices())
	assert.True(t, back.HasEdge("1", "2"))
	assert.True(t, back.HasEdge("3", "4"))
}

func TestDecGraph_AddRemoveNode(t *testing.T) {
	d := decgraph.NewDecGraph(0)
	n := decgraph.NewSupernode("a", 0)
	require.NoError(t, d.AddNode(n))
	require.ErrorIs(t, d.AddNode(n), decgraph.ErrDuplicateKey)

	m := decgraph.NewSupernode("b", 0)
	require.NoError(t, d.AddNode(m))
	_, err := d.AddEdge("a", "b")
	require.NoError(t, err)

	require.ErrorIs(t, d.RemoveNode("a"), decgraph.ErrNodeHasIncidentEdges)
	require.NoError(t, d.RemoveEdge("a", "b"))
	require.NoError(t, d.RemoveNode("a"))
	require.ErrorIs(t, d.RemoveNode("a"), decgraph.ErrNodeNotFound)
}

func TestDecGraph_AddEdge_UnknownEndpoint(t *testing.T) {
	d := decgraph.NewDecGraph(0)
	require.NoError(t, d.AddNode(decgraph.NewSupernode("a", 0)))
	_, err := d.AddEdge("a", "ghost")
	require.ErrorIs(t, err, decgraph.ErrNodeNotFound)
}

func TestDecGraph_Equal(t *testing.T) {
	g := seedBase(t)
	d1 := decgraph.NaturalTransformation(g)
	d2 := decgraph.NaturalTransformation(g)
	assert.True(t, d1.Equal(d2))

	require.NoError(t, d2.RemoveEdge("4", "5"))
	require.NoError(t, d2.RemoveNode("5"))
	assert.False(t, d1.Equal(d2))
}

func TestDecGraph_InducedSubgraph(t *testing.T) {
	g := seedBase(t)
	d := decgraph.NaturalTransformation(g)
	sub := d.InducedSubgraph(map[string]bool{"1": true, "2": true, "3": true})
	assert.Len(t, sub.Nodes(), 3)
	assert.Len(t, sub.Edges(), 3)
	assert.Nil(t, sub.Edge("3", "4"))
}

func TestDecGraph_String_IsStableAcrossEqualGraphs(t *testing.T) {
	g := seedBase(t)
	d1 := decgraph.NaturalTransformation(g)
	d2 := decgraph.NaturalTransformation(g)
	assert.Equal(t, d1.String(), d2.String())
	assert.Contains(t, d1.String(), "1 -> 2")
}

func TestDecGraph_GoString_RendersLevelAndKeys(t *testing.T) {
	d := decgraph.NaturalTransformation(seedBase(t))
	s := d.GoString()
	assert.Contains(t, s, "decgraph.DecGraph{Level: 0")
	assert.Contains(t, s, `"1"`)
}

func TestSuperedge_DecAggregation(t *testing.T) {
	lower := decgraph.NewDecGraph(0)
	require.NoError(t, lower.AddNode(decgraph.NewSupernode("1", 0)))
	require.NoError(t, lower.AddNode(decgraph.NewSupernode("2", 0)))
	baseEdge, err := lower.AddEdge("1", "2")
	require.NoError(t, err)
	assert.Equal(t, 0, baseEdge.Len())

	upper := decgraph.NewDecGraph(1)
	require.NoError(t, upper.AddNode(decgraph.NewSupernode("A", 1)))
	require.NoError(t, upper.AddNode(decgraph.NewSupernode("B", 1)))
	top, err := upper.AddEdge("A", "B")
	require.NoError(t, err)
	top.AddDec(baseEdge)
	assert.Equal(t, 1, top.Len())
	assert.True(t, top.HasDec(baseEdge))
}

func TestCompleteDecontraction_Flat(t *testing.T) {
	g := seedBase(t)
	d := decgraph.NaturalTransformation(g)
	flat := d.CompleteDecontraction()
	assert.True(t, d.Equal(flat))
}

func TestCompleteDecontraction_OneLevelUp(t *testing.T) {
	base := decgraph.NewDecGraph(0)
	for _, k := range []string{"1", "2", "3"} {
		require.NoError(t, base.AddNode(decgraph.NewSupernode(k, 0)))
	}
	_, err := base.AddEdge("1", "2")
	require.NoError(t, err)
	e23, err := base.AddEdge("2", "3")
	require.NoError(t, err)

	// supernode A contracts {1,2}; edge e23 becomes the only cross edge A->C.
	supA := decgraph.NewSupernode("A", 1)
	inner := decgraph.NewDecGraph(0)
	require.NoError(t, inner.AddNode(base.Node("1")))
	require.NoError(t, inner.AddNode(base.Node("2")))
	_, err = inner.AddEdge("1", "2")
	require.NoError(t, err)
	supA.Dec = inner

	supC := decgraph.NewSupernode("C", 1)
	supC.Dec = decgraph.NewDecGraph(0)
	require.NoError(t, supC.Dec.AddNode(base.Node("3")))

	top := decgraph.NewDecGraph(1)
	require.NoError(t, top.AddNode(supA))
	require.NoError(t, top.AddNode(supC))
	topEdge, err := top.AddEdge("A", "C")
	require.NoError(t, err)
	topEdge.AddDec(e23)

	flat := top.CompleteDecontraction()
	assert.Len(t, flat.Nodes(), 3)
	assert.Len(t, flat.Edges(), 2)
	assert.NotNil(t, flat.Edge("1", "2"))
	assert.NotNil(t, flat.Edge("2", "3"))
}
