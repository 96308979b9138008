package schemes_test

import (
	"testing"

	"github.com/marco-caputo/multilevel-graphs/core"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/marco-caputo/multilevel-graphs/quad"
	"github.com/marco-caputo/multilevel-graphs/scheme"
	"github.com/marco-caputo/multilevel-graphs/schemes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedScenario1 builds spec.md §8 scenario 1's base graph:
// V={1,2,3,4,5}, E={(1,2),(2,3),(3,1),(3,4),(4,5)}.
func seedScenario1(t *testing.T) *decgraph.DecGraph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}, {"3", "4"}, {"4", "5"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return decgraph.NaturalTransformation(g)
}

func membersOf(st *scheme.LevelState) [][]string {
	var out [][]string
	for _, c := range st.CompTable.Sets() {
		out = append(out, c.Keys())
	}

	return out
}

func TestSCCScheme_Scenario1(t *testing.T) {
	lowerD := seedScenario1(t)
	s := schemes.NewSCCScheme()
	st, err := scheme.Build(s, lowerD, 1)
	require.NoError(t, err)

	assert.ElementsMatch(t, [][]string{{"1", "2", "3"}, {"4"}, {"5"}}, membersOf(st))

	// Sets are allocated in StronglyConnectedComponents' output order
	// ({1,2,3} first, {4} second, {5} third), so their supernode keys are
	// "1", "2", "3" respectively.
	assert.NotNil(t, st.DecGraph.Edge("1", "2"))
	assert.NotNil(t, st.DecGraph.Edge("2", "3"))
}

func TestSCCScheme_Scenario3_CollapseOnEdgeAdd(t *testing.T) {
	lowerD := seedScenario1(t)
	s := schemes.NewSCCScheme()
	st, err := scheme.Build(s, lowerD, 1)
	require.NoError(t, err)

	newEdge, err := lowerD.AddEdge("5", "3")
	require.NoError(t, err)

	in := quad.New()
	in.AddEdge(newEdge)
	_, err = scheme.Update(s, st, in)
	require.NoError(t, err)

	assert.Len(t, st.DecGraph.Nodes(), 1)
	only := st.DecGraph.Nodes()[0]
	assert.Len(t, only.Dec.V, 5)
	assert.Len(t, only.Dec.E, 6)
}

func TestCircuitsScheme_Scenario5(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"1", "2", "3", "4"} {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}, {"2", "4"}, {"4", "2"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	lowerD := decgraph.NaturalTransformation(g)

	s := schemes.NewCircuitsScheme()
	st, err := scheme.Build(s, lowerD, 1)
	require.NoError(t, err)

	found := membersOf(st)
	assert.Contains(t, found, []string{"1", "2", "3"})
	assert.Contains(t, found, []string{"2", "4"})
}

// TestCircuitsScheme_UpdateRemovedEdge_OnlyDropsCyclesThatUsedTheEdge builds
// a graph whose elementary circuits are 1->2->3->4->1, 1->5->3->4->1,
// 1->2->3->1 and 1->5->3->1. Maximality keeps A={1,2,3,4} and B={1,3,4,5};
// the two circuits through 3->1 are subsets of them. It then removes edge
// 3->1: A and B both contain "3" and "1" but neither steps 3->1, so both
// must survive, where a plain membership check would drop both.
func TestCircuitsScheme_UpdateRemovedEdge_OnlyDropsCyclesThatUsedTheEdge(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "1"},
		{"1", "5"}, {"5", "3"}, {"3", "1"},
	} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	lowerD := decgraph.NaturalTransformation(g)

	s := schemes.NewCircuitsScheme()
	st, err := scheme.Build(s, lowerD, 1)
	require.NoError(t, err)

	found := membersOf(st)
	require.Contains(t, found, []string{"1", "2", "3", "4"})
	require.Contains(t, found, []string{"1", "3", "4", "5"})

	removed := lowerD.Edge("3", "1")
	require.NotNil(t, removed)
	require.NoError(t, lowerD.RemoveEdge("3", "1"))

	in := quad.New()
	in.RemoveEdge(removed)
	_, err = scheme.Update(s, st, in)
	require.NoError(t, err)

	after := membersOf(st)
	assert.Contains(t, after, []string{"1", "2", "3", "4"})
	assert.Contains(t, after, []string{"1", "3", "4", "5"})
}

func TestCliquesScheme_Scenario2(t *testing.T) {
	lowerD := seedScenario1(t)
	s := schemes.NewCliquesScheme(false)
	st, err := scheme.Build(s, lowerD, 1)
	require.NoError(t, err)

	found := membersOf(st)
	assert.Contains(t, found, []string{"1", "2", "3"})
}

func TestStarsScheme_Basic(t *testing.T) {
	lowerD := seedScenario1(t)
	s := schemes.NewStarsScheme()
	st, err := scheme.Build(s, lowerD, 1)
	require.NoError(t, err)

	found := membersOf(st)
	assert.Contains(t, found, []string{"1", "2"})
	assert.Contains(t, found, []string{"1", "3", "4"})
}
