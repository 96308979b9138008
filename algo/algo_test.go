package algo_test

import (
	"testing"

	"github.com/marco-caputo/multilevel-graphs/algo"
	"github.com/marco-caputo/multilevel-graphs/core"
	"github.com/marco-caputo/multilevel-graphs/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedGraph builds the base graph from spec.md §8 scenario 1:
// V={1,2,3,4,5}, E={(1,2),(2,3),(3,1),(3,4),(4,5)}.
func seedGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}, {"3", "4"}, {"4", "5"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

func TestStronglyConnectedComponents_Seed(t *testing.T) {
	g := seedGraph(t)
	sccs, err := algo.StronglyConnectedComponents(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]string{{"1", "2", "3"}, {"4"}, {"5"}}, sccs)
}

func TestSimpleCycles_Seed(t *testing.T) {
	g := seedGraph(t)
	cycles, err := algo.SimpleCycles(g)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"1", "2", "3", "1"}, cycles[0])
}

func TestSimpleCycles_TwoCycles(t *testing.T) {
	// spec.md §8 scenario 5: V={1,2,3,4}, E={(1,2),(2,3),(3,1),(2,4),(4,2)}.
	g := core.NewGraph()
	for _, e := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}, {"2", "4"}, {"4", "2"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	cycles, err := algo.SimpleCycles(g)
	require.NoError(t, err)
	require.Len(t, cycles, 2)
	assert.Contains(t, cycles, []string{"1", "2", "3", "1"})
	assert.Contains(t, cycles, []string{"2", "4", "2"})
}

func TestSimpleCycles_CrossCheckAgainstDFS(t *testing.T) {
	g := seedGraph(t)
	_, err := g.AddEdge("5", "3")
	require.NoError(t, err)

	full, err := algo.SimpleCycles(g)
	require.NoError(t, err)

	found, dfsCycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, found)

	fullSigs := map[string]struct{}{}
	for _, c := range full {
		sig, _ := dfs.Canonical(c)
		fullSigs[sig] = struct{}{}
	}
	for _, c := range dfsCycles {
		sig, _ := dfs.Canonical(c)
		assert.Contains(t, fullSigs, sig, "every DFS-found cycle must be in the exhaustive Johnson result")
	}
}

func TestCyclesThrough(t *testing.T) {
	g := seedGraph(t)
	_, err := g.AddEdge("5", "3")
	require.NoError(t, err)

	cycles, err := algo.CyclesThrough(g, "5", "3")
	require.NoError(t, err)
	require.NotEmpty(t, cycles)
	for _, c := range cycles {
		found := false
		for i := 0; i+1 < len(c); i++ {
			if c[i] == "5" && c[i+1] == "3" {
				found = true
			}
		}
		assert.True(t, found, "cycle %v must use edge 5->3", c)
	}
}

func TestMaximalCliques_NonReciprocalTriangle(t *testing.T) {
	g := seedGraph(t) // triangle 1->2->3->1 plus tail 3->4->5
	cliques, err := algo.MaximalCliques(g, false)
	require.NoError(t, err)
	assert.Contains(t, cliques, []string{"1", "2", "3"})
}

func TestMaximalCliques_ReciprocalRequiresMutualEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "2")
	_, _ = g.AddEdge("2", "1")
	_, _ = g.AddEdge("2", "3") // one-way only

	cliques, err := algo.MaximalCliques(g, true)
	require.NoError(t, err)
	assert.Contains(t, cliques, []string{"1", "2"})
	assert.Contains(t, cliques, []string{"3"})
	assert.NotContains(t, cliques, []string{"1", "2", "3"})
}
