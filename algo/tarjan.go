// File: tarjan.go
// Role: Tarjan's strongly connected components over a core.Graph snapshot.
package algo

import (
	"sort"

	"github.com/marco-caputo/multilevel-graphs/core"
)

// StronglyConnectedComponents partitions g's vertices into strongly
// connected components using Tarjan's algorithm. The result is sorted:
// each component's members are sorted, and components are sorted by their
// smallest member, for deterministic output.
func StronglyConnectedComponents(g *core.Graph) ([][]string, error) {
	t := &tarjanState{
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
	}

	for _, v := range g.Vertices() {
		if _, visited := t.index[v]; !visited {
			if err := t.strongConnect(g, v); err != nil {
				return nil, err
			}
		}
	}

	for _, comp := range t.components {
		sort.Strings(comp)
	}
	sort.Slice(t.components, func(i, j int) bool {
		return t.components[i][0] < t.components[j][0]
	})

	return t.components, nil
}

type tarjanState struct {
	counter    int
	index      map[string]int
	lowlink    map[string]int
	onStack    map[string]bool
	stack      []string
	components [][]string
}

func (t *tarjanState) strongConnect(g *core.Graph, v string) error {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	nbrs, err := g.NeighborIDs(v)
	if err != nil {
		return err
	}
	for _, w := range nbrs {
		if _, visited := t.index[w]; !visited {
			if err := t.strongConnect(g, w); err != nil {
				return err
			}
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		var comp []string
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		t.components = append(t.components, comp)
	}

	return nil
}
