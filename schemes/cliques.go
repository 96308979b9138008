// File: cliques.go
// Role: CliquesContractionScheme (spec.md §4.H).
package schemes

import (
	"github.com/marco-caputo/multilevel-graphs/algo"
	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/marco-caputo/multilevel-graphs/core"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/marco-caputo/multilevel-graphs/scheme"
)

// CliquesScheme groups nodes into maximal cliques of the undirected closure
// of the lower-level graph (mutual-edge-only if Reciprocal, either-direction
// otherwise). Incremental maintenance recomputes cliques over the
// 2-neighbourhood of a changed edge's endpoints rather than the whole
// level — full incremental clique maintenance is NP-hard in general — and
// replaces only the ComponentSets that intersect that neighbourhood.
type CliquesScheme struct {
	scheme.EdgeBased
	cfg        scheme.Config
	Reciprocal bool
}

// NewCliquesScheme builds a CliquesScheme. reciprocal selects the
// undirected-closure rule algo.MaximalCliques uses.
func NewCliquesScheme(reciprocal bool, opts ...scheme.Option) *CliquesScheme {
	return &CliquesScheme{cfg: scheme.NewConfig(opts...), Reciprocal: reciprocal}
}

func (s *CliquesScheme) Name() string {
	if s.Reciprocal {
		return "cliques(reciprocal=true)"
	}

	return "cliques(reciprocal=false)"
}

func (s *CliquesScheme) Clone() scheme.ContractionScheme {
	return &CliquesScheme{cfg: s.cfg, Reciprocal: s.Reciprocal}
}

func (s *CliquesScheme) Config() scheme.Config { return s.cfg }

// ContractionFunction computes the maximal cliques of lowerD, one
// ComponentSet each, with singletons layered in for uncovered nodes.
func (s *CliquesScheme) ContractionFunction(lowerD *decgraph.DecGraph) (*compset.CompTable, error) {
	cliques, err := algo.MaximalCliques(lowerD.Graph(), s.Reciprocal)
	if err != nil {
		return nil, err
	}
	t := compset.NewCompTable()
	for _, clique := range cliques {
		c := compset.NewComponentSet(t.NextID(), clique)
		if err := t.AddSet(c, false); err != nil {
			return nil, err
		}
	}
	for _, n := range lowerD.Nodes() {
		if t.Contains(n.Key) {
			continue
		}
		c := compset.NewComponentSet(t.NextID(), []string{n.Key})
		if err := t.AddSet(c, false); err != nil {
			return nil, err
		}
	}
	t.ClearModified()

	return t, nil
}

func (s *CliquesScheme) UpdateAddedNode(st *scheme.LevelState, n *decgraph.Supernode) error {
	return s.EdgeBased.UpdateAddedNode(s.cfg, st, n)
}

func (s *CliquesScheme) UpdateAddedEdge(st *scheme.LevelState, x *decgraph.Superedge) error {
	return s.recomputeNeighbourhood(st, x.Tail.Key, x.Head.Key)
}

func (s *CliquesScheme) UpdateRemovedEdge(st *scheme.LevelState, x *decgraph.Superedge) error {
	return s.recomputeNeighbourhood(st, x.Tail.Key, x.Head.Key)
}

// recomputeNeighbourhood recomputes maximal cliques over the induced
// subgraph of the 2-hop neighbourhood of a and b in st.LowerGraph, removes
// every existing ComponentSet intersecting that neighbourhood, and installs
// the freshly computed cliques (plus singletons for anyone left uncovered).
func (s *CliquesScheme) recomputeNeighbourhood(st *scheme.LevelState, a, b string) error {
	neighbourhood, err := twoHopNeighbourhood(st.LowerGraph.Graph(), a, b)
	if err != nil {
		return err
	}

	toCover := map[string]bool{}
	for k := range neighbourhood {
		toCover[k] = true
	}
	for _, c := range st.CompTable.Sets() {
		intersects := false
		for k := range c.Members {
			if neighbourhood[k] {
				intersects = true
				break
			}
		}
		if intersects {
			for k := range c.Members {
				toCover[k] = true
			}
			if err := st.CompTable.RemoveSet(c); err != nil {
				return err
			}
		}
	}

	induced := core.InducedSubgraph(st.LowerGraph.Graph(), neighbourhood)
	cliques, err := algo.MaximalCliques(induced, s.Reciprocal)
	if err != nil {
		return err
	}
	for _, clique := range cliques {
		c := compset.NewComponentSet(st.CompTable.NextID(), clique)
		if err := st.CompTable.AddSet(c, false); err != nil {
			return err
		}
	}
	for key := range toCover {
		if st.CompTable.Contains(key) {
			continue
		}
		c := compset.NewComponentSet(st.CompTable.NextID(), []string{key})
		if err := st.CompTable.AddSet(c, false); err != nil {
			return err
		}
	}

	return scheme.UpdateGraph(s.cfg, st)
}

// twoHopNeighbourhood returns the 2-hop out/in neighbourhood of a and b
// (a and b themselves plus every vertex within two edges of either, in
// either direction) as a keep-set suitable for core.InducedSubgraph.
func twoHopNeighbourhood(g *core.Graph, a, b string) (map[string]bool, error) {
	adjacent := map[string][]string{}
	for _, e := range g.Edges() {
		adjacent[e.From] = append(adjacent[e.From], e.To)
		adjacent[e.To] = append(adjacent[e.To], e.From)
	}
	keep := map[string]bool{a: true, b: true}
	frontier := []string{a, b}
	for hop := 0; hop < 2; hop++ {
		var next []string
		for _, v := range frontier {
			for _, id := range adjacent[v] {
				if !keep[id] {
					keep[id] = true
					next = append(next, id)
				}
			}
		}
		frontier = next
	}

	return keep, nil
}
