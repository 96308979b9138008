// File: circuits.go
// Role: CircuitsBasedContractionScheme (spec.md §4.H).
package schemes

import (
	"github.com/marco-caputo/multilevel-graphs/algo"
	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/marco-caputo/multilevel-graphs/scheme"
)

// CircuitsScheme groups nodes into maximal elementary circuits:
// contraction_function enumerates every simple cycle of the lower-level
// graph, one ComponentSet per cycle, with singletons layered in afterward
// for nodes no cycle covers — AddSet(maximal=true) naturally skips a
// singleton already subsumed by a cycle's set and only keeps genuinely
// uncovered nodes.
type CircuitsScheme struct {
	scheme.DecontractionEdgeBased
	cfg scheme.Config
}

// cycleAttrKey indexes the ordered closed walk (spec.md §4.H's "elementary
// circuit", as returned by algo.SimpleCycles/algo.CyclesThrough) a
// cycle-backed ComponentSet was built from, under ComponentSet.Attr. Private
// to this scheme — never touched by a caller's CSetAttrFunc, since circuits'
// own cycle sets are never run through one (only EdgeBased's singleton path
// is). Needed so UpdateRemovedEdge can later test edge-adjacency within the
// cycle, not just vertex membership.
const cycleAttrKey = "circuits:cycle"

// NewCircuitsScheme builds a CircuitsScheme with the given configuration options.
func NewCircuitsScheme(opts ...scheme.Option) *CircuitsScheme {
	return &CircuitsScheme{cfg: scheme.NewConfig(opts...)}
}

func (s *CircuitsScheme) Name() string                    { return "circuits" }
func (s *CircuitsScheme) Clone() scheme.ContractionScheme { return &CircuitsScheme{cfg: s.cfg} }
func (s *CircuitsScheme) Config() scheme.Config           { return s.cfg }

// ContractionFunction enumerates lowerD's elementary circuits, one
// ComponentSet each (maximal by set inclusion), then covers every
// remaining node with a singleton.
func (s *CircuitsScheme) ContractionFunction(lowerD *decgraph.DecGraph) (*compset.CompTable, error) {
	cycles, err := algo.SimpleCycles(lowerD.Graph())
	if err != nil {
		return nil, err
	}
	t := compset.NewCompTable()
	for _, cyc := range cycles {
		c := compset.NewComponentSet(t.NextID(), cyc)
		c.Attr[cycleAttrKey] = cyc
		if err := t.AddSet(c, true); err != nil {
			return nil, err
		}
	}
	for _, n := range lowerD.Nodes() {
		c := compset.NewComponentSet(t.NextID(), []string{n.Key})
		if err := t.AddSet(c, true); err != nil {
			return nil, err
		}
	}
	t.ClearModified()

	return t, nil
}

func (s *CircuitsScheme) UpdateAddedNode(st *scheme.LevelState, n *decgraph.Supernode) error {
	return s.EdgeBased.UpdateAddedNode(s.cfg, st, n)
}

// UpdateAddedEdge mirrors the edge into the decontracted graph, enumerates
// the new elementary circuits that use it, and inserts each as a maximal
// ComponentSet.
func (s *CircuitsScheme) UpdateAddedEdge(st *scheme.LevelState, x *decgraph.Superedge) error {
	if err := s.AddEdgeToDecontraction(st, x); err != nil {
		return err
	}
	cycles, err := algo.CyclesThrough(s.Decontracted(st).Graph(), x.Tail.Key, x.Head.Key)
	if err != nil {
		return err
	}
	for _, cyc := range cycles {
		c := compset.NewComponentSet(st.CompTable.NextID(), cyc)
		c.Attr[cycleAttrKey] = cyc
		if err := st.CompTable.AddSet(c, true); err != nil {
			return err
		}
	}

	return scheme.UpdateGraph(s.cfg, st)
}

// UpdateRemovedEdge drops the edge from the decontracted graph and removes
// every ComponentSet whose cycle used it, re-covering any node left
// uncovered with a fresh singleton.
func (s *CircuitsScheme) UpdateRemovedEdge(st *scheme.LevelState, x *decgraph.Superedge) error {
	if err := s.RemoveEdgeFromDecontraction(st, x); err != nil {
		return err
	}

	affected := map[string]bool{x.Tail.Key: true, x.Head.Key: true}
	for _, c := range st.CompTable.Sets() {
		if c.Len() < 2 || !c.Contains(x.Tail.Key) || !c.Contains(x.Head.Key) {
			continue
		}
		if !usesEdgeConsecutively(c, x.Tail.Key, x.Head.Key) {
			continue
		}
		for k := range c.Members {
			affected[k] = true
		}
		if err := st.CompTable.RemoveSet(c); err != nil {
			return err
		}
	}

	for key := range affected {
		if st.CompTable.Contains(key) {
			continue
		}
		c := compset.NewComponentSet(st.CompTable.NextID(), []string{key})
		if err := st.CompTable.AddSet(c, true); err != nil {
			return err
		}
	}

	return scheme.UpdateGraph(s.cfg, st)
}

// usesEdgeConsecutively reports whether tailKey->headKey is one of the
// consecutive steps of the ordered closed walk c was built from (spec.md
// §4.H: "remove every ComponentSet whose underlying cycle used this edge").
// Two distinct cycles can share every member of {tailKey, headKey} plus
// other vertices without either one actually stepping from tailKey directly
// to headKey — e.g. cycle A={1,2,3,4} via 1→2,2→3,3→4,4→1 and cycle
// B={1,3,5} via 1→5,5→3,3→1 both contain "1" and "3", but only B steps
// 3→1 — so membership in c.Members alone cannot answer this; the ordered
// sequence stashed in c.Attr at creation time (ContractionFunction,
// UpdateAddedEdge) is required. A set with no stored sequence (a plain
// singleton) never reaches here, since callers only check c.Len() >= 2.
func usesEdgeConsecutively(c *compset.ComponentSet, tailKey, headKey string) bool {
	cyc, ok := c.Attr[cycleAttrKey].([]string)
	if !ok {
		return false
	}

	return algo.ConsecutivePair(cyc, tailKey, headKey)
}
