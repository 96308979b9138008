// File: stars.go
// Role: StarsContractionScheme, the "optional" scheme spec.md §4.H
// mentions: each node plus its out-neighbours forms one ComponentSet,
// illustrating the "cover uncovered nodes as singletons" pattern with the
// simplest possible grouping rule.
package schemes

import (
	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/marco-caputo/multilevel-graphs/scheme"
)

// StarsScheme groups every node with its immediate out-neighbours into one
// ComponentSet (a "star" centred on that node), with maximal=true so a
// star fully contained in another's neighbourhood is absorbed rather than
// duplicated.
type StarsScheme struct {
	scheme.EdgeBased
	cfg scheme.Config
}

// NewStarsScheme builds a StarsScheme with the given configuration options.
func NewStarsScheme(opts ...scheme.Option) *StarsScheme {
	return &StarsScheme{cfg: scheme.NewConfig(opts...)}
}

func (s *StarsScheme) Name() string                    { return "stars" }
func (s *StarsScheme) Clone() scheme.ContractionScheme { return &StarsScheme{cfg: s.cfg} }
func (s *StarsScheme) Config() scheme.Config           { return s.cfg }

// ContractionFunction builds one star ComponentSet per node of lowerD,
// centred on that node and including its direct out-neighbours.
func (s *StarsScheme) ContractionFunction(lowerD *decgraph.DecGraph) (*compset.CompTable, error) {
	t := compset.NewCompTable()
	for _, n := range lowerD.Nodes() {
		members := []string{n.Key}
		for _, e := range lowerD.Edges() {
			if e.Tail.Key == n.Key && e.Head.Key != n.Key {
				members = append(members, e.Head.Key)
			}
		}
		c := compset.NewComponentSet(t.NextID(), members)
		if err := t.AddSet(c, true); err != nil {
			return nil, err
		}
	}
	t.ClearModified()

	return t, nil
}

func (s *StarsScheme) UpdateAddedNode(st *scheme.LevelState, n *decgraph.Supernode) error {
	return s.EdgeBased.UpdateAddedNode(s.cfg, st, n)
}

// UpdateAddedEdge (a->b) extends a's star to include b, recomputing the
// covering the same way the maximal-inclusion logic in
// ContractionFunction would for a's star alone.
func (s *StarsScheme) UpdateAddedEdge(st *scheme.LevelState, x *decgraph.Superedge) error {
	return s.rebuildStar(st, x.Tail.Key)
}

// UpdateRemovedEdge (a->b) shrinks a's star to drop b.
func (s *StarsScheme) UpdateRemovedEdge(st *scheme.LevelState, x *decgraph.Superedge) error {
	return s.rebuildStar(st, x.Tail.Key)
}

func (s *StarsScheme) rebuildStar(st *scheme.LevelState, centerKey string) error {
	for _, c := range st.CompTable.SetsOf(centerKey) {
		if c.Contains(centerKey) && isCenter(st, c, centerKey) {
			if err := st.CompTable.RemoveSet(c); err != nil {
				return err
			}
		}
	}

	members := []string{centerKey}
	for _, e := range st.LowerGraph.Edges() {
		if e.Tail.Key == centerKey && e.Head.Key != centerKey {
			members = append(members, e.Head.Key)
		}
	}
	c := compset.NewComponentSet(st.CompTable.NextID(), members)
	if err := st.CompTable.AddSet(c, true); err != nil {
		return err
	}

	return scheme.UpdateGraph(s.cfg, st)
}

// isCenter reports whether c is the star previously centred on centerKey —
// approximated as "c contains centerKey and every other member is reachable
// from centerKey by a single lower-level edge", which holds for every set
// this scheme itself ever creates.
func isCenter(st *scheme.LevelState, c *compset.ComponentSet, centerKey string) bool {
	for m := range c.Members {
		if m == centerKey {
			continue
		}
		if st.LowerGraph.Edge(centerKey, m) == nil {
			return false
		}
	}

	return true
}
