// File: scc.go
// Role: SCCsContractionScheme (spec.md §4.H).
package schemes

import (
	"fmt"
	"strconv"

	"github.com/marco-caputo/multilevel-graphs/algo"
	"github.com/marco-caputo/multilevel-graphs/bfs"
	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/marco-caputo/multilevel-graphs/scheme"
)

// SCCScheme groups nodes by strongly connected component: contraction_function
// is Tarjan's partition of the lower-level graph; edge additions that close
// a cycle between two distinct supernodes collapse every supernode on that
// cycle into one ComponentSet; edge removals that split a supernode's
// interior into multiple SCCs split its ComponentSet to match.
type SCCScheme struct {
	scheme.EdgeBased
	cfg scheme.Config
}

// NewSCCScheme builds an SCCScheme with the given configuration options.
func NewSCCScheme(opts ...scheme.Option) *SCCScheme {
	return &SCCScheme{cfg: scheme.NewConfig(opts...)}
}

func (s *SCCScheme) Name() string                    { return "scc" }
func (s *SCCScheme) Clone() scheme.ContractionScheme { return &SCCScheme{cfg: s.cfg} }
func (s *SCCScheme) Config() scheme.Config           { return s.cfg }

// ContractionFunction partitions lowerD's vertices into strongly connected
// components, one ComponentSet each.
func (s *SCCScheme) ContractionFunction(lowerD *decgraph.DecGraph) (*compset.CompTable, error) {
	comps, err := algo.StronglyConnectedComponents(lowerD.Graph())
	if err != nil {
		return nil, err
	}
	t := compset.NewCompTable()
	for _, comp := range comps {
		c := compset.NewComponentSet(t.NextID(), comp)
		if err := t.AddSet(c, false); err != nil {
			return nil, err
		}
	}
	t.ClearModified()

	return t, nil
}

func (s *SCCScheme) UpdateAddedNode(st *scheme.LevelState, n *decgraph.Supernode) error {
	return s.EdgeBased.UpdateAddedNode(s.cfg, st, n)
}

// UpdateAddedEdge implements spec.md §4.H's SCC edge-add rule.
func (s *SCCScheme) UpdateAddedEdge(st *scheme.LevelState, x *decgraph.Superedge) error {
	u, v := x.Tail.Supernode, x.Head.Supernode
	if u == nil || v == nil {
		return fmt.Errorf("schemes: scc: edge endpoint uncovered")
	}
	if u.Key == v.Key {
		if err := u.Dec.PutEdge(x); err != nil && err != decgraph.ErrDuplicateKey {
			return err
		}
		return nil
	}

	wasEmpty := st.DecGraph.Edge(u.Key, v.Key) == nil
	if err := scheme.AddEdgeInSuperedge(s.cfg, st, u.Key, v.Key, x); err != nil {
		return err
	}
	if !wasEmpty {
		return nil
	}

	reachable, err := bfs.Reachable(st.DecGraph.Graph(), v.Key, u.Key)
	if err != nil {
		return err
	}
	if !reachable {
		return nil
	}

	return s.collapseCycle(st)
}

// UpdateRemovedEdge implements spec.md §4.H's SCC edge-remove rule.
func (s *SCCScheme) UpdateRemovedEdge(st *scheme.LevelState, x *decgraph.Superedge) error {
	u, v := x.Tail.Supernode, x.Head.Supernode
	if u == nil || v == nil {
		return nil
	}
	if u.Key != v.Key {
		return scheme.RemoveEdgeInSuperedge(s.cfg, st, u.Key, v.Key, x)
	}

	if err := u.Dec.RemoveEdge(x.Tail.Key, x.Head.Key); err != nil {
		return err
	}
	subComps, err := algo.StronglyConnectedComponents(u.Dec.Graph())
	if err != nil {
		return err
	}
	if len(subComps) <= 1 {
		return nil
	}

	return s.splitComponentSet(st, u, subComps)
}

// collapseCycle recomputes the SCCs of the current upper-level graph and,
// for the one containing more than one supernode, removes their individual
// ComponentSets and replaces them with one ComponentSet equal to the union
// of their members, then reconciles the upper DecGraph so later events in
// this pass see the merge.
func (s *SCCScheme) collapseCycle(st *scheme.LevelState) error {
	comps, err := algo.StronglyConnectedComponents(st.DecGraph.Graph())
	if err != nil {
		return err
	}
	for _, comp := range comps {
		if len(comp) < 2 {
			continue
		}
		union := map[string]struct{}{}
		for _, supernodeKey := range comp {
			id, convErr := strconv.Atoi(supernodeKey)
			if convErr != nil {
				continue
			}
			set := st.CompTable.Set(id)
			if set == nil {
				continue
			}
			for m := range set.Members {
				union[m] = struct{}{}
			}
			if err := st.CompTable.RemoveSet(set); err != nil {
				return err
			}
		}
		members := make([]string, 0, len(union))
		for m := range union {
			members = append(members, m)
		}
		merged := compset.NewComponentSet(st.CompTable.NextID(), members)
		if err := st.CompTable.AddSet(merged, false); err != nil {
			return err
		}
	}

	return scheme.UpdateGraph(s.cfg, st)
}

// splitComponentSet replaces u's ComponentSet with one fresh ComponentSet
// per sub-SCC of u's now-disconnected interior.
func (s *SCCScheme) splitComponentSet(st *scheme.LevelState, u *decgraph.Supernode, subComps [][]string) error {
	id, err := strconv.Atoi(u.Key)
	if err != nil {
		return fmt.Errorf("schemes: scc: supernode key %q is not a set id: %w", u.Key, err)
	}
	old := st.CompTable.Set(id)
	if old != nil {
		if err := st.CompTable.RemoveSet(old); err != nil {
			return err
		}
	}
	for _, comp := range subComps {
		c := compset.NewComponentSet(st.CompTable.NextID(), comp)
		if err := st.CompTable.AddSet(c, false); err != nil {
			return err
		}
	}

	return scheme.UpdateGraph(s.cfg, st)
}
