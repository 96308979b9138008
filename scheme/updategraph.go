// File: updategraph.go
// Role: UpdateGraph, the provided concrete machinery spec.md §4.E names
// "_update_graph()": reconciles the upper DecGraph with the current
// CompTable.Modified() frontier and DeletedSubnodes journal.
package scheme

import (
	"fmt"
	"strconv"

	"github.com/marco-caputo/multilevel-graphs/decgraph"
)

// setIDOf recovers the ComponentSet id a supernode key encodes (keys are
// fmt.Sprint(c.ID), per MakeDecGraph).
func setIDOf(u *decgraph.Supernode) (int, error) {
	return strconv.Atoi(u.Key)
}

// destroyIfOrphaned removes u from st.DecGraph (and st.SupernodeTable) when
// its interior is empty and no ComponentSet still references its id,
// journalling the removal as a V⁻ event.
func destroyIfOrphaned(st *LevelState, u *decgraph.Supernode) error {
	if len(u.Dec.V) > 0 {
		return nil
	}
	id, err := setIDOf(u)
	if err == nil {
		if st.CompTable.Set(id) != nil {
			return nil
		}
		delete(st.SupernodeTable, id)
	}
	if err := st.DecGraph.RemoveNode(u.Key); err != nil {
		return err
	}

	return st.Out.RemoveNode(u)
}

// detachFromSupernode removes lower-level node n from its current
// supernode's interior (dropping any now-dangling intra-supernode edges
// first) and clears n's back-pointer.
func detachFromSupernode(st *LevelState, n *decgraph.Supernode) error {
	u := n.Supernode
	if u == nil {
		return nil
	}
	for k := range u.Dec.E {
		if k.Tail == n.Key || k.Head == n.Key {
			_ = u.Dec.RemoveEdge(k.Tail, k.Head)
		}
	}
	if err := u.Dec.RemoveNode(n.Key); err != nil && err != decgraph.ErrNodeNotFound {
		return err
	}
	n.Supernode = nil

	return destroyIfOrphaned(st, u)
}

// UpdateGraph reconciles st.DecGraph with st.CompTable.Modified() and
// st.DeletedSubnodes, in the five steps spec.md §4.E prescribes, then clears
// both the frontier and the journal.
func UpdateGraph(cfg Config, st *LevelState) error {
	// Step 1: nodes dropped from a still-live supernode.
	for supernodeKey, dropped := range st.DeletedSubnodes {
		u := findSupernodeByKey(st, supernodeKey)
		if u == nil {
			continue
		}
		for key := range dropped {
			if n := u.Dec.Node(key); n != nil {
				if err := detachFromSupernode(st, n); err != nil {
					return fmt.Errorf("scheme: update_graph: step1: %w", err)
				}
			}
		}
	}

	// Step 2: modified nodes now uncovered entirely.
	for _, key := range st.CompTable.Modified() {
		n := st.LowerGraph.Node(key)
		if n == nil {
			continue
		}
		if !st.CompTable.Contains(key) && n.Supernode != nil {
			if err := detachFromSupernode(st, n); err != nil {
				return fmt.Errorf("scheme: update_graph: step2: %w", err)
			}
		}
	}

	// Step 3 + 4: modified nodes newly covered, or whose home changed.
	for _, key := range st.CompTable.Modified() {
		n := st.LowerGraph.Node(key)
		if n == nil {
			continue
		}
		sets := st.CompTable.SetsOf(key)
		if len(sets) == 0 {
			continue // handled by step 2
		}
		home := sets[0]
		for _, c := range sets {
			n.AddComponentSetID(c.ID)
			if c.ID < home.ID {
				home = c
			}
		}

		_, existed := st.SupernodeTable[home.ID]
		newU := findOrMaterializeSupernode(cfg, st, home.ID)
		if !existed {
			if err := st.Out.AddNode(newU); err != nil {
				return fmt.Errorf("scheme: update_graph: step3 journal: %w", err)
			}
		}
		oldU := n.Supernode
		if oldU == newU {
			continue
		}

		if oldU != nil {
			// Rehome before detaching: detaching the last member destroys
			// oldU, which requires its superedges to be gone already.
			if err := rehomeIncidentEdges(cfg, st, n, oldU, newU); err != nil {
				return fmt.Errorf("scheme: update_graph: step4 rehome: %w", err)
			}
			if err := detachFromSupernode(st, n); err != nil {
				return fmt.Errorf("scheme: update_graph: step4 detach: %w", err)
			}
		}

		if err := newU.Dec.AddNode(n); err != nil && err != decgraph.ErrDuplicateKey {
			return fmt.Errorf("scheme: update_graph: step3/4 place: %w", err)
		}
		n.Supernode = newU
	}

	st.CompTable.ClearModified()
	st.DeletedSubnodes = map[string]map[string]struct{}{}

	return nil
}

func findSupernodeByKey(st *LevelState, key string) *decgraph.Supernode {
	if id, err := strconv.Atoi(key); err == nil {
		if u, ok := st.SupernodeTable[id]; ok {
			return u
		}
	}

	return st.DecGraph.Node(key)
}

// findOrMaterializeSupernode returns the supernode for ComponentSet id,
// allocating it (with an empty interior, restricted to the logic
// MakeDecGraph uses for a single set) if this is its first appearance.
func findOrMaterializeSupernode(cfg Config, st *LevelState, id int) *decgraph.Supernode {
	if u, ok := st.SupernodeTable[id]; ok {
		return u
	}
	c := st.CompTable.Set(id)
	u := decgraph.NewSupernode(strconv.Itoa(id), st.LevelIndex)
	u.Dec = decgraph.NewDecGraph(st.LevelIndex - 1)
	u.Attr = cfg.SupernodeAttr(u.Dec)
	st.SupernodeTable[id] = u
	_ = st.DecGraph.AddNode(u)
	_ = c // members are placed into u.Dec by the per-node loop in UpdateGraph

	return u
}

// rehomeIncidentEdges moves every lower-level edge incident to n from its
// aggregation under oldU to its aggregation under newU.
func rehomeIncidentEdges(cfg Config, st *LevelState, n *decgraph.Supernode, oldU, newU *decgraph.Supernode) error {
	for _, x := range st.LowerGraph.Edges() {
		if x.Tail.Key != n.Key && x.Head.Key != n.Key {
			continue
		}
		other := x.Tail
		if x.Tail.Key == n.Key {
			other = x.Head
		}
		otherU := other.Supernode
		if otherU == nil {
			continue
		}

		var fromKey, toKey string
		if x.Tail.Key == n.Key {
			fromKey, toKey = newU.Key, otherU.Key
		} else {
			fromKey, toKey = otherU.Key, newU.Key
		}

		if x.Tail.Key == x.Head.Key || otherU == newU {
			// becomes intra-supernode under newU; it no longer belongs to
			// the cross superedge between oldU and newU.
			if otherU == newU {
				oldFromKey, oldToKey := newU.Key, oldU.Key
				if x.Tail.Key == n.Key {
					oldFromKey, oldToKey = oldU.Key, newU.Key
				}
				if err := RemoveEdgeInSuperedge(cfg, st, oldFromKey, oldToKey, x); err != nil {
					return err
				}
			}
			_ = newU.Dec.PutEdge(x)
			continue
		}

		if otherU != oldU {
			// was already a cross edge between oldU and otherU; drop that
			// aggregation before adding the new one.
			var oldFromKey, oldToKey string
			if x.Tail.Key == n.Key {
				oldFromKey, oldToKey = oldU.Key, otherU.Key
			} else {
				oldFromKey, oldToKey = otherU.Key, oldU.Key
			}
			if err := RemoveEdgeInSuperedge(cfg, st, oldFromKey, oldToKey, x); err != nil {
				return err
			}
		}
		// otherU == oldU: was intra-supernode under oldU, now becomes a
		// fresh cross edge between newU and oldU.
		if err := AddEdgeInSuperedge(cfg, st, fromKey, toKey, x); err != nil {
			return err
		}
	}

	return nil
}
