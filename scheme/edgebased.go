// File: edgebased.go
// Role: EdgeBased, the embeddable mixin spec.md §4.F describes:
// default node handlers for schemes where connectivity through edges is the
// sole grouping criterion. Concrete schemes embed EdgeBased and supply only
// UpdateAddedEdge/UpdateRemovedEdge.
package scheme

import (
	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
)

// EdgeBased provides UpdateAddedNode and UpdateRemovedNode for any scheme
// whose ComponentSets are determined purely by edge connectivity: a newly
// added node starts life as its own singleton set, and a removed node is
// required to already be isolated to exactly one singleton (guaranteed
// because edge removals are always replayed before node removals within
// one pass, per the canonical E⁻,V⁻,V⁺,E⁺ order).
type EdgeBased struct{}

// UpdateAddedNode inserts a singleton ComponentSet containing n; the
// supernode for it is allocated later, when UpdateGraph reconciles the
// modified frontier (spec.md §4.F).
func (EdgeBased) UpdateAddedNode(cfg Config, st *LevelState, n *decgraph.Supernode) error {
	id := st.CompTable.NextID()
	c := compset.NewComponentSet(id, []string{n.Key})
	c.Attr = cfg.CSetAttr([]*decgraph.Supernode{n})
	if err := st.CompTable.AddSet(c, false); err != nil {
		return err
	}

	return nil
}

// UpdateRemovedNode requires n to currently sit in exactly one singleton
// ComponentSet (spec.md §4.F's precondition), removes that set, journals n
// into st.DeletedSubnodes under its current supernode. n's supernode
// back-pointer is cleared later, when UpdateGraph processes that journal.
func (EdgeBased) UpdateRemovedNode(st *LevelState, n *decgraph.Supernode) error {
	sets := st.CompTable.SetsOf(n.Key)
	if len(sets) != 1 || sets[0].Len() != 1 {
		return ErrNeedsRebuild
	}
	if err := st.CompTable.RemoveSet(sets[0]); err != nil {
		return err
	}
	n.RemoveComponentSetID(sets[0].ID)
	if n.Supernode != nil {
		st.MarkDeletedSubnode(n.Supernode.Key, n.Key)
	}

	return nil
}
