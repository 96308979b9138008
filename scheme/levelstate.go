// File: levelstate.go
// Role: LevelState, the per-scheme-instance level state spec.md §3 defines:
// ⟨level_index, dec_graph, comp_table, supernode_table, update_quadruple,
// deleted_subnodes⟩.
package scheme

import (
	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/marco-caputo/multilevel-graphs/quad"
)

// LevelState is the mutable state one ContractionScheme instance owns for
// one level: the upper DecGraph it maintains, the CompTable covering the
// lower level, the set-id -> Supernode arena directory, the outgoing
// UpdateQuadruple accumulating this pass's journal, and the per-supernode
// log of lower-level nodes removed since the last _update_graph
// reconciliation.
type LevelState struct {
	LevelIndex int

	// LowerGraph is the DecGraph one level below — the input this scheme's
	// DecGraph/CompTable contract over. Owned by the level below; read-only
	// from this scheme's perspective except for the Supernode/component-set
	// back-pointers this scheme itself writes on lower-level nodes.
	LowerGraph *decgraph.DecGraph

	DecGraph  *decgraph.DecGraph
	CompTable *compset.CompTable

	// SupernodeTable maps a ComponentSet id to its materialised Supernode
	// (spec.md §9's "arena keyed by id").
	SupernodeTable map[int]*decgraph.Supernode

	// Out accumulates this pass's outgoing UpdateQuadruple.
	Out *quad.UpdateQuadruple

	// DeletedSubnodes maps a supernode key to the lower-level node keys
	// removed from it since the last reconciliation.
	DeletedSubnodes map[string]map[string]struct{}

	// NeedsRebuild is set when an update aborts mid-propagation (spec.md
	// §7); further incremental updates are refused until Rebuild runs.
	NeedsRebuild bool
}

// NewLevelState returns a freshly initialised, empty LevelState for the
// given level index.
func NewLevelState(levelIndex int) *LevelState {
	return &LevelState{
		LevelIndex:      levelIndex,
		SupernodeTable:  map[int]*decgraph.Supernode{},
		Out:             quad.New(),
		DeletedSubnodes: map[string]map[string]struct{}{},
	}
}

// MarkDeletedSubnode records that lower-level node key was dropped from the
// supernode keyed by supernodeKey, for the next _update_graph pass to act on.
func (st *LevelState) MarkDeletedSubnode(supernodeKey, key string) {
	if st.DeletedSubnodes[supernodeKey] == nil {
		st.DeletedSubnodes[supernodeKey] = map[string]struct{}{}
	}
	st.DeletedSubnodes[supernodeKey][key] = struct{}{}
}
