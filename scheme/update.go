// File: update.go
// Role: Update, the public incremental entry point spec.md §4.E names
// "update(inQuadruple)".
package scheme

import (
	"fmt"

	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/marco-caputo/multilevel-graphs/quad"
)

// Update replays in, in the canonical order E⁻, V⁻, V⁺, E⁺, dispatching
// each event to the matching hook on s, then always reconciles the upper
// DecGraph via UpdateGraph, even when a scheme already called UpdateGraph
// mid-loop (that earlier call has then cleared what it reconciled). It
// returns the outgoing UpdateQuadruple accumulated in st.Out.
//
// On any error the level is marked NeedsRebuild and the error is returned;
// partial results are never published (spec.md §7).
func Update(s ContractionScheme, st *LevelState, in *quad.UpdateQuadruple) (*quad.UpdateQuadruple, error) {
	if st.NeedsRebuild {
		return nil, ErrNeedsRebuild
	}

	st.Out = quad.New()
	cfg := s.Config()

	err := quad.Replay(in, quad.Handlers{
		OnRemovedEdge: func(e *decgraph.Superedge) error { return s.UpdateRemovedEdge(st, e) },
		OnRemovedNode: func(n *decgraph.Supernode) error { return s.UpdateRemovedNode(st, n) },
		OnAddedNode:   func(n *decgraph.Supernode) error { return s.UpdateAddedNode(st, n) },
		OnAddedEdge:   func(e *decgraph.Superedge) error { return s.UpdateAddedEdge(st, e) },
	})
	if err != nil {
		st.NeedsRebuild = true
		return nil, fmt.Errorf("scheme: update: %w", err)
	}

	if err := UpdateGraph(cfg, st); err != nil {
		st.NeedsRebuild = true
		return nil, fmt.Errorf("scheme: update: %w", err)
	}

	return st.Out, nil
}
