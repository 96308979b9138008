// File: build.go
// Role: Build, spec.md §4.E's "initial build (_make from a lower DecGraph
// snapshot)": call contraction_function then _make_dec_graph.
package scheme

import (
	"fmt"

	"github.com/marco-caputo/multilevel-graphs/decgraph"
)

// Build computes s's initial level state from lowerD: it calls
// s.ContractionFunction(lowerD) for the covering, then MakeDecGraph to
// materialise the upper DecGraph, wiring the result into a fresh
// LevelState at levelIndex.
func Build(s ContractionScheme, lowerD *decgraph.DecGraph, levelIndex int) (*LevelState, error) {
	compTable, err := s.ContractionFunction(lowerD)
	if err != nil {
		return nil, fmt.Errorf("scheme: build: contraction_function: %w", err)
	}

	st := NewLevelState(levelIndex)
	st.LowerGraph = lowerD
	st.CompTable = compTable

	upper, supernodeTable := MakeDecGraph(s.Config(), compTable, lowerD, levelIndex)
	st.DecGraph = upper
	st.SupernodeTable = supernodeTable
	compTable.ClearModified()

	return st, nil
}

// Rebuild discards st's incremental state and recomputes it from scratch
// against lowerD — the façade's recovery path after a mid-propagation
// invariant violation (spec.md §7).
func Rebuild(s ContractionScheme, lowerD *decgraph.DecGraph, levelIndex int) (*LevelState, error) {
	return Build(s, lowerD, levelIndex)
}
