// Package multilevel implements MultilevelGraph (spec.md §4.I): the façade
// that wraps a base core.Graph as a level-0 DecGraph and stacks an ordered
// sequence of ContractionScheme instances above it, one level each.
//
// Base edits (AddNode/RemoveNode/AddEdge/RemoveEdge) touch the level-0
// DecGraph immediately and are otherwise only buffered: the event is
// journalled into the pending UpdateQuadruple feeding level 1, and nothing
// above level 0 is recomputed until a query forces propagation. GetGraph,
// View, and GetComponentSets all force propagation up to (and including)
// the level they read, and no further — a level above the one queried is
// left stale until a later query reaches it (spec.md §9's lazy-propagation
// design note).
//
// Errors:
//
//	ErrLevelOutOfRange - a level index is <1 or exceeds Height().
package multilevel

import (
	"errors"

	"github.com/marco-caputo/multilevel-graphs/xerrors"
)

// ErrLevelOutOfRange indicates a level index fell outside [1, Height()] (or
// [0, Height()] for GetGraph/View, which also accept the base level).
var ErrLevelOutOfRange = errors.New("multilevel: level index out of range")

func init() {
	xerrors.Register(xerrors.Precondition, ErrLevelOutOfRange)
}
