// Package compset implements ComponentSet and CompTable (spec.md §4.C): the
// covering of one level's nodes into labelled, attributed sets, and the
// reverse index (node key -> containing sets) that drives scheme-to-scheme
// propagation through the modified frontier.
//
// ComponentSet membership is tracked by node key (string), not by pointer
// to decgraph.Supernode, so this package has no dependency on decgraph —
// per SPEC_FULL.md's resolution of the Supernode<->ComponentSet reference
// cycle, CompTable is the owning "arena" of sets (spec.md §9 design note) and
// decgraph.Supernode only holds the lightweight set of IDs it belongs to.
package compset

import (
	"errors"

	"github.com/marco-caputo/multilevel-graphs/xerrors"
)

// Sentinel errors. PreconditionViolation family (spec.md §7).
var (
	// ErrSetNotFound indicates RemoveSet was called with a set not present
	// in the table.
	ErrSetNotFound = errors.New("compset: set not found")

	// ErrDuplicateSetID indicates AddSet was called with an id already in use.
	ErrDuplicateSetID = errors.New("compset: duplicate set id")

	// ErrInvariantBroken indicates the coverage invariant (spec.md §3 (i))
	// was found broken: a key is absent from every ComponentSet after an
	// update that should have re-covered it. An InvariantViolation, not a
	// caller mistake.
	ErrInvariantBroken = errors.New("compset: coverage invariant broken")
)

func init() {
	xerrors.Register(xerrors.Precondition, ErrSetNotFound, ErrDuplicateSetID)
	xerrors.Register(xerrors.Invariant, ErrInvariantBroken)
}
