// Package quad implements UpdateQuadruple (spec.md §4.D): the append-only,
// FIFO-replayed buffer of (node-add, node-remove, edge-add, edge-remove)
// events a contraction scheme emits for the level above it, and consumes
// from the level below.
//
// Errors:
//
//	ErrDuplicateNodeAdd    - AddNode called twice for the same key this pass.
//	ErrUnknownNodeRemove   - RemoveNode called twice for the same key this pass.
//
// RemoveNode does not check that the key was added earlier in the pass;
// removals of nodes that predate the pass are accepted.
package quad

import (
	"errors"

	"github.com/marco-caputo/multilevel-graphs/xerrors"
)

var (
	ErrDuplicateNodeAdd  = errors.New("quad: duplicate node addition")
	ErrUnknownNodeRemove = errors.New("quad: duplicate node removal")
)

func init() {
	xerrors.Register(xerrors.Precondition, ErrDuplicateNodeAdd, ErrUnknownNodeRemove)
}
