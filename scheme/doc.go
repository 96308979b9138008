// Package scheme implements the abstract contraction engine (spec.md
// §4.E-§4.G): Config (the three optional attribute functions plus the
// per-scheme parameter bag), the ContractionScheme interface every concrete
// scheme in package schemes implements, the generic machinery
// (MakeDecGraph, UpdateGraph, AddEdgeInSuperedge/RemoveEdgeInSuperedge,
// Update) that is identical across schemes, and the two embeddable
// refinements EdgeBased and DecontractionEdgeBased that give concrete
// schemes default node-event handlers for free.
//
// Level state (spec.md §3) — LevelState — bundles exactly what one scheme
// instance owns at one level: its DecGraph, its CompTable, the
// supernode-by-set-id table, the outgoing UpdateQuadruple, and the
// deleted-subnodes journal.
//
// Errors:
//
//	ErrSchemeAlreadyBound - AppendContractionScheme given an already-bound instance.
//	ErrNeedsRebuild        - an update was attempted on a level marked needs-rebuild.
package scheme

import (
	"errors"

	"github.com/marco-caputo/multilevel-graphs/xerrors"
)

var (
	// ErrSchemeAlreadyBound indicates a ContractionScheme instance already
	// owns level state elsewhere and cannot be appended a second time
	// (spec.md §7's InvalidSchemeComposition family) — callers must Clone()
	// a fresh instance instead.
	ErrSchemeAlreadyBound = errors.New("scheme: instance is already bound to a level")

	// ErrNeedsRebuild indicates the level's last update aborted mid-
	// propagation and left the level inconsistent; callers must call
	// Rebuild before issuing further incremental updates (spec.md §7).
	ErrNeedsRebuild = errors.New("scheme: level needs rebuild after prior failure")
)

func init() {
	xerrors.Register(xerrors.SchemeComposition, ErrSchemeAlreadyBound)
	xerrors.Register(xerrors.Invariant, ErrNeedsRebuild)
}
