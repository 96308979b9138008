// File: interface.go
// Role: ContractionScheme, the abstract base every concrete scheme in
// package schemes implements (spec.md §4.E's "required abstract members").
package scheme

import (
	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
)

// ContractionScheme is the rule that produces a CompTable from a lower-level
// DecGraph (ContractionFunction) and reacts to single lower-level events
// incrementally (the four UpdateAdded*/UpdateRemoved* hooks). The generic
// engine in this package (MakeDecGraph, UpdateGraph, Update) drives any
// implementation through the incremental-maintenance algorithm spec.md §4.E
// specifies; implementations supply only the scheme-specific grouping rule.
type ContractionScheme interface {
	// Name returns a string identity for this scheme instance including its
	// parameter values (spec.md §4.E.1): used for equality and caching.
	Name() string

	// Clone produces a fresh, unbound scheme with identical configuration
	// and no level state (spec.md §4.E.2).
	Clone() ContractionScheme

	// ContractionFunction computes the initial covering of lowerD from
	// scratch: every node of lowerD appears in at least one returned set
	// (singletons inserted for otherwise-uncovered nodes), and the
	// returned table's modified frontier is already cleared (spec.md
	// §4.E.3).
	ContractionFunction(lowerD *decgraph.DecGraph) (*compset.CompTable, error)

	// UpdateAddedNode reacts to a single lower-level node addition.
	UpdateAddedNode(st *LevelState, n *decgraph.Supernode) error

	// UpdateRemovedNode reacts to a single lower-level node removal.
	UpdateRemovedNode(st *LevelState, n *decgraph.Supernode) error

	// UpdateAddedEdge reacts to a single lower-level edge addition.
	UpdateAddedEdge(st *LevelState, e *decgraph.Superedge) error

	// UpdateRemovedEdge reacts to a single lower-level edge removal.
	UpdateRemovedEdge(st *LevelState, e *decgraph.Superedge) error

	// Config returns the scheme's attribute functions and parameters.
	Config() Config
}
