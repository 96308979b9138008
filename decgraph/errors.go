// Package decgraph implements the decontractible-graph data model
// (spec.md §3-§4.A): DecGraph, Supernode, and Superedge, the recursive
// structure whose nodes and edges carry an interior graph one level down.
package decgraph

import (
	"errors"

	"github.com/marco-caputo/multilevel-graphs/xerrors"
)

// Sentinel errors. Precondition-violation family (spec.md §7): these
// surface caller mistakes and never corrupt engine state.
var (
	// ErrDuplicateKey indicates AddNode was called with a key already
	// present in V, or AddEdge with a (tail,head) pair already present in E.
	ErrDuplicateKey = errors.New("decgraph: duplicate key")

	// ErrNodeNotFound indicates a lookup or AddEdge referenced a key not in V.
	ErrNodeNotFound = errors.New("decgraph: node not found")

	// ErrEdgeNotFound indicates RemoveEdge referenced a (tail,head) pair not in E.
	ErrEdgeNotFound = errors.New("decgraph: edge not found")

	// ErrNodeHasIncidentEdges indicates RemoveNode was called on a node that
	// still has incident edges; the caller must drain E first (spec.md §4.A).
	ErrNodeHasIncidentEdges = errors.New("decgraph: node has incident edges")
)

func init() {
	xerrors.Register(xerrors.Precondition,
		ErrDuplicateKey, ErrNodeNotFound, ErrEdgeNotFound, ErrNodeHasIncidentEdges)
}
