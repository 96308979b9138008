// Package multilevelgraphs maintains a hierarchy of graph contractions over
// a directed base graph.
//
// Given a base directed graph G0 and an ordered sequence of contraction
// schemes S1..Sh, the library produces levels G1..Gh such that each Gi is
// obtained from Gi-1 by covering its nodes into component sets (per Si) and
// collapsing each component set into a supernode; edges of Gi-1 crossing
// components become superedges (aggregated per endpoint pair) in Gi.
//
// The value proposition is incremental maintenance: node/edge insertions
// and deletions on the base graph are buffered and pushed upward by each
// scheme in turn, recomputing only the local structure each mutation
// actually touches.
//
// Subpackages:
//
//	core/       — thread-safe plain directed graph primitive (adjacency, vertices, edges)
//	bfs/        — breadth-first traversal, reused for upper-level reachability checks
//	dfs/        — depth-first traversal and cycle-signature canonicalization helpers
//	decgraph/   — the recursive DecGraph/Supernode/Superedge data model
//	compset/    — ComponentSet and CompTable, the covering and its reverse index
//	quad/       — UpdateQuadruple, the buffered event tuple between levels
//	algo/       — Tarjan SCC, Johnson simple cycles, Bron-Kerbosch maximal cliques
//	scheme/     — the abstract ContractionScheme engine and its two refinements
//	schemes/    — concrete schemes: SCCs, Circuits, Cliques, Stars
//	builder/    — synthetic base-graph fixtures for tests and examples
//	multilevel/ — the MultilevelGraph façade
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// specification and the grounding of every component.
package multilevelgraphs
