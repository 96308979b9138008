// File: decontractionedgebased.go
// Role: DecontractionEdgeBased, the embeddable mixin spec.md §4.G
// describes: extends EdgeBased with a lazily-materialised decontracted
// graph — "the lower-level graph as seen at this level" — for schemes
// (notably Circuits) whose algorithms must run over the lower-level's own
// node identities rather than this level's contracted supernodes.
package scheme

import "github.com/marco-caputo/multilevel-graphs/decgraph"

// DecontractionEdgeBased embeds EdgeBased and additionally tracks
// DecontractedGraph, a running copy of the lower level mirrored one edit at
// a time via AddEdgeToDecontraction/RemoveEdgeFromDecontraction. Concrete
// schemes call those as the first step of their own
// UpdateAddedEdge/UpdateRemovedEdge handlers, before running any algorithm
// that needs the flattened view.
type DecontractionEdgeBased struct {
	EdgeBased

	// DecontractedGraph is nil until first materialised by Decontracted.
	DecontractedGraph *decgraph.DecGraph
}

// Decontracted returns the lazily-materialised mirror of st's lower-level
// graph, seeding it on first call with st.LowerGraph's current nodes (by
// reference, so identities match the lower level the scheme reacts to).
func (d *DecontractionEdgeBased) Decontracted(st *LevelState) *decgraph.DecGraph {
	if d.DecontractedGraph == nil {
		g := decgraph.NewDecGraph(st.LowerGraph.Level)
		for _, n := range st.LowerGraph.Nodes() {
			_ = g.AddNode(n)
		}
		for _, e := range st.LowerGraph.Edges() {
			_, _ = g.AddEdge(e.Tail.Key, e.Head.Key)
		}
		d.DecontractedGraph = g
	}

	return d.DecontractedGraph
}

// AddEdgeToDecontraction adds e to the materialised decontracted graph
// (spec.md §4.G's "_add_edge_to_decontraction").
func (d *DecontractionEdgeBased) AddEdgeToDecontraction(st *LevelState, e *decgraph.Superedge) error {
	g := d.Decontracted(st)
	if g.Node(e.Tail.Key) == nil {
		_ = g.AddNode(e.Tail)
	}
	if g.Node(e.Head.Key) == nil {
		_ = g.AddNode(e.Head)
	}
	_, err := g.AddEdge(e.Tail.Key, e.Head.Key)
	if err == decgraph.ErrDuplicateKey {
		return nil
	}

	return err
}

// RemoveEdgeFromDecontraction removes e from the materialised decontracted
// graph (spec.md §4.G's "_remove_edge_from_decontraction").
func (d *DecontractionEdgeBased) RemoveEdgeFromDecontraction(st *LevelState, e *decgraph.Superedge) error {
	g := d.Decontracted(st)
	if err := g.RemoveEdge(e.Tail.Key, e.Head.Key); err != nil && err != decgraph.ErrEdgeNotFound {
		return err
	}

	return nil
}
