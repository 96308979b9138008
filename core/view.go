// File: view.go
// Role: non-mutating derived views of a Graph.
//
// InducedSubgraph is the one view this module actually exercises: the
// Cliques scheme's incremental handler (schemes.CliquesScheme) recomputes
// maximal cliques over the 2-neighbourhood of a changed edge's endpoints by
// taking the induced subgraph of that neighbourhood rather than the whole
// level, per SPEC_FULL.md's resolution of the cliques Open Question.
package core

// InducedSubgraph returns a new Graph containing only the vertices in keep
// and the edges whose endpoints are both in keep. g is not mutated.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Metadata: e.Metadata}
		out.edges[eid] = ne
		out.ensureAdjCell(ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !out.directed && ne.From != ne.To {
			out.ensureAdjCell(ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	return out
}
