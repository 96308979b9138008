// File: decontraction.go
// Role: NaturalTransformation (wrap a plain graph as a level-0 DecGraph) and
// CompleteDecontraction (recursively flatten a DecGraph back to its base
// level), spec.md §4.A's two conversions between the plain and
// decontractible views.
package decgraph

import "github.com/marco-caputo/multilevel-graphs/core"

// NaturalTransformation wraps a plain graph g as a level-0 DecGraph: one
// leaf Supernode per vertex (Dec == nil, the base-level marker) and one
// leaf Superedge per edge (Len() == 0). This is the starting point every
// scheme's first update() call folds edits into (spec.md §4.A).
func NaturalTransformation(g *core.Graph) *DecGraph {
	d := NewDecGraph(0)
	for _, id := range g.Vertices() {
		_ = d.AddNode(NewSupernode(id, 0))
	}
	for _, e := range g.Edges() {
		_, _ = d.AddEdge(e.From, e.To)
	}

	return d
}

// CompleteDecontraction recursively flattens d all the way down to its base
// (leaf) level, returning the base-level DecGraph that d ultimately
// contracts.
//
// Nodes and edges are flattened by two independent walks:
//
//   - Each node n in d.Nodes() is either a leaf (n.Dec == nil, already
//     base-level — kept as-is) or contracted (n.Dec != nil — recurse into
//     n.Dec.CompleteDecontraction() and take its nodes).
//   - Each edge e in d.Edges() is either a leaf (e.Len() == 0, already a
//     base edge — kept as-is) or aggregated (e.Len() > 0 — recurse into
//     each lower Superedge in e.Dec() and take the union of their own
//     complete decontractions).
//
// The edge walk alone would miss edges between two base-level vertices that
// both collapsed into the *same* supernode at some level: such an edge
// lives only inside that supernode's own interior graph (n.Dec.E), and is
// never reachable by following any ancestor Superedge's Dec() chain, since
// no Superedge connects a supernode to itself. The node walk's recursion
// into n.Dec picks these up instead.
func (d *DecGraph) CompleteDecontraction() *DecGraph {
	if d.Level == 0 {
		out := NewDecGraph(0)
		for key, n := range d.V {
			out.V[key] = n
		}
		for key, e := range d.E {
			out.E[key] = e
		}

		return out
	}

	out := NewDecGraph(0)

	for _, n := range d.Nodes() {
		if n.Dec == nil {
			_ = out.AddNode(n)
			continue
		}
		inner := n.Dec.CompleteDecontraction()
		for key, innerNode := range inner.V {
			if _, exists := out.V[key]; !exists {
				_ = out.AddNode(innerNode)
			}
		}
		for key, innerEdge := range inner.E {
			if _, exists := out.E[key]; !exists {
				out.E[key] = innerEdge
			}
		}
	}

	var flattenEdge func(e *Superedge)
	flattenEdge = func(e *Superedge) {
		if e.Len() == 0 {
			k := edgeKey{e.Tail.Key, e.Head.Key}
			if out.V[e.Tail.Key] != nil && out.V[e.Head.Key] != nil {
				out.E[k] = e
			}
			return
		}
		for _, sub := range e.Dec() {
			flattenEdge(sub)
		}
	}
	for _, e := range d.Edges() {
		flattenEdge(e)
	}

	return out
}
