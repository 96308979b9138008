// File: decgraph.go
// Role: DecGraph CRUD, the plain-view conversion Graph(), structural
// Equal(), and InducedSubgraph() (spec.md §3-§4.A).
package decgraph

import (
	"fmt"
	"sort"

	"github.com/marco-caputo/multilevel-graphs/core"
)

type edgeKey struct {
	Tail, Head string
}

// DecGraph is a decontractible graph at a given level: a set of Supernodes
// (V) and Superedges (E) between them, each node and edge carrying its own
// interior structure one level down (spec.md §3).
type DecGraph struct {
	Level int
	V     map[string]*Supernode
	E     map[edgeKey]*Superedge
}

// NewDecGraph returns an empty DecGraph at the given level.
func NewDecGraph(level int) *DecGraph {
	return &DecGraph{
		Level: level,
		V:     make(map[string]*Supernode),
		E:     make(map[edgeKey]*Superedge),
	}
}

// AddNode inserts n into d.V. Returns ErrDuplicateKey if n.Key is already present.
func (d *DecGraph) AddNode(n *Supernode) error {
	if _, exists := d.V[n.Key]; exists {
		return ErrDuplicateKey
	}
	d.V[n.Key] = n

	return nil
}

// RemoveNode deletes the node with the given key. Returns ErrNodeNotFound if
// absent, or ErrNodeHasIncidentEdges if any Superedge still touches it — the
// caller must RemoveEdge every incident edge first (spec.md §4.A).
func (d *DecGraph) RemoveNode(key string) error {
	if _, exists := d.V[key]; !exists {
		return ErrNodeNotFound
	}
	for k := range d.E {
		if k.Tail == key || k.Head == key {
			return ErrNodeHasIncidentEdges
		}
	}
	delete(d.V, key)

	return nil
}

// Node returns the node with the given key, or nil if absent.
func (d *DecGraph) Node(key string) *Supernode {
	return d.V[key]
}

// Nodes returns every node, sorted by key.
func (d *DecGraph) Nodes() []*Supernode {
	out := make([]*Supernode, 0, len(d.V))
	for _, n := range d.V {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// AddEdge creates a Superedge from tailKey to headKey and inserts it into
// d.E. Returns ErrNodeNotFound if either endpoint is absent, or
// ErrDuplicateKey if the (tail,head) pair is already present.
func (d *DecGraph) AddEdge(tailKey, headKey string) (*Superedge, error) {
	tail, ok := d.V[tailKey]
	if !ok {
		return nil, ErrNodeNotFound
	}
	head, ok := d.V[headKey]
	if !ok {
		return nil, ErrNodeNotFound
	}
	k := edgeKey{tailKey, headKey}
	if _, exists := d.E[k]; exists {
		return nil, ErrDuplicateKey
	}
	e := NewSuperedge(tail, head, d.Level)
	d.E[k] = e

	return e, nil
}

// PutEdge inserts an already-constructed Superedge e, keyed by its own
// Tail/Head keys, rather than allocating a fresh one — used when a lower
// Superedge becomes an intra-supernode edge and must be placed into a
// supernode's Dec by reference rather than wrapped. Returns
// ErrDuplicateKey if the (tail,head) pair is already present.
func (d *DecGraph) PutEdge(e *Superedge) error {
	k := edgeKey{e.Tail.Key, e.Head.Key}
	if _, exists := d.E[k]; exists {
		return ErrDuplicateKey
	}
	d.E[k] = e

	return nil
}

// RemoveEdge deletes the Superedge from tailKey to headKey. Returns
// ErrEdgeNotFound if absent.
func (d *DecGraph) RemoveEdge(tailKey, headKey string) error {
	k := edgeKey{tailKey, headKey}
	if _, exists := d.E[k]; !exists {
		return ErrEdgeNotFound
	}
	delete(d.E, k)

	return nil
}

// Edge returns the Superedge from tailKey to headKey, or nil if absent.
func (d *DecGraph) Edge(tailKey, headKey string) *Superedge {
	return d.E[edgeKey{tailKey, headKey}]
}

// Edges returns every Superedge, sorted by (tail,head) key.
func (d *DecGraph) Edges() []*Superedge {
	out := make([]*Superedge, 0, len(d.E))
	for _, e := range d.E {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return decKey(out[i]) < decKey(out[j]) })

	return out
}

// Graph projects d onto a plain core.Graph: one vertex per node key, one
// edge per (tail,head) pair, discarding interior structure. Each node's and
// edge's Attr entries are copied into the vertex's and edge's Metadata. This
// is the view package algo's Tarjan/Johnson/Bron-Kerbosch implementations
// and package bfs/dfs operate over when a scheme computes a level's
// contraction.
func (d *DecGraph) Graph() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, n := range d.Nodes() {
		_ = g.AddVertex(n.Key)
		md := g.VertexMetadata(n.Key)
		for k, v := range n.Attr {
			md[k] = v
		}
	}
	for _, e := range d.Edges() {
		_, _ = g.AddEdge(e.Tail.Key, e.Head.Key)
	}
	for _, ge := range g.Edges() {
		for k, v := range d.Edge(ge.From, ge.To).Attr {
			ge.Metadata[k] = v
		}
	}

	return g
}

// Equal reports whether d and other have identical node keys and identical
// (tail,head) edge pairs. It is a structural comparison — attribute bags and
// interior Dec graphs are ignored — used by tests to check a scheme's
// incremental update against a from-scratch rebuild (spec.md §7's
// idempotence/round-trip property).
func (d *DecGraph) Equal(other *DecGraph) bool {
	if other == nil || len(d.V) != len(other.V) || len(d.E) != len(other.E) {
		return false
	}
	for k := range d.V {
		if _, ok := other.V[k]; !ok {
			return false
		}
	}
	for k := range d.E {
		if _, ok := other.E[k]; !ok {
			return false
		}
	}

	return true
}

// Clone returns a structural deep copy of d: fresh Supernode/Superedge
// wrappers (so mutating the result's V/E maps, node Attr, or edge Attr
// never reaches d), sharing the same Dec interiors and dec aggregations
// (owned read-only state, not copied). Used by MultilevelGraph.GetGraph to
// satisfy spec.md §4.I's "get_graph(i) -> DecGraph (deep copy)" contract.
func (d *DecGraph) Clone() *DecGraph {
	out := NewDecGraph(d.Level)
	nodes := make(map[string]*Supernode, len(d.V))
	for key, n := range d.V {
		nc := &Supernode{
			Key:             n.Key,
			Level:           n.Level,
			Dec:             n.Dec,
			Supernode:       n.Supernode,
			Attr:            cloneAttr(n.Attr),
			componentSetIDs: cloneIDs(n.componentSetIDs),
		}
		nodes[key] = nc
		out.V[key] = nc
	}
	for k, e := range d.E {
		out.E[k] = &Superedge{
			Tail:  nodes[e.Tail.Key],
			Head:  nodes[e.Head.Key],
			Level: e.Level,
			Attr:  cloneAttr(e.Attr),
			dec:   e.dec,
		}
	}

	return out
}

func cloneAttr(attr map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(attr))
	for k, v := range attr {
		out[k] = v
	}

	return out
}

func cloneIDs(ids map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(ids))
	for id := range ids {
		out[id] = struct{}{}
	}

	return out
}

// String implements fmt.Stringer with a sorted, stable node/edge listing —
// sorted so two structurally equal DecGraphs (per Equal) always render
// identically, which is what makes %v useful in a test failure message.
func (d *DecGraph) String() string {
	keys := make([]string, 0, len(d.V))
	for k := range d.V {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := fmt.Sprintf("DecGraph[level=%d, |V|=%d, |E|=%d]\n", d.Level, len(d.V), len(d.E))
	for _, k := range keys {
		s += fmt.Sprintf("  %s\n", k)
	}

	edgeKeys := make([]edgeKey, 0, len(d.E))
	for k := range d.E {
		edgeKeys = append(edgeKeys, k)
	}
	sort.Slice(edgeKeys, func(i, j int) bool {
		if edgeKeys[i].Tail != edgeKeys[j].Tail {
			return edgeKeys[i].Tail < edgeKeys[j].Tail
		}
		return edgeKeys[i].Head < edgeKeys[j].Head
	})
	for _, k := range edgeKeys {
		s += fmt.Sprintf("  %s -> %s\n", k.Tail, k.Head)
	}

	return s
}

// GoString implements fmt.GoStringer so %#v renders a DecGraph as its
// level plus sorted key lists instead of dumping the raw pointer maps.
func (d *DecGraph) GoString() string {
	keys := make([]string, 0, len(d.V))
	for k := range d.V {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	edgeKeys := make([]edgeKey, 0, len(d.E))
	for k := range d.E {
		edgeKeys = append(edgeKeys, k)
	}
	sort.Slice(edgeKeys, func(i, j int) bool {
		if edgeKeys[i].Tail != edgeKeys[j].Tail {
			return edgeKeys[i].Tail < edgeKeys[j].Tail
		}
		return edgeKeys[i].Head < edgeKeys[j].Head
	})
	edgePairs := make([][2]string, len(edgeKeys))
	for i, k := range edgeKeys {
		edgePairs[i] = [2]string{k.Tail, k.Head}
	}

	return fmt.Sprintf("decgraph.DecGraph{Level: %d, V: %#v, E: %#v}", d.Level, keys, edgePairs)
}

// InducedSubgraph returns a new DecGraph at the same level containing only
// the nodes in keep (by reference — Supernodes are not copied) and the
// edges whose tail and head are both in keep. Used by scheme.MakeDecGraph
// to build each supernode's interior from its set's members.
func (d *DecGraph) InducedSubgraph(keep map[string]bool) *DecGraph {
	out := NewDecGraph(d.Level)
	for key, n := range d.V {
		if keep[key] {
			out.V[key] = n
		}
	}
	for k, e := range d.E {
		if keep[k.Tail] && keep[k.Head] {
			out.E[k] = e
		}
	}

	return out
}
