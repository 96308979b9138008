// File: types.go
// Role: Supernode and Superedge, the node/edge entities of a DecGraph.
package decgraph

import "sort"

// Supernode is the node type of a DecGraph (spec.md §3).
//
// Key is unique among siblings within one DecGraph (a node of key "1" may
// itself contain a node of key "1" one level down). Dec is the interior
// graph; nil for a leaf (base-level) node created by NaturalTransformation.
// Supernode is the non-owning back-pointer to the containing node at the
// next level up (nil for a top-level or deleted node).
//
// componentSetIDs is the non-owning view spec.md §3 calls component_sets:
// it holds only the IDs of the compset.ComponentSets this node currently
// belongs to; the owning compset.CompTable resolves IDs to full sets. This
// indirection (an arena directory plus a weak id reference, per spec.md §9's
// own design note) keeps this package free of an import cycle with compset.
type Supernode struct {
	Key   string
	Level int
	Dec   *DecGraph

	Supernode *Supernode

	Attr map[string]interface{}

	componentSetIDs map[int]struct{}
}

// NewSupernode builds a Supernode at the given level with an empty
// attribute bag and no interior graph (a leaf).
func NewSupernode(key string, level int) *Supernode {
	return &Supernode{
		Key:             key,
		Level:           level,
		Attr:            map[string]interface{}{},
		componentSetIDs: map[int]struct{}{},
	}
}

// ComponentSetIDs returns the IDs of every ComponentSet this node currently
// belongs to, sorted.
func (n *Supernode) ComponentSetIDs() []int {
	out := make([]int, 0, len(n.componentSetIDs))
	for id := range n.componentSetIDs {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// InComponentSet reports whether n belongs to the ComponentSet with the given id.
func (n *Supernode) InComponentSet(id int) bool {
	_, ok := n.componentSetIDs[id]

	return ok
}

// AddComponentSetID records that n now belongs to the ComponentSet with the
// given id. Called by package scheme when a compset.CompTable.AddSet makes
// n a member of a new set.
func (n *Supernode) AddComponentSetID(id int) {
	n.componentSetIDs[id] = struct{}{}
}

// RemoveComponentSetID records that n no longer belongs to the ComponentSet
// with the given id.
func (n *Supernode) RemoveComponentSetID(id int) {
	delete(n.componentSetIDs, id)
}

// ComponentSetCount reports how many sets currently contain n. (EdgeBased
// checks its node-removal precondition through CompTable.SetsOf instead.)
func (n *Supernode) ComponentSetCount() int {
	return len(n.componentSetIDs)
}

// Superedge is the edge type of a DecGraph (spec.md §3): a directed
// connection from Tail to Head, aggregating the lower-level Superedges
// crossing the same pair of supernodes in Dec.
type Superedge struct {
	Tail *Supernode
	Head *Supernode
	Level int

	Attr map[string]interface{}

	dec map[string]*Superedge
}

// NewSuperedge builds a Superedge between tail and head at the given level,
// with an empty aggregation set and attribute bag.
func NewSuperedge(tail, head *Supernode, level int) *Superedge {
	return &Superedge{
		Tail:  tail,
		Head:  head,
		Level: level,
		Attr:  map[string]interface{}{},
		dec:   map[string]*Superedge{},
	}
}

func decKey(e *Superedge) string {
	return e.Tail.Key + "\x00" + e.Head.Key
}

// Dec returns the lower-level Superedges aggregated into e, sorted by
// (tail,head) key for determinism.
func (e *Superedge) Dec() []*Superedge {
	out := make([]*Superedge, 0, len(e.dec))
	for _, x := range e.dec {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return decKey(out[i]) < decKey(out[j]) })

	return out
}

// Len reports how many lower-level Superedges are aggregated into e. A
// leaf (base-level) Superedge always has Len() == 0.
func (e *Superedge) Len() int { return len(e.dec) }

// AddDec aggregates x into e's decontraction.
func (e *Superedge) AddDec(x *Superedge) {
	e.dec[decKey(x)] = x
}

// RemoveDec removes x from e's decontraction.
func (e *Superedge) RemoveDec(x *Superedge) {
	delete(e.dec, decKey(x))
}

// HasDec reports whether x is already aggregated into e.
func (e *Superedge) HasDec(x *Superedge) bool {
	_, ok := e.dec[decKey(x)]

	return ok
}
