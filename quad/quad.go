// File: quad.go
// Role: UpdateQuadruple, the ordered event buffer a scheme emits upward and
// consumes from below (spec.md §3, §4.D).
package quad

import "github.com/marco-caputo/multilevel-graphs/decgraph"

// UpdateQuadruple buffers the four ordered event sequences flowing between
// one level and the next: node additions (VPlus), node removals (VMinus),
// edge additions (EPlus), and edge removals (EMinus). It is append-only
// during a pass and FIFO-replayed by the consuming scheme.
//
// Duplicate guard: within a single pass, the same node key may not be
// queued for addition twice, nor for removal twice — either is the
// programmer error spec.md §4.D calls out ("admitting duplicates...").
// A node legitimately added and later removed within the same pass is not
// a duplicate of either kind and is accepted by both calls.
type UpdateQuadruple struct {
	VPlus  []*decgraph.Supernode
	VMinus []*decgraph.Supernode
	EPlus  []*decgraph.Superedge
	EMinus []*decgraph.Superedge

	addedKeys   map[string]struct{}
	removedKeys map[string]struct{}
}

// New returns an empty UpdateQuadruple ready to accumulate one pass's events.
func New() *UpdateQuadruple {
	return &UpdateQuadruple{
		addedKeys:   map[string]struct{}{},
		removedKeys: map[string]struct{}{},
	}
}

// AddNode journals a node addition. Returns ErrDuplicateNodeAdd if n.Key was
// already queued for addition this pass.
func (u *UpdateQuadruple) AddNode(n *decgraph.Supernode) error {
	if _, dup := u.addedKeys[n.Key]; dup {
		return ErrDuplicateNodeAdd
	}
	u.addedKeys[n.Key] = struct{}{}
	u.VPlus = append(u.VPlus, n)

	return nil
}

// RemoveNode journals a node removal. Returns ErrUnknownNodeRemove if n.Key
// was already queued for removal this pass.
func (u *UpdateQuadruple) RemoveNode(n *decgraph.Supernode) error {
	if _, dup := u.removedKeys[n.Key]; dup {
		return ErrUnknownNodeRemove
	}
	u.removedKeys[n.Key] = struct{}{}
	u.VMinus = append(u.VMinus, n)

	return nil
}

// AddEdge journals an edge addition.
func (u *UpdateQuadruple) AddEdge(e *decgraph.Superedge) {
	u.EPlus = append(u.EPlus, e)
}

// RemoveEdge journals an edge removal.
func (u *UpdateQuadruple) RemoveEdge(e *decgraph.Superedge) {
	u.EMinus = append(u.EMinus, e)
}

// Empty reports whether no events are buffered — the per-level "dirty flag"
// package multilevel uses for lazy propagation (spec.md §9).
func (u *UpdateQuadruple) Empty() bool {
	return len(u.VPlus) == 0 && len(u.VMinus) == 0 && len(u.EPlus) == 0 && len(u.EMinus) == 0
}

// Handlers groups the four callbacks Replay dispatches to, one per event
// family, in the canonical order spec.md §4.E mandates.
type Handlers struct {
	OnRemovedEdge func(e *decgraph.Superedge) error
	OnRemovedNode func(n *decgraph.Supernode) error
	OnAddedNode   func(n *decgraph.Supernode) error
	OnAddedEdge   func(e *decgraph.Superedge) error
}

// Replay consumes u in the canonical order E⁻, V⁻, V⁺, E⁺ (spec.md §4.E,
// §5: "events are consumed in the canonical order E⁻, V⁻, V⁺, E⁺"),
// dispatching each event to the matching Handlers callback. It stops and
// returns the first error encountered.
func Replay(u *UpdateQuadruple, h Handlers) error {
	for _, e := range u.EMinus {
		if err := h.OnRemovedEdge(e); err != nil {
			return err
		}
	}
	for _, n := range u.VMinus {
		if err := h.OnRemovedNode(n); err != nil {
			return err
		}
	}
	for _, n := range u.VPlus {
		if err := h.OnAddedNode(n); err != nil {
			return err
		}
	}
	for _, e := range u.EPlus {
		if err := h.OnAddedEdge(e); err != nil {
			return err
		}
	}

	return nil
}
