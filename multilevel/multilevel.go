// File: multilevel.go
// Role: MultilevelGraph, the façade spec.md §4.I and §6 specify: construction
// from a base graph, scheme composition, base mutators, and the
// forced-propagation readers GetGraph/View/GetComponentSets/Height.
package multilevel

import (
	"fmt"

	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/marco-caputo/multilevel-graphs/core"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/marco-caputo/multilevel-graphs/quad"
	"github.com/marco-caputo/multilevel-graphs/scheme"
)

// levelEntry bundles one appended scheme instance with its level state.
// st is nil until the level is first built by ensurePropagated.
type levelEntry struct {
	scheme scheme.ContractionScheme
	st     *scheme.LevelState
}

// MultilevelGraph stacks an ordered sequence of ContractionScheme levels
// above a level-0 DecGraph wrapping a base core.Graph (spec.md §4.I).
//
// Not safe for concurrent use without external synchronization. Unlike
// core.Graph, whose mutators lock internally, nothing here is locked: a
// single MultilevelGraph call may touch several levels' LevelState in
// sequence.
type MultilevelGraph struct {
	base *decgraph.DecGraph

	entries []*levelEntry

	// pendingIn[k] buffers events produced at level k (base if k==0, else
	// entries[k-1]'s DecGraph) not yet folded into entries[k]'s LevelState.
	pendingIn []*quad.UpdateQuadruple

	// bound tracks scheme instances already passed to AppendContractionScheme
	// by identity, rejecting a second append of the same unwrapped instance.
	bound map[scheme.ContractionScheme]struct{}
}

// NewMultilevelGraph wraps base as a level-0 DecGraph via
// decgraph.NaturalTransformation and appends each scheme in order, one
// level each (spec.md §4.I: "MultilevelGraph(base, schemes?)").
func NewMultilevelGraph(base *core.Graph, schemes ...scheme.ContractionScheme) (*MultilevelGraph, error) {
	m := &MultilevelGraph{
		base:  decgraph.NaturalTransformation(base),
		bound: map[scheme.ContractionScheme]struct{}{},
	}
	for _, s := range schemes {
		if err := m.AppendContractionScheme(s); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// AppendContractionScheme clones s and appends it as a new top level without
// building it (spec.md §4.I: "clones S and appends it without building") —
// the level is materialised lazily, the next time a query forces
// propagation up to it. Returns scheme.ErrSchemeAlreadyBound if s (the
// instance passed in, not a clone of it) was already appended.
func (m *MultilevelGraph) AppendContractionScheme(s scheme.ContractionScheme) error {
	if _, dup := m.bound[s]; dup {
		return scheme.ErrSchemeAlreadyBound
	}
	m.bound[s] = struct{}{}
	m.entries = append(m.entries, &levelEntry{scheme: s.Clone()})
	m.pendingIn = append(m.pendingIn, quad.New())

	return nil
}

// Height returns the number of contraction levels stacked above the base
// (spec.md §6: "height() -> int").
func (m *MultilevelGraph) Height() int {
	return len(m.entries)
}

// AddNode inserts a new base-level (level 0) node with the given attribute
// bag and journals the addition for propagation into level 1. Returns
// decgraph.ErrDuplicateKey if key is already present.
func (m *MultilevelGraph) AddNode(key string, attr map[string]interface{}) error {
	if m.base.Node(key) != nil {
		return decgraph.ErrDuplicateKey
	}
	n := decgraph.NewSupernode(key, 0)
	for k, v := range attr {
		n.Attr[k] = v
	}
	if err := m.base.AddNode(n); err != nil {
		return fmt.Errorf("multilevel: add node: %w", err)
	}
	if len(m.entries) > 0 {
		_ = m.pendingIn[0].AddNode(n)
	}

	return nil
}

// RemoveNode deletes the base-level node with the given key and journals
// the removal. Returns decgraph.ErrNodeNotFound if absent, or
// decgraph.ErrNodeHasIncidentEdges if incident base edges remain — callers
// must RemoveEdge every incident edge first.
func (m *MultilevelGraph) RemoveNode(key string) error {
	n := m.base.Node(key)
	if n == nil {
		return decgraph.ErrNodeNotFound
	}
	if err := m.base.RemoveNode(key); err != nil {
		return fmt.Errorf("multilevel: remove node: %w", err)
	}
	if len(m.entries) > 0 {
		_ = m.pendingIn[0].RemoveNode(n)
	}

	return nil
}

// AddEdge inserts a new base-level edge from u to v with the given
// attribute bag and journals the addition. Returns decgraph.ErrNodeNotFound
// if either endpoint is absent, or decgraph.ErrDuplicateKey if an edge
// between this ordered pair already exists at level 0.
func (m *MultilevelGraph) AddEdge(u, v string, attr map[string]interface{}) error {
	e, err := m.base.AddEdge(u, v)
	if err != nil {
		return fmt.Errorf("multilevel: add edge: %w", err)
	}
	for k, val := range attr {
		e.Attr[k] = val
	}
	if len(m.entries) > 0 {
		m.pendingIn[0].AddEdge(e)
	}

	return nil
}

// RemoveEdge deletes the base-level edge from u to v and journals the
// removal; if the edge's addition is still pending, that addition is
// cancelled instead. Returns decgraph.ErrEdgeNotFound if absent.
func (m *MultilevelGraph) RemoveEdge(u, v string) error {
	e := m.base.Edge(u, v)
	if e == nil {
		return decgraph.ErrEdgeNotFound
	}
	if err := m.base.RemoveEdge(u, v); err != nil {
		return fmt.Errorf("multilevel: remove edge: %w", err)
	}
	if len(m.entries) > 0 {
		pending := m.pendingIn[0]
		for i, added := range pending.EPlus {
			if added == e {
				// Replay runs removals before additions, so journalling a
				// removal here would leave the addition behind.
				pending.EPlus = append(pending.EPlus[:i], pending.EPlus[i+1:]...)
				return nil
			}
		}
		pending.RemoveEdge(e)
	}

	return nil
}

// GetGraph forces propagation of buffered base edits through levels 1..i
// and returns a deep structural copy of level i's DecGraph (spec.md §6:
// "get_graph(i) -> DecGraph (deep copy)"). i == 0 returns a copy of the
// base level.
func (m *MultilevelGraph) GetGraph(i int) (*decgraph.DecGraph, error) {
	d, err := m.view(i)
	if err != nil {
		return nil, err
	}

	return d.Clone(), nil
}

// View forces propagation of buffered base edits through levels 1..i and
// returns the live internal DecGraph at level i — Go's stand-in for
// spec.md §6's "[i] -> DecGraph (view)" indexing operator, which this
// module cannot overload directly. Callers must not mutate the result.
func (m *MultilevelGraph) View(i int) (*decgraph.DecGraph, error) {
	return m.view(i)
}

func (m *MultilevelGraph) view(i int) (*decgraph.DecGraph, error) {
	if i < 0 || i > len(m.entries) {
		return nil, ErrLevelOutOfRange
	}
	if i == 0 {
		return m.base, nil
	}
	if err := m.ensurePropagated(i); err != nil {
		return nil, err
	}

	return m.entries[i-1].st.DecGraph, nil
}

// GetComponentSets forces propagation through level i and returns the
// ComponentSets covering level i-1 that level i's scheme currently
// maintains (spec.md §6: "get_component_sets(i)").
func (m *MultilevelGraph) GetComponentSets(i int) ([]*compset.ComponentSet, error) {
	if i < 1 || i > len(m.entries) {
		return nil, ErrLevelOutOfRange
	}
	if err := m.ensurePropagated(i); err != nil {
		return nil, err
	}

	return m.entries[i-1].st.CompTable.Sets(), nil
}

// NaturalTransformation wraps g as a level-0 DecGraph, delegating to
// decgraph.NaturalTransformation (spec.md §6's static constructor).
func NaturalTransformation(g *core.Graph) *decgraph.DecGraph {
	return decgraph.NaturalTransformation(g)
}

// Rebuild discards level i's incremental state and every level above it,
// recomputing each from scratch against its (already propagated) lower
// level in ascending order — the recovery path after scheme.ErrNeedsRebuild
// (spec.md §7).
func (m *MultilevelGraph) Rebuild(i int) error {
	if i < 1 || i > len(m.entries) {
		return ErrLevelOutOfRange
	}
	if i > 1 {
		if err := m.ensurePropagated(i - 1); err != nil {
			return err
		}
	}
	for j := i; j <= len(m.entries); j++ {
		idx := j - 1
		entry := m.entries[idx]
		st, err := scheme.Rebuild(entry.scheme, m.graphAt(idx), j)
		if err != nil {
			return fmt.Errorf("multilevel: rebuild level %d: %w", j, err)
		}
		entry.st = st
		m.pendingIn[idx] = quad.New()
	}

	return nil
}

// graphAt returns the DecGraph that level idx+1 (0-indexed entries[idx])
// contracts: the base for idx==0, else the already-built DecGraph of the
// entry directly below.
func (m *MultilevelGraph) graphAt(idx int) *decgraph.DecGraph {
	if idx == 0 {
		return m.base
	}

	return m.entries[idx-1].st.DecGraph
}

// ensurePropagated builds every not-yet-built level up to i and folds any
// buffered pending events into every already-built level up to i, stopping
// exactly at i even if higher levels exist and are themselves stale
// (spec.md §9's lazy-propagation design note).
func (m *MultilevelGraph) ensurePropagated(i int) error {
	for j := 1; j <= i; j++ {
		idx := j - 1
		entry := m.entries[idx]

		if entry.st == nil {
			st, err := scheme.Build(entry.scheme, m.graphAt(idx), j)
			if err != nil {
				return fmt.Errorf("multilevel: build level %d: %w", j, err)
			}
			entry.st = st
			m.pendingIn[idx] = quad.New()
			continue
		}

		if m.pendingIn[idx].Empty() {
			continue
		}

		out, err := scheme.Update(entry.scheme, entry.st, m.pendingIn[idx])
		if err != nil {
			return fmt.Errorf("multilevel: update level %d: %w", j, err)
		}
		m.pendingIn[idx] = quad.New()

		if idx+1 < len(m.pendingIn) {
			mergeInto(m.pendingIn[idx+1], out)
		}
	}

	return nil
}

// mergeInto concatenates src's four event slices onto dst — accumulator
// storage for a not-yet-drained level, not a replayed pass, so src's
// per-pass duplicate guards do not need to apply here.
func mergeInto(dst, src *quad.UpdateQuadruple) {
	dst.VPlus = append(dst.VPlus, src.VPlus...)
	dst.VMinus = append(dst.VMinus, src.VMinus...)
	dst.EPlus = append(dst.EPlus, src.EPlus...)
	dst.EMinus = append(dst.EMinus, src.EMinus...)
}
