// File: comptable.go
// Role: CompTable, the covering of a level's nodes by ComponentSets plus
// the reverse index (node key -> containing sets) and the modified
// frontier a scheme's update loop drains each pass (spec.md §4.C).
package compset

import "sort"

// CompTable is the owning arena of ComponentSets for one level: it tracks
// the current covering, a reverse index from node key to every set
// containing it, and the set of node keys whose containing-set collection
// changed since the last Modified() drain.
type CompTable struct {
	sets     map[int]*ComponentSet
	index    map[string]map[int]*ComponentSet
	modified map[string]struct{}
	nextID   int
}

// NewCompTable returns an empty CompTable.
func NewCompTable() *CompTable {
	return &CompTable{
		sets:     make(map[int]*ComponentSet),
		index:    make(map[string]map[int]*ComponentSet),
		modified: make(map[string]struct{}),
	}
}

// NextID returns a fresh ComponentSet ID, unique within this table for its
// lifetime (monotonically increasing; never reused even after RemoveSet).
func (t *CompTable) NextID() int {
	t.nextID++

	return t.nextID
}

// Sets returns every ComponentSet currently covering the level, sorted by ID.
func (t *CompTable) Sets() []*ComponentSet {
	out := make([]*ComponentSet, 0, len(t.sets))
	for _, c := range t.sets {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Set returns the ComponentSet with the given id, or nil if absent.
func (t *CompTable) Set(id int) *ComponentSet {
	return t.sets[id]
}

// SetsOf returns every ComponentSet currently containing key, sorted by ID.
func (t *CompTable) SetsOf(key string) []*ComponentSet {
	byID := t.index[key]
	out := make([]*ComponentSet, 0, len(byID))
	for _, c := range byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Contains reports whether key is covered by at least one set (n ∈ index,
// spec.md §4.C's __contains__).
func (t *CompTable) Contains(key string) bool {
	sets, ok := t.index[key]

	return ok && len(sets) > 0
}

// AddSet inserts c into the table. Every member of c is added to the
// reverse index and to the modified frontier.
//
// When maximal is true, AddSet enforces set-inclusion maximality (used by
// schemes.CircuitsScheme to keep only maximal circuits): any existing set
// that is a subset of c's members is first removed, and if an existing set
// already is a superset of c, c itself is skipped entirely (not inserted).
func (t *CompTable) AddSet(c *ComponentSet, maximal bool) error {
	if _, exists := t.sets[c.ID]; exists {
		return ErrDuplicateSetID
	}

	if maximal {
		for _, existing := range t.Sets() {
			if c.SubsetOf(existing) {
				return nil // c adds nothing; an existing set already covers it
			}
		}
		for _, existing := range t.Sets() {
			if existing.SubsetOf(c) {
				_ = t.RemoveSet(existing)
			}
		}
	}

	t.sets[c.ID] = c
	for key := range c.Members {
		if t.index[key] == nil {
			t.index[key] = make(map[int]*ComponentSet)
		}
		t.index[key][c.ID] = c
		t.modified[key] = struct{}{}
	}

	return nil
}

// RemoveSet removes c from the table. Every member of c has c dropped from
// its reverse-index entry and is added to the modified frontier; a member
// left with no containing set at all has its (now-empty) index entry
// pruned — the caller must re-cover it or delete it, per spec.md §4.C.
func (t *CompTable) RemoveSet(c *ComponentSet) error {
	if _, exists := t.sets[c.ID]; !exists {
		return ErrSetNotFound
	}
	delete(t.sets, c.ID)
	for key := range c.Members {
		if byID, ok := t.index[key]; ok {
			delete(byID, c.ID)
			if len(byID) == 0 {
				delete(t.index, key)
			}
		}
		t.modified[key] = struct{}{}
	}

	return nil
}

// Modified returns the current modified frontier, sorted for determinism.
func (t *CompTable) Modified() []string {
	out := make([]string, 0, len(t.modified))
	for k := range t.modified {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// ClearModified resets the frontier (spec.md §4.C: modified.clear()).
func (t *CompTable) ClearModified() {
	t.modified = make(map[string]struct{})
}

// CoversAll reports whether every key in keys is covered by some set —
// used to assert the coverage invariant (spec.md §3 (i)) in tests.
func (t *CompTable) CoversAll(keys []string) bool {
	for _, k := range keys {
		if !t.Contains(k) {
			return false
		}
	}

	return true
}
