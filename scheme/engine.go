// File: engine.go
// Role: MakeDecGraph, the provided concrete machinery spec.md §4.E names
// "_make_dec_graph(comp_table, lower_D)": builds the upper DecGraph from a
// freshly (re)computed CompTable.
package scheme

import (
	"fmt"

	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
)

// MakeDecGraph builds the upper-level DecGraph that comp_table describes
// over lowerD, returning it together with the set-id -> Supernode table.
//
// For each set c, a Supernode U is allocated with key = fmt.Sprint(c.ID),
// Dec = the subgraph of lowerD induced by c's members (nodes and edges
// copied by reference), and Attr from the scheme's SupernodeAttrFunc. Every
// member m has c.ID added to its component-set ids; m's home supernode (the
// representative U that m.Supernode points to) is the unique covering set
// if there is only one, otherwise the lowest-id covering set (spec.md
// §4.E's "designated home supernode chosen deterministically").
//
// Cross-set edges of lowerD (tail and head with different home supernodes)
// are aggregated into upper-level Superedges; edges whose endpoints share a
// home supernode are left to the induced-subgraph copy already present in
// that supernode's Dec.E.
func MakeDecGraph(cfg Config, compTable *compset.CompTable, lowerD *decgraph.DecGraph, level int) (*decgraph.DecGraph, map[int]*decgraph.Supernode) {
	upper := decgraph.NewDecGraph(level)
	supernodeTable := make(map[int]*decgraph.Supernode, len(compTable.Sets()))

	for _, c := range compTable.Sets() {
		keep := make(map[string]bool, c.Len())
		for k := range c.Members {
			keep[k] = true
		}
		u := decgraph.NewSupernode(fmt.Sprintf("%d", c.ID), level)
		u.Dec = lowerD.InducedSubgraph(keep)
		u.Attr = cfg.SupernodeAttr(u.Dec)
		supernodeTable[c.ID] = u
		_ = upper.AddNode(u)
	}

	for _, m := range lowerD.Nodes() {
		sets := compTable.SetsOf(m.Key)
		if len(sets) == 0 {
			continue
		}
		home := sets[0]
		for _, c := range sets {
			m.AddComponentSetID(c.ID)
			if c.ID < home.ID {
				home = c
			}
		}
		m.Supernode = supernodeTable[home.ID]
	}

	for _, x := range lowerD.Edges() {
		u, v := x.Tail.Supernode, x.Head.Supernode
		if u == nil || v == nil {
			continue // endpoint uncovered; nothing to aggregate into yet
		}
		if u == v {
			continue // already present via u.Dec's induced-subgraph copy
		}
		buildSuperedge(cfg, upper, u, v, x)
	}

	return upper, supernodeTable
}

// buildSuperedge finds or creates the upper Superedge (u,v) during initial
// construction and aggregates x into it, recomputing its attribute.
func buildSuperedge(cfg Config, upper *decgraph.DecGraph, u, v *decgraph.Supernode, x *decgraph.Superedge) *decgraph.Superedge {
	e := upper.Edge(u.Key, v.Key)
	if e == nil {
		var err error
		e, err = upper.AddEdge(u.Key, v.Key)
		if err != nil {
			return nil
		}
	}
	e.AddDec(x)
	e.Attr = cfg.SuperedgeAttr(e.Dec())

	return e
}
