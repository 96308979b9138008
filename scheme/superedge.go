// File: superedge.go
// Role: AddEdgeInSuperedge / RemoveEdgeInSuperedge (spec.md §4.E): find or
// create the upper edge (u,v), append/remove x in its dec, create/destroy
// the upper edge when dec transitions to non-empty/empty, recompute its
// attr, journal into the outgoing quadruple.
package scheme

import "github.com/marco-caputo/multilevel-graphs/decgraph"

// AddEdgeInSuperedge aggregates the lower-level edge x into the upper
// superedge from uKey to vKey, creating that superedge if it did not
// already exist, and journals the change into st.Out.
func AddEdgeInSuperedge(cfg Config, st *LevelState, uKey, vKey string, x *decgraph.Superedge) error {
	e := st.DecGraph.Edge(uKey, vKey)
	created := e == nil
	if created {
		var err error
		e, err = st.DecGraph.AddEdge(uKey, vKey)
		if err != nil {
			return err
		}
	}
	e.AddDec(x)
	e.Attr = cfg.SuperedgeAttr(e.Dec())
	if created {
		st.Out.AddEdge(e)
	}

	return nil
}

// RemoveEdgeInSuperedge removes the lower-level edge x from the upper
// superedge from uKey to vKey, destroying that superedge if its
// aggregation becomes empty, and journals the change into st.Out.
func RemoveEdgeInSuperedge(cfg Config, st *LevelState, uKey, vKey string, x *decgraph.Superedge) error {
	e := st.DecGraph.Edge(uKey, vKey)
	if e == nil {
		return nil
	}
	e.RemoveDec(x)
	if e.Len() == 0 {
		_ = st.DecGraph.RemoveEdge(uKey, vKey)
		st.Out.RemoveEdge(e)
		return nil
	}
	e.Attr = cfg.SuperedgeAttr(e.Dec())

	return nil
}
