// Package algo implements the three graph algorithms the concrete
// contraction schemes are built on (spec.md §4.B): Tarjan's strongly
// connected components, Johnson's elementary-circuit enumeration, and
// Bron-Kerbosch maximal-clique enumeration with pivoting.
//
// Every algorithm here takes the plain directed-graph snapshot a
// decgraph.DecGraph.Graph() call produces (a *core.Graph) and never
// mutates it; schemes package wires these into the incremental update
// handlers of the concrete contraction schemes.
package algo
