// Package schemes implements the four concrete ContractionScheme
// instances spec.md §4.H names: SCCsContractionScheme (strongly connected
// components), CircuitsBasedContractionScheme (maximal elementary
// circuits), CliquesContractionScheme (maximal cliques), and
// StarsContractionScheme (each node plus its out-neighbours — the
// "optional" scheme spec.md mentions, implemented here as the simplest
// worked example of the engine).
//
// Each wires package algo's Tarjan/Johnson/Bron-Kerbosch implementations,
// bfs.Reachable for SCC's cycle-collapse check, and core.InducedSubgraph
// for Cliques' neighbourhood recomputation, into the generic engine
// package scheme provides (MakeDecGraph/UpdateGraph/AddEdgeInSuperedge/
// RemoveEdgeInSuperedge).
package schemes
