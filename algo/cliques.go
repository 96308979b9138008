// File: cliques.go
// Role: Bron-Kerbosch maximal-clique enumeration with pivoting, over the
// undirected closure of a directed core.Graph snapshot (spec.md §4.B).
package algo

import (
	"sort"

	"github.com/marco-caputo/multilevel-graphs/core"
)

// MaximalCliques returns the maximal cliques of g's underlying undirected
// graph. An undirected edge {u,v} exists iff (u,v) and (v,u) are both
// present in g (reciprocal=true), or iff either direction is present
// (reciprocal=false). Output is sorted by each clique's smallest member,
// then lexicographically.
func MaximalCliques(g *core.Graph, reciprocal bool) ([][]string, error) {
	adj := undirectedClosure(g, reciprocal)

	nodes := make([]string, 0, len(adj))
	for n := range adj {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	nodeSet := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		nodeSet[n] = struct{}{}
	}

	var cliques [][]string
	bronKerboschPivot(adj, map[string]struct{}{}, nodeSet, map[string]struct{}{}, &cliques)

	for _, c := range cliques {
		sort.Strings(c)
	}
	sort.Slice(cliques, func(i, j int) bool {
		a, b := cliques[i], cliques[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})

	return cliques, nil
}

func undirectedClosure(g *core.Graph, reciprocal bool) map[string]map[string]struct{} {
	adj := make(map[string]map[string]struct{})
	for _, v := range g.Vertices() {
		adj[v] = make(map[string]struct{})
	}
	forward := make(map[[2]string]struct{})
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue // self-loops never contribute to clique membership
		}
		forward[[2]string{e.From, e.To}] = struct{}{}
	}
	for pair := range forward {
		u, v := pair[0], pair[1]
		if reciprocal {
			if _, back := forward[[2]string{v, u}]; back {
				adj[u][v] = struct{}{}
				adj[v][u] = struct{}{}
			}
		} else {
			adj[u][v] = struct{}{}
			adj[v][u] = struct{}{}
		}
	}

	return adj
}

// bronKerboschPivot is the classic recursive Bron-Kerbosch algorithm with
// pivoting: BK(R, P, X) extends the clique R using candidates P, excluding
// already-reported vertices X.
func bronKerboschPivot(adj map[string]map[string]struct{}, r, p, x map[string]struct{}, out *[][]string) {
	if len(p) == 0 && len(x) == 0 {
		clique := make([]string, 0, len(r))
		for v := range r {
			clique = append(clique, v)
		}
		*out = append(*out, clique)
		return
	}

	pivot := choosePivot(p, x)
	candidates := make([]string, 0, len(p))
	for v := range p {
		if _, isNbr := adj[pivot][v]; !isNbr {
			candidates = append(candidates, v)
		}
	}
	sort.Strings(candidates)

	for _, v := range candidates {
		newR := copyAndAdd(r, v)
		newP := intersectWithNeighbors(p, adj[v])
		newX := intersectWithNeighbors(x, adj[v])
		bronKerboschPivot(adj, newR, newP, newX, out)

		delete(p, v)
		x[v] = struct{}{}
	}
}

// choosePivot picks a deterministic pivot from P ∪ X (the lexicographically
// smallest key). Any vertex in P ∪ X is a valid pivot for Bron-Kerbosch
// correctness; picking it deterministically keeps output order stable.
func choosePivot(p, x map[string]struct{}) string {
	var best string
	for v := range p {
		if best == "" || v < best {
			best = v
		}
	}
	for v := range x {
		if best == "" || v < best {
			best = v
		}
	}

	return best
}

func copyAndAdd(s map[string]struct{}, v string) map[string]struct{} {
	out := make(map[string]struct{}, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[v] = struct{}{}

	return out
}

func intersectWithNeighbors(s map[string]struct{}, nbrs map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for v := range s {
		if _, ok := nbrs[v]; ok {
			out[v] = struct{}{}
		}
	}

	return out
}
