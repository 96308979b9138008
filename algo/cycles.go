// File: cycles.go
// Role: Johnson's algorithm for enumerating every elementary circuit of a
// directed graph, plus CyclesThrough, a variant scoped to circuits that use
// one particular edge — the primitive schemes.CircuitsScheme's edge-add
// handler needs (spec.md §4.C: "cycles_through(D, [a,b])").
package algo

import (
	"sort"

	"github.com/marco-caputo/multilevel-graphs/core"
	"github.com/marco-caputo/multilevel-graphs/dfs"
)

// adjCopy is a mutable directed-adjacency snapshot Johnson's algorithm
// shrinks in place as it retires start vertices.
type adjCopy map[string]map[string]struct{}

func copyAdjacency(g *core.Graph) adjCopy {
	out := make(adjCopy)
	for _, v := range g.Vertices() {
		out[v] = make(map[string]struct{})
	}
	for _, e := range g.Edges() {
		out[e.From][e.To] = struct{}{}
	}

	return out
}

func (a adjCopy) removeNode(n string) {
	delete(a, n)
	for _, nbrs := range a {
		delete(nbrs, n)
	}
}

func (a adjCopy) neighborsWithin(n string, within map[string]struct{}) []string {
	out := make([]string, 0, len(a[n]))
	for nbr := range a[n] {
		if _, ok := within[nbr]; ok {
			out = append(out, nbr)
		}
	}
	sort.Strings(out)

	return out
}

func tarjanOnAdj(a adjCopy, nodes []string) [][]string {
	nodeSet := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		nodeSet[n] = struct{}{}
	}
	state := &tarjanAdjState{
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
	}
	sort.Strings(nodes)
	for _, v := range nodes {
		if _, visited := state.index[v]; !visited {
			state.strongConnect(a, v, nodeSet)
		}
	}
	for _, comp := range state.components {
		sort.Strings(comp)
	}
	sort.Slice(state.components, func(i, j int) bool { return state.components[i][0] < state.components[j][0] })

	return state.components
}

type tarjanAdjState struct {
	counter    int
	index      map[string]int
	lowlink    map[string]int
	onStack    map[string]bool
	stack      []string
	components [][]string
}

func (t *tarjanAdjState) strongConnect(a adjCopy, v string, within map[string]struct{}) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range a.neighborsWithin(v, within) {
		if _, visited := t.index[w]; !visited {
			t.strongConnect(a, w, within)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		var comp []string
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		t.components = append(t.components, comp)
	}
}

// SimpleCycles enumerates every elementary circuit of g using Johnson's
// algorithm. Each returned cycle is a closed walk [v0, v1, ..., vk, v0] with
// no repeated vertex other than the closing one. Output is sorted
// deterministically by its canonical (dfs.Canonical) signature.
func SimpleCycles(g *core.Graph) ([][]string, error) {
	adj := copyAdjacency(g)
	var cycles [][]string

	worklist := initialSCCs(adj)
	for len(worklist) > 0 {
		scc := worklist[0]
		worklist = worklist[1:]
		if len(scc) == 0 {
			continue
		}
		sort.Strings(scc)
		start := scc[0]

		cycles = append(cycles, findCyclesFrom(adj, scc, start)...)

		sccSet := make(map[string]struct{}, len(scc))
		for _, n := range scc {
			sccSet[n] = struct{}{}
		}
		adj.removeNode(start)
		remaining := make([]string, 0, len(scc)-1)
		for _, n := range scc {
			if n != start {
				remaining = append(remaining, n)
			}
		}
		for _, sub := range tarjanOnAdj(adj, remaining) {
			if len(sub) >= 2 || (len(sub) == 1 && hasSelfLoop(adj, sub[0])) {
				worklist = append(worklist, sub)
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		si, _ := dfs.Canonical(cycles[i])
		sj, _ := dfs.Canonical(cycles[j])
		return si < sj
	})

	return cycles, nil
}

func initialSCCs(adj adjCopy) [][]string {
	nodes := make([]string, 0, len(adj))
	for n := range adj {
		nodes = append(nodes, n)
	}
	var out [][]string
	for _, scc := range tarjanOnAdj(adj, nodes) {
		if len(scc) >= 2 || (len(scc) == 1 && hasSelfLoop(adj, scc[0])) {
			out = append(out, scc)
		}
	}

	return out
}

func hasSelfLoop(adj adjCopy, n string) bool {
	_, ok := adj[n][n]

	return ok
}

// findCyclesFrom runs Johnson's blocked-DFS circuit search rooted at start,
// confined to the vertices of scc.
func findCyclesFrom(adj adjCopy, scc []string, start string) [][]string {
	sccSet := make(map[string]struct{}, len(scc))
	for _, n := range scc {
		sccSet[n] = struct{}{}
	}

	blocked := map[string]struct{}{start: {}}
	blockMap := map[string]map[string]struct{}{}
	path := []string{start}
	var cycles [][]string

	type frame struct {
		node string
		nbrs []string
		idx  int
	}
	closed := []bool{false}
	stack := []frame{{node: start, nbrs: adj.neighborsWithin(start, sccSet)}}

	var unblock func(u string)
	unblock = func(u string) {
		delete(blocked, u)
		for w := range blockMap[u] {
			delete(blockMap[u], w)
			if _, ok := blocked[w]; ok {
				unblock(w)
			}
		}
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx < len(top.nbrs) {
			nxt := top.nbrs[top.idx]
			top.idx++
			if nxt == start {
				cyc := append(append([]string(nil), path...), start)
				cycles = append(cycles, cyc)
				closed[len(closed)-1] = true
			} else if _, isBlocked := blocked[nxt]; !isBlocked {
				path = append(path, nxt)
				blocked[nxt] = struct{}{}
				closed = append(closed, false)
				stack = append(stack, frame{node: nxt, nbrs: adj.neighborsWithin(nxt, sccSet)})
			}
			continue
		}

		wasClosed := closed[len(closed)-1]
		if wasClosed {
			unblock(top.node)
		} else {
			for _, nbr := range adj.neighborsWithin(top.node, sccSet) {
				if blockMap[nbr] == nil {
					blockMap[nbr] = map[string]struct{}{}
				}
				blockMap[nbr][top.node] = struct{}{}
			}
		}
		stack = stack[:len(stack)-1]
		closed = closed[:len(closed)-1]
		path = path[:len(path)-1]
		if len(closed) > 0 && wasClosed {
			closed[len(closed)-1] = true
		}
	}

	return cycles
}

// CyclesThrough returns every elementary circuit of g that traverses the
// edge a->b as one of its steps. It restricts the search to the strongly
// connected component containing both a and b, since no circuit can use an
// edge whose endpoints are not mutually reachable.
func CyclesThrough(g *core.Graph, a, b string) ([][]string, error) {
	if !g.HasEdge(a, b) {
		return nil, nil
	}
	adj := copyAdjacency(g)
	nodes := make([]string, 0, len(adj))
	for n := range adj {
		nodes = append(nodes, n)
	}

	var hostSCC []string
	for _, scc := range tarjanOnAdj(adj, nodes) {
		inScc := map[string]struct{}{}
		for _, n := range scc {
			inScc[n] = struct{}{}
		}
		_, hasA := inScc[a]
		_, hasB := inScc[b]
		if hasA && hasB {
			hostSCC = scc
			break
		}
	}
	if hostSCC == nil {
		return nil, nil
	}

	// Rooting the blocked-DFS circuit search at a finds every elementary
	// circuit of the host SCC that passes through a — every such circuit
	// can equivalently be described as "starting" at a — so this single
	// call already covers every circuit that could use edge a->b.
	all := findCyclesFrom(adj, hostSCC, a)

	var out [][]string
	seen := map[string]struct{}{}
	for _, cyc := range all {
		if !ConsecutivePair(cyc, a, b) {
			continue
		}
		sig, canon := dfs.Canonical(cyc)
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, canon)
	}
	sort.Slice(out, func(i, j int) bool {
		si, _ := dfs.Canonical(out[i])
		sj, _ := dfs.Canonical(out[j])
		return si < sj
	})

	return out, nil
}

// ConsecutivePair reports whether a->b appears as a consecutive step of
// cycle, a closed walk [v0, v1, ..., vk, v0] as returned by SimpleCycles or
// CyclesThrough. Exported so callers holding onto a previously-returned
// cycle (e.g. schemes.CircuitsScheme, which stores one per ComponentSet) can
// later re-check edge membership without re-enumerating cycles.
func ConsecutivePair(cycle []string, a, b string) bool {
	for i := 0; i+1 < len(cycle); i++ {
		if cycle[i] == a && cycle[i+1] == b {
			return true
		}
	}

	return false
}
