// File: detect.go
// Role: single-DFS-tree cycle detection, used as a cheap cross-check
// against algo.SimpleCycles' full Johnson enumeration in tests — any cycle
// this finds must also appear (up to canonicalization) in the exhaustive
// result, though the converse does not hold (this walk only follows back
// edges of one DFS forest, so it can miss elementary circuits that share no
// DFS tree edge with the one it happened to grow).
package dfs

import (
	"fmt"

	"github.com/marco-caputo/multilevel-graphs/core"
)

const (
	white = iota
	gray
	black
)

// DetectCycles reports whether g (a directed core.Graph) contains any
// cycle, and returns one canonicalized representative circuit per distinct
// back edge found.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))
	seen := make(map[string]struct{})
	var cycles [][]string

	for _, v := range verts {
		if state[v] == white {
			if err := visit(g, v, state, &path, seen, &cycles); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	return len(cycles) > 0, cycles, nil
}

func visit(g *core.Graph, id string, state map[string]int, path *[]string, seen map[string]struct{}, cycles *[][]string) error {
	state[id] = gray
	*path = append(*path, id)

	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("NeighborIDs(%q): %w", id, err)
	}

	for _, nbr := range nbrs {
		switch state[nbr] {
		case white:
			if err := visit(g, nbr, state, path, seen, cycles); err != nil {
				return err
			}
		case gray:
			idx := IndexOf(*path, nbr)
			seq := append([]string(nil), (*path)[idx:]...)
			seq = append(seq, nbr)
			sig, canon := Canonical(seq)
			if _, ok := seen[sig]; !ok {
				seen[sig] = struct{}{}
				*cycles = append(*cycles, canon)
			}
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = black

	return nil
}
