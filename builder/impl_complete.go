package builder

import (
	"fmt"

	"github.com/marco-caputo/multilevel-graphs/core"
)

// Complete returns a Constructor that builds the complete simple graph
// K_n (n >= MinCompleteNodes): vertices idFn(0..n-1), each unordered pair
// {i,j} with i<j connected i->j, mirrored j->i when the graph is directed.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}

		for i := 0; i < n; i++ {
			u := ids[i]
			for j := i + 1; j < n; j++ {
				v := ids[j]
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodComplete, u, v, err)
				}
				if g.Directed() {
					if _, err := g.AddEdge(v, u); err != nil {
						return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodComplete, v, u, err)
					}
				}
			}
		}

		return nil
	}
}
