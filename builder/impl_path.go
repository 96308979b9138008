package builder

import (
	"fmt"

	"github.com/marco-caputo/multilevel-graphs/core"
)

// Path returns a Constructor that builds a simple path P_n
// (n >= MinPathNodes): vertices idFn(0..n-1), edges (i-1) -> i for
// i=1..n-1 in ascending order.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}

		for i := 1; i < n; i++ {
			u := cfg.idFn(i - 1)
			v := cfg.idFn(i)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
