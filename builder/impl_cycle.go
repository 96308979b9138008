package builder

import (
	"fmt"

	"github.com/marco-caputo/multilevel-graphs/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n
// (n >= MinCycleNodes): vertices idFn(0..n-1), edges i -> (i+1)%n in
// ascending i.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			v := cfg.idFn((i + 1) % n)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
