package builder

import (
	"fmt"

	"github.com/marco-caputo/multilevel-graphs/core"
)

// Star returns a Constructor that builds a star with hub CenterVertexID
// and n-1 leaves idFn(1..n-1) (n >= MinStarNodes). Spokes are emitted
// Center -> leaf; on a directed graph the reverse spoke leaf -> Center is
// also added so the star is traversable from either end.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}

		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if _, err := g.AddEdge(CenterVertexID, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodStar, CenterVertexID, leaf, err)
			}
			if g.Directed() {
				if _, err := g.AddEdge(leaf, CenterVertexID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodStar, leaf, CenterVertexID, err)
				}
			}
		}

		return nil
	}
}
