// Package builder_test contains functional tests for the fixture
// constructors in the builder package, verifying topology, counts, and
// idempotence.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/marco-caputo/multilevel-graphs/builder"
	"github.com/marco-caputo/multilevel-graphs/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasEdge(g *core.Graph, u, v string) bool {
	return g.HasEdge(u, v)
}

func TestBuilders_Functional(t *testing.T) {
	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					from, to := fmt.Sprint(i), fmt.Sprint((i+1)%5)
					assert.True(t, hasEdge(g, from, to), "missing edge %s->%s", from, to)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					from, to := fmt.Sprint(i), fmt.Sprint(i+1)
					assert.True(t, hasEdge(g, from, to), "missing edge %s->%s", from, to)
				}
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 1; i < 4; i++ {
					leaf := fmt.Sprint(i)
					assert.True(t, hasEdge(g, builder.CenterVertexID, leaf))
				}
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, p := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}} {
					assert.True(t, hasEdge(g, p[0], p[1]))
				}
			},
		},
	}

	// Cycle and Path never mirror edges regardless of directedness; Star and
	// Complete only emit the reverse spoke/pair on a directed graph, so these
	// fixtures are built on an explicitly undirected graph to keep counts
	// matching the classical C_n/P_n/star/K_n edge counts.
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			gopts := []core.GraphOption{core.WithDirected(false)}
			g, err := builder.BuildGraph(gopts, nil, tc.ctor)
			require.NoError(t, err)

			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			tc.sampleCheck(t, g)

			g2, err := builder.BuildGraph(gopts, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g2.VertexCount())
			assert.Equal(t, tc.wantE, g2.EdgeCount())
		})
	}
}

func TestStar_Directed_AddsReverseSpokes(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Star(3))
	require.NoError(t, err)

	assert.True(t, g.HasEdge(builder.CenterVertexID, "1"))
	assert.True(t, g.HasEdge("1", builder.CenterVertexID))
	assert.Equal(t, 4, g.EdgeCount())
}

func TestConstructors_TooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Complete(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWithIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithIDScheme(builder.PrefixedIDFn("v")),
	}, builder.Path(3))
	require.NoError(t, err)

	assert.True(t, g.HasVertex("v0"))
	assert.True(t, g.HasVertex("v1"))
	assert.True(t, g.HasVertex("v2"))
	assert.True(t, g.HasEdge("v0", "v1"))
}
