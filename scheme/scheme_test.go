package scheme_test

import (
	"testing"

	"github.com/marco-caputo/multilevel-graphs/compset"
	"github.com/marco-caputo/multilevel-graphs/core"
	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/marco-caputo/multilevel-graphs/quad"
	"github.com/marco-caputo/multilevel-graphs/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singletonScheme is the simplest possible ContractionScheme: every node is
// its own ComponentSet, forever. It exists only to exercise the generic
// engine (Build/Update/UpdateGraph) in isolation from any real grouping
// algorithm.
type singletonScheme struct {
	scheme.EdgeBased
	cfg scheme.Config
}

func newSingletonScheme() *singletonScheme {
	return &singletonScheme{cfg: scheme.NewConfig()}
}

func (s *singletonScheme) Name() string                     { return "singleton" }
func (s *singletonScheme) Clone() scheme.ContractionScheme  { return &singletonScheme{cfg: s.cfg} }
func (s *singletonScheme) Config() scheme.Config            { return s.cfg }

func (s *singletonScheme) ContractionFunction(d *decgraph.DecGraph) (*compset.CompTable, error) {
	t := compset.NewCompTable()
	for _, n := range d.Nodes() {
		c := compset.NewComponentSet(t.NextID(), []string{n.Key})
		if err := t.AddSet(c, false); err != nil {
			return nil, err
		}
	}
	t.ClearModified()

	return t, nil
}

func (s *singletonScheme) UpdateAddedNode(st *scheme.LevelState, n *decgraph.Supernode) error {
	return s.EdgeBased.UpdateAddedNode(s.cfg, st, n)
}

func (s *singletonScheme) UpdateAddedEdge(st *scheme.LevelState, e *decgraph.Superedge) error {
	return scheme.AddEdgeInSuperedge(s.cfg, st, e.Tail.Supernode.Key, e.Head.Supernode.Key, e)
}

func (s *singletonScheme) UpdateRemovedEdge(st *scheme.LevelState, e *decgraph.Superedge) error {
	return scheme.RemoveEdgeInSuperedge(s.cfg, st, e.Tail.Supernode.Key, e.Head.Supernode.Key, e)
}

func seedLowerD(t *testing.T) *decgraph.DecGraph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("1", "2")
	require.NoError(t, err)

	return decgraph.NaturalTransformation(g)
}

func TestBuild_SingletonScheme(t *testing.T) {
	lowerD := seedLowerD(t)
	s := newSingletonScheme()
	st, err := scheme.Build(s, lowerD, 1)
	require.NoError(t, err)

	assert.Len(t, st.DecGraph.Nodes(), 3)
	// the 1->2 edge crosses two singleton supernodes.
	assert.Len(t, st.DecGraph.Edges(), 1)
	for _, n := range lowerD.Nodes() {
		assert.NotNil(t, n.Supernode)
	}
}

func TestUpdate_SingletonScheme_AddEdge(t *testing.T) {
	lowerD := seedLowerD(t)
	s := newSingletonScheme()
	st, err := scheme.Build(s, lowerD, 1)
	require.NoError(t, err)

	newEdge, err := lowerD.AddEdge("2", "3")
	require.NoError(t, err)

	in := quad.New()
	in.AddEdge(newEdge)

	out, err := scheme.Update(s, st, in)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.NotNil(t, st.DecGraph.Edge("2", "3"))
}
