package quad_test

import (
	"testing"

	"github.com/marco-caputo/multilevel-graphs/decgraph"
	"github.com/marco-caputo/multilevel-graphs/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateQuadruple_DuplicateGuards(t *testing.T) {
	u := quad.New()
	n := decgraph.NewSupernode("a", 0)
	require.NoError(t, u.AddNode(n))
	require.ErrorIs(t, u.AddNode(n), quad.ErrDuplicateNodeAdd)

	require.NoError(t, u.RemoveNode(n))
	require.ErrorIs(t, u.RemoveNode(n), quad.ErrUnknownNodeRemove)
}

func TestUpdateQuadruple_Empty(t *testing.T) {
	u := quad.New()
	assert.True(t, u.Empty())
	u.AddEdge(decgraph.NewSuperedge(decgraph.NewSupernode("a", 0), decgraph.NewSupernode("b", 0), 0))
	assert.False(t, u.Empty())
}

func TestReplay_CanonicalOrder(t *testing.T) {
	u := quad.New()
	a := decgraph.NewSupernode("a", 0)
	b := decgraph.NewSupernode("b", 0)
	e1 := decgraph.NewSuperedge(a, b, 0)
	e2 := decgraph.NewSuperedge(b, a, 0)

	require.NoError(t, u.AddNode(a))
	require.NoError(t, u.RemoveNode(b))
	u.AddEdge(e1)
	u.RemoveEdge(e2)

	var order []string
	err := quad.Replay(u, quad.Handlers{
		OnRemovedEdge: func(e *decgraph.Superedge) error { order = append(order, "E-"); return nil },
		OnRemovedNode: func(n *decgraph.Supernode) error { order = append(order, "V-"); return nil },
		OnAddedNode:   func(n *decgraph.Supernode) error { order = append(order, "V+"); return nil },
		OnAddedEdge:   func(e *decgraph.Superedge) error { order = append(order, "E+"); return nil },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"E-", "V-", "V+", "E+"}, order)
}
