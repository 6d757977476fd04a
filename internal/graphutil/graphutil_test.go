package graphutil_test

import (
	"testing"

	"github.com/katalvlaran/depixel/internal/graphutil"
	"github.com/stretchr/testify/require"
)

func TestConnectedComponentsSingleton(t *testing.T) {
	t.Parallel()

	g := graphutil.New(4)
	require.Equal(t, 4, g.ConnectedComponents())
}

func TestConnectedComponentsChain(t *testing.T) {
	t.Parallel()

	g := graphutil.New(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.Equal(t, 2, g.ConnectedComponents())

	require.NoError(t, g.AddEdge(2, 3))
	require.Equal(t, 1, g.ConnectedComponents())
}

func TestAddEdgeUnknownVertex(t *testing.T) {
	t.Parallel()

	g := graphutil.New(2)
	require.ErrorIs(t, g.AddEdge(0, 5), graphutil.ErrVertexNotFound)
}
