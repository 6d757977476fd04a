package cellgraph_test

import (
	"testing"

	"github.com/katalvlaran/depixel/cellgraph"
	"github.com/katalvlaran/depixel/raster"
	"github.com/katalvlaran/depixel/similarity"
	"github.com/katalvlaran/depixel/svgsink"
	"github.com/stretchr/testify/require"
)

func black() [4]uint8 { return [4]uint8{0, 0, 0, 255} }
func white() [4]uint8 { return [4]uint8{255, 255, 255, 255} }

func buildGraph(t *testing.T, rows [][][4]uint8) (*raster.Grid, *cellgraph.Graph) {
	t.Helper()
	img, err := raster.New(rows, raster.WithPadding(false))
	require.NoError(t, err)
	adj := similarity.Build(img)
	g, err := cellgraph.Build(img, adj)
	require.NoError(t, err)
	return img, g
}

func TestOppositeIsInvolution(t *testing.T) {
	t.Parallel()

	_, g := buildGraph(t, [][][4]uint8{{black(), black()}, {black(), black()}})
	for _, e := range g.Edges() {
		opp := g.Edge(e.Opposite)
		require.Equal(t, e.ID, opp.Opposite)
	}
}

func TestNextLinksShareStartWithEnd(t *testing.T) {
	t.Parallel()

	_, g := buildGraph(t, [][][4]uint8{{black(), white()}, {white(), black()}})
	for _, e := range g.Edges() {
		if e.Next < 0 {
			continue
		}
		next := g.Edge(e.Next)
		require.Equal(t, e.End, next.Start)
		require.Equal(t, e.PixelID, next.PixelID)
	}
}

func TestSimplifyRemovesDegreeTwoNodesAndDensifiesIds(t *testing.T) {
	t.Parallel()

	_, g := buildGraph(t, [][][4]uint8{{black(), black()}, {black(), black()}})
	g.Simplify()

	for _, n := range g.Nodes() {
		require.NotEqual(t, 2, len(n.Edges), "node %d has degree 2 after simplification", n.ID)
	}
	for i, n := range g.Nodes() {
		require.Equal(t, i, n.ID)
	}
	for i, e := range g.Edges() {
		require.Equal(t, i, e.ID)
		require.NotEqual(t, e.PixelColour, g.Edge(e.Opposite).PixelColour)
	}
}

func TestUniformRasterProducesOnlyBlackRegions(t *testing.T) {
	t.Parallel()

	// A uniform-colour source, once padded, is a single colour
	// throughout (the border takes the source's top-left colour), so
	// any emitted region is black; at least one must be emitted.
	img, err := raster.New([][][4]uint8{{black(), black()}, {black(), black()}})
	require.NoError(t, err)
	adj := similarity.Build(img)
	g, err := cellgraph.Build(img, adj)
	require.NoError(t, err)
	g.Simplify()

	sink := svgsink.New()
	g.EmitPolygonal(sink)
	require.GreaterOrEqual(t, sink.Len(), 1)
}

func TestTJunctionFlagsExactlyOneInwardEdge(t *testing.T) {
	t.Parallel()

	// An L-shape of 3 black pixels and one white pixel; every node left
	// with degree 3 after simplification must carry exactly one dead-end
	// inward edge. With only two colours this input leaves no node of
	// degree 3 after simplification, so the loop below finds none.
	_, g := buildGraph(t, [][][4]uint8{
		{black(), black()},
		{black(), white()},
	})
	g.Simplify()
	g.ResolveTJunctions()

	for _, n := range g.Nodes() {
		if len(n.Edges) != 3 {
			continue
		}
		deadEnds := 0
		for _, e := range g.Edges() {
			if e.End == n.ID && e.DeadEnd {
				deadEnds++
			}
		}
		require.Equal(t, 1, deadEnds, "node %d", n.ID)
	}
}

func TestEmitSmoothedProducesAreaPerRegion(t *testing.T) {
	t.Parallel()

	_, g := buildGraph(t, [][][4]uint8{
		{black(), black()},
		{black(), white()},
	})
	g.Simplify()
	g.ResolveTJunctions()

	sink := svgsink.New()
	g.EmitSmoothed(sink)
	require.GreaterOrEqual(t, sink.Len(), 2)
}

func TestBuildRejectsNilAdjacency(t *testing.T) {
	t.Parallel()

	img, err := raster.New([][][4]uint8{{black()}}, raster.WithPadding(false))
	require.NoError(t, err)
	_, err = cellgraph.Build(img, nil)
	require.ErrorIs(t, err, cellgraph.ErrNilAdjacency)
}
