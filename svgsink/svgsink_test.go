package svgsink_test

import (
	"testing"

	"github.com/katalvlaran/depixel/colour"
	"github.com/katalvlaran/depixel/svgsink"
	"github.com/katalvlaran/depixel/vector2"
	"github.com/stretchr/testify/require"
)

func TestSquareSerializationRoundTrip(t *testing.T) {
	t.Parallel()

	sink := svgsink.New(svgsink.WithScaleFactor(20))
	sink.AddSquare(vector2.New(2, 3), 1, colour.RGBA(10, 20, 30, 40))

	width, height := sink.Extent()
	require.GreaterOrEqual(t, width, 60.0)
	require.GreaterOrEqual(t, height, 80.0)

	out := sink.Render()
	require.Contains(t, out, `<rect width="20" height="20" fill="rgba(10, 20, 30, 40)" transform="translate(40, 60)"/>`)
}

func TestRenderWrapsSVGInDiv(t *testing.T) {
	t.Parallel()

	sink := svgsink.New()
	sink.AddCircle(vector2.New(1, 1), 1, colour.RGBA(1, 2, 3, 4))
	out := sink.Render()

	require.True(t, hasPrefix(out, `<div style="background-color: transparent; padding: 0px;">`))
	require.Contains(t, out, `shape-rendering="crispEdges"`)
	require.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
}

func TestAreaWithHolesUsesEvenOddFillRule(t *testing.T) {
	t.Parallel()

	outer := svgsink.SubPath{
		Start: vector2.New(0, 0),
		Segments: []svgsink.Segment{
			{Control: vector2.New(2, 0), End: vector2.New(4, 0)},
			{Control: vector2.New(4, 2), End: vector2.New(4, 4)},
		},
	}
	hole := svgsink.SubPath{
		Start:    vector2.New(1, 1),
		Segments: []svgsink.Segment{{Control: vector2.New(2, 1), End: vector2.New(3, 1)}},
	}

	sink := svgsink.New()
	sink.AddAreaWithHoles(outer, []svgsink.SubPath{hole}, colour.RGBA(5, 5, 5, 255))
	out := sink.Render()

	require.Contains(t, out, `fill-rule="evenodd"`)
	require.Contains(t, out, "Z M")
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
