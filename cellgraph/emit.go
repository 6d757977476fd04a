package cellgraph

import (
	"github.com/katalvlaran/depixel/svgsink"
	"github.com/katalvlaran/depixel/vector2"
)

// EmitPolygonal walks every region cycle (following Next) and adds one
// straight-edged Polygon per region to sink — the "Polygonal" curve
// emission mode.
func (g *Graph) EmitPolygonal(sink *svgsink.Sink) {
	visited := make(map[int]bool, len(g.edges))
	for _, start := range g.Edges() {
		if visited[start.ID] {
			continue
		}
		var points []vector2.Vector
		e := start
		for {
			visited[e.ID] = true
			points = append(points, g.nodes[e.Start].Coordinates())
			if e.Next < 0 {
				break
			}
			e = g.edges[e.Next]
			if e.ID == start.ID {
				sink.AddPolygon(points, start.PixelColour)
				break
			}
		}
	}
}

// EmitSmoothed walks every region cycle and adds one closed
// piecewise-quadratic-Bézier Area per region — the "Smoothed" curve
// emission mode. Nodes of degree ≥ 4 get two straight segments instead
// of a curved one; degree-3 T-junction nodes get two triangular filler
// polygons ahead of the curve that meets them.
func (g *Graph) EmitSmoothed(sink *svgsink.Sink) {
	deadEndAt := make(map[int]int)
	for _, e := range g.Edges() {
		if e.DeadEnd {
			deadEndAt[e.End] = e.ID
		}
	}
	filled := make(map[int]bool, len(deadEndAt))

	visited := make(map[int]bool, len(g.edges))
	for _, start := range g.Edges() {
		if visited[start.ID] {
			continue
		}
		segments, areaStart := g.smoothedRegion(start, visited, deadEndAt, filled, sink)
		if segments != nil {
			sink.AddArea(areaStart, segments, start.PixelColour)
		}
	}
}

func (g *Graph) smoothedRegion(start Edge, visited map[int]bool, deadEndAt map[int]int, filled map[int]bool, sink *svgsink.Sink) ([]svgsink.Segment, vector2.Vector) {
	e := start
	areaStart := g.edgeMid(e)
	var segments []svgsink.Segment

	for {
		visited[e.ID] = true
		if e.Next < 0 {
			return nil, areaStart
		}
		next := g.edges[e.Next]
		endNode := g.nodes[e.End]
		endCoord := endNode.Coordinates()
		nextMid := g.edgeMid(next)

		if len(endNode.Edges) == 3 {
			if d, ok := deadEndAt[e.End]; ok && !filled[e.End] {
				g.emitTJunctionFillers(sink, d)
				filled[e.End] = true
			}
		}

		if len(endNode.Edges) >= 4 {
			segments = append(segments, svgsink.Segment{Control: g.edgeMid(e), End: endCoord})
			segments = append(segments, svgsink.Segment{Control: endCoord, End: nextMid})
		} else {
			segments = append(segments, svgsink.Segment{Control: endCoord, End: nextMid})
		}

		if next.ID == start.ID {
			return segments, areaStart
		}
		e = next
	}
}

// edgeMid returns the midpoint between e's endpoints.
func (g *Graph) edgeMid(e Edge) vector2.Vector {
	return g.nodes[e.Start].Coordinates().Midpoint(g.nodes[e.End].Coordinates())
}

// emitTJunctionFillers adds the two triangular filler polygons for the
// dead-end edge d.
func (g *Graph) emitTJunctionFillers(sink *svgsink.Sink, d int) {
	dead := g.edges[d]
	t1 := g.edges[dead.Next]
	t2 := g.edges[g.edges[t1.Opposite].Next]

	midD := g.edgeMid(dead)
	midT1 := g.edgeMid(t1)
	midT2 := g.edgeMid(t2)
	deadEnd := g.nodes[dead.End].Coordinates()

	apex := deadEnd
	if point, ok := vector2.LineIntersection(midD, deadEnd, midT1, midT2); ok {
		if point.Sub(midD).Length() < deadEnd.Sub(midD).Length() {
			apex = point
		}
	}

	sink.AddPolygon([]vector2.Vector{apex, midT1, midD}, dead.PixelColour)
	sink.AddPolygon([]vector2.Vector{apex, midT2, midD}, g.edges[dead.Opposite].PixelColour)
}
