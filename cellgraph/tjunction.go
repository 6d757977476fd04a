package cellgraph

import "github.com/katalvlaran/depixel/vector2"

// ResolveTJunctions flags, at every degree-3 node, the single inward
// edge most likely to be the interrupted stroke of a T: the two edges
// spanning the widest angular gap are treated as the continuous stroke,
// and the third is marked a dead end on its opposite side.
func (g *Graph) ResolveTJunctions() {
	for _, n := range g.Nodes() {
		if len(n.Edges) != 3 {
			continue
		}
		origin := n.Coordinates()

		var angles [3]float64
		for i, eid := range n.Edges {
			end := g.nodes[g.edges[eid].End]
			angles[i] = end.Coordinates().Sub(origin).Angle()
		}

		bestI, bestJ, bestGap := 0, 1, -1.0
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				gap := vector2.AngularGap(angles[i], angles[j])
				if gap > bestGap {
					bestI, bestJ, bestGap = i, j, gap
				}
			}
		}

		third := 3 - bestI - bestJ
		deadEdge := n.Edges[third]
		g.edges[g.edges[deadEdge].Opposite].DeadEnd = true
	}
}
