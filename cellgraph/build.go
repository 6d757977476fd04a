package cellgraph

import (
	"github.com/katalvlaran/depixel/raster"
	"github.com/katalvlaran/depixel/similarity"
	"github.com/katalvlaran/depixel/vector2"
)

// Build constructs the dual mesh over a planarized adjacency grid: one
// 2x2-block "grid box" of up to 9 shared node slots per box, wired with
// one of three half-edge templates chosen by the box's diagonal state,
// then next-linked into region cycles.
//
// A block the adjacency grid's non-planar mask still flags (both
// diagonals set, unresolved) is treated as if it had no diagonal at all.
func Build(img *raster.Grid, adj *similarity.Grid) (*Graph, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	boxRows, boxCols := adj.Height()-1, adj.Width()-1
	g := &Graph{}
	boxNodes := make([][][9]int, boxRows)
	for r := range boxNodes {
		boxNodes[r] = make([][9]int, boxCols)
	}

	for row := 0; row < boxRows; row++ {
		for col := 0; col < boxCols; col++ {
			for slot := 0; slot < 9; slot++ {
				switch {
				case slot == slotN && row > 0:
					boxNodes[row][col][slot] = boxNodes[row-1][col][slotS]
				case slot == slotW && col > 0:
					boxNodes[row][col][slot] = boxNodes[row][col-1][slotE]
				default:
					off := slotOffset[slot]
					pos := vector2.New(float64(col)+off.X, float64(row)+off.Y)
					boxNodes[row][col][slot] = g.newNode(pos)
				}
			}
		}
	}

	for row := 0; row < boxRows; row++ {
		for col := 0; col < boxCols; col++ {
			box := boxNodes[row][col]
			// A box is unresolved (both diagonals still set) only when
			// its own diagonals conflict — checked directly rather than
			// via NonPlanarMask, whose per-cell flags also mark the
			// other three corners of a neighbouring unresolved block.
			dexterRaw := adj.Edge(row, col, similarity.DirSE)
			sinisterRaw := adj.Edge(row+1, col, similarity.DirNE)
			unresolved := dexterRaw && sinisterRaw
			dexter := dexterRaw && !unresolved
			sinister := sinisterRaw && !unresolved
			switch {
			case dexter:
				wireDexterBox(g, box, img, row, col)
			case sinister:
				wireSinisterBox(g, box, img, row, col)
			default:
				wireNoDiagonalBox(g, box, img, row, col)
			}
		}
	}

	linkNext(g)
	return g, nil
}

// wireDexterBox wires the "\" diagonal template: 10 half-edges around
// the two triangles the dexter diagonal carves.
func wireDexterBox(g *Graph, box [9]int, img *raster.Grid, row, col int) {
	tl, tr := img.PixelAt(row, col), img.PixelAt(row, col+1)
	bl, br := img.PixelAt(row+1, col), img.PixelAt(row+1, col+1)

	e52 := g.newEdge(box[slotN], box[slotNE], tl.ID, tl.Colour)
	e24 := g.newEdge(box[slotNE], box[slotSW], tl.ID, tl.Colour)
	e48 := g.newEdge(box[slotSW], box[slotW], tl.ID, tl.Colour)
	e62 := g.newEdge(box[slotE], box[slotNE], tr.ID, tr.Colour)
	e25 := g.newEdge(box[slotNE], box[slotN], tr.ID, tr.Colour)
	e84 := g.newEdge(box[slotW], box[slotSW], bl.ID, bl.Colour)
	e47 := g.newEdge(box[slotSW], box[slotS], bl.ID, bl.Colour)
	e74 := g.newEdge(box[slotS], box[slotSW], br.ID, br.Colour)
	e42 := g.newEdge(box[slotSW], box[slotNE], br.ID, br.Colour)
	e26 := g.newEdge(box[slotNE], box[slotE], br.ID, br.Colour)

	g.setOpposite(e52, e25)
	g.setOpposite(e24, e42)
	g.setOpposite(e48, e84)
	g.setOpposite(e62, e26)
	g.setOpposite(e47, e74)
}

// wireSinisterBox wires the "/" diagonal template: the mirror of the
// dexter template using slots 1 and 3 in place of its slots 2 and 4.
func wireSinisterBox(g *Graph, box [9]int, img *raster.Grid, row, col int) {
	tl, tr := img.PixelAt(row, col), img.PixelAt(row, col+1)
	bl, br := img.PixelAt(row+1, col), img.PixelAt(row+1, col+1)

	e51 := g.newEdge(box[slotN], box[slotNW], tl.ID, tl.Colour)
	e18 := g.newEdge(box[slotNW], box[slotW], tl.ID, tl.Colour)
	e63 := g.newEdge(box[slotE], box[slotSE], tr.ID, tr.Colour)
	e31 := g.newEdge(box[slotSE], box[slotNW], tr.ID, tr.Colour)
	e15 := g.newEdge(box[slotNW], box[slotN], tr.ID, tr.Colour)
	e81 := g.newEdge(box[slotW], box[slotNW], bl.ID, bl.Colour)
	e13 := g.newEdge(box[slotNW], box[slotSE], bl.ID, bl.Colour)
	e37 := g.newEdge(box[slotSE], box[slotS], bl.ID, bl.Colour)
	e73 := g.newEdge(box[slotS], box[slotSE], br.ID, br.Colour)
	e36 := g.newEdge(box[slotSE], box[slotE], br.ID, br.Colour)

	g.setOpposite(e51, e15)
	g.setOpposite(e18, e81)
	g.setOpposite(e63, e36)
	g.setOpposite(e31, e13)
	g.setOpposite(e37, e73)
}

// wireNoDiagonalBox wires the undivided template: four twin pairs
// through the central slot.
func wireNoDiagonalBox(g *Graph, box [9]int, img *raster.Grid, row, col int) {
	tl, tr := img.PixelAt(row, col), img.PixelAt(row, col+1)
	bl, br := img.PixelAt(row+1, col), img.PixelAt(row+1, col+1)

	e50 := g.newEdge(box[slotN], box[slotCenter], tl.ID, tl.Colour)
	e08 := g.newEdge(box[slotCenter], box[slotW], tl.ID, tl.Colour)
	e60 := g.newEdge(box[slotE], box[slotCenter], tr.ID, tr.Colour)
	e05 := g.newEdge(box[slotCenter], box[slotN], tr.ID, tr.Colour)
	e80 := g.newEdge(box[slotW], box[slotCenter], bl.ID, bl.Colour)
	e07 := g.newEdge(box[slotCenter], box[slotS], bl.ID, bl.Colour)
	e70 := g.newEdge(box[slotS], box[slotCenter], br.ID, br.Colour)
	e06 := g.newEdge(box[slotCenter], box[slotE], br.ID, br.Colour)

	g.setOpposite(e50, e05)
	g.setOpposite(e80, e08)
	g.setOpposite(e60, e06)
	g.setOpposite(e70, e07)
}

// linkNext sets, for every edge e, e.Next to the first outgoing edge at
// e.End that fronts the same pixel — coupling each region's boundary
// into a traversable cycle.
func linkNext(g *Graph) {
	for i := range g.edges {
		e := &g.edges[i]
		for _, candidate := range g.nodes[e.End].Edges {
			if g.edges[candidate].PixelID == e.PixelID {
				e.Next = candidate
				break
			}
		}
	}
}
