package similarity

import (
	"github.com/katalvlaran/depixel/internal/graphutil"
	"github.com/katalvlaran/depixel/raster"
)

// Build constructs the fully-connected Grid for img and runs all three
// planarization passes over it: dissimilar-colour pruning, complete-
// 4-clique diagonal removal, and conflicting-diagonal resolution. The
// returned Grid's NonPlanarMask reports any block the heuristics could
// not resolve (a tie at every heuristic).
func Build(img *raster.Grid, opts ...Option) *Grid {
	cfg := NewConfig(opts...)
	g := NewGrid(img.Height(), img.Width())
	pruneDissimilar(g, img)
	pruneCompleteBlocks(g)
	resolveConflicts(g, img, cfg)
	return g
}

// pruneDissimilar removes every edge between two differently-coloured
// pixels, across all 8 directions.
func pruneDissimilar(g *Grid, img *raster.Grid) {
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			for _, k := range g.NeighborsIn(r, c) {
				if !g.Edge(r, c, k) {
					continue
				}
				dr, dc := NeighborOffset(k)
				if !img.ColourAt(r, c).Equal(img.ColourAt(r+dr, c+dc)) {
					g.SetEdge(r, c, k, false)
				}
			}
		}
	}
}

// pruneCompleteBlocks removes both diagonals of every 2×2 block whose
// four orthogonal edges and both diagonals are all still set — a
// same-colour 4-clique, which would otherwise be counted as crossing
// itself.
func pruneCompleteBlocks(g *Grid) {
	for r := 0; r < g.height-1; r++ {
		for c := 0; c < g.width-1; c++ {
			if g.Edge(r, c, DirE) && g.Edge(r, c, DirS) &&
				g.Edge(r, c+1, DirS) && g.Edge(r+1, c, DirE) &&
				g.Edge(r, c, DirSE) && g.Edge(r, c+1, DirSW) {
				g.SetEdge(r, c, DirSE, false)
				g.SetEdge(r, c+1, DirSW, false)
			}
		}
	}
}

// resolveConflicts walks every remaining 2×2 block in row-major order
// and, wherever both diagonals still cross, applies three prioritized
// heuristics in order, stopping at the first that breaks the tie. A
// block left unresolved by all three remains crossed and shows up in
// NonPlanarMask.
func resolveConflicts(g *Grid, img *raster.Grid, cfg Config) {
	for r := 0; r < g.height-1; r++ {
		for c := 0; c < g.width-1; c++ {
			if !(g.Edge(r, c, DirSE) && g.Edge(r, c+1, DirSW)) {
				continue
			}
			if resolveByChainLength(g, r, c) {
				continue
			}
			if resolveByColorProminence(g, img, r, c, cfg) {
				continue
			}
			resolveByConnectedComponents(g, r, c)
		}
	}
}

// chainLength performs a BFS outward from starts, counting every
// visited node whose current degree is at most 2 and expanding only
// through such nodes — the walk stops at the first higher-degree node
// it reaches, a measure of how long the thin, degree-≤2 curve anchored
// at those nodes runs.
func chainLength(g *Grid, starts [2][2]int) int {
	visited := make(map[[2]int]bool)
	queue := make([][2]int, 0, 8)
	for _, s := range starts {
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
		}
	}
	count := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if g.Degree(node[0], node[1]) <= 2 {
			count++
			for k := 0; k < 8; k++ {
				if !g.Edge(node[0], node[1], k) {
					continue
				}
				dr, dc := NeighborOffset(k)
				next := [2]int{node[0] + dr, node[1] + dc}
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
	}
	return count
}

// resolveByChainLength prefers the diagonal belonging to the longer
// degree-≤2 chain, since a long thin curve is the stronger visual
// signal of intended connectivity.
func resolveByChainLength(g *Grid, r, c int) bool {
	dexter := chainLength(g, [2][2]int{{r, c}, {r + 1, c + 1}})
	sinister := chainLength(g, [2][2]int{{r + 1, c}, {r, c + 1}})
	switch {
	case dexter > sinister:
		g.SetEdge(r, c+1, DirSW, false)
		return true
	case sinister > dexter:
		g.SetEdge(r, c, DirSE, false)
		return true
	default:
		return false
	}
}

// resolveByColorProminence counts, within a square window centred on
// the block, how many pixels share each diagonal endpoint's colour and
// removes the diagonal whose colour is disproportionately common — the
// rarer colour's connectivity is assumed intentional, the common
// colour's incidental.
func resolveByColorProminence(g *Grid, img *raster.Grid, r, c int, cfg Config) bool {
	anchor := (cfg.ColorProminenceWindow - 2) / 2
	top, left := r-anchor, c-anchor
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}
	bottom, right := top+cfg.ColorProminenceWindow, left+cfg.ColorProminenceWindow
	if bottom > img.Height() {
		bottom = img.Height()
	}
	if right > img.Width() {
		right = img.Width()
	}

	dexterColour := img.ColourAt(r, c)
	sinisterColour := img.ColourAt(r, c+1)
	dexterCount, sinisterCount := 0, 0
	for rr := top; rr < bottom; rr++ {
		for cc := left; cc < right; cc++ {
			col := img.ColourAt(rr, cc)
			if col.Equal(dexterColour) {
				dexterCount++
			}
			if col.Equal(sinisterColour) {
				sinisterCount++
			}
		}
	}

	threshold := cfg.ColorProminenceThreshold
	if dexterCount > 0 && sinisterCount/dexterCount >= threshold {
		g.SetEdge(r, c+1, DirSW, false)
		return true
	}
	if sinisterCount > 0 && dexterCount/sinisterCount >= threshold {
		g.SetEdge(r, c, DirSE, false)
		return true
	}
	return false
}

// resolveByConnectedComponents speculatively removes each diagonal in
// turn and counts 8-connected components over the whole lattice,
// preserving whichever diagonal's removal would have produced more
// components — i.e. whichever diagonal is actually holding a region
// together (see DESIGN.md for why this direction of comparison was
// chosen).
func resolveByConnectedComponents(g *Grid, r, c int) {
	withoutDexter := countComponents(g, r, c, DirSE)
	withoutSinister := countComponents(g, r, c+1, DirSW)
	switch {
	case withoutDexter > withoutSinister:
		g.SetEdge(r, c+1, DirSW, false)
	case withoutSinister > withoutDexter:
		g.SetEdge(r, c, DirSE, false)
	}
}

// countComponents counts connected components over g's current edge
// set, pretending the single edge (er,ec,ek) (and its mirror) is absent.
func countComponents(g *Grid, er, ec, ek int) int {
	n := g.height * g.width
	gr := graphutil.New(n)

	dr, dc := NeighborOffset(ek)
	mr, mc, mk := er+dr, ec+dc, Opposite(ek)

	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			for k := 0; k < 4; k++ {
				if !g.edges[r][c][k] {
					continue
				}
				if (r == er && c == ec && k == ek) || (r == mr && c == mc && k == mk) {
					continue
				}
				ddr, ddc := NeighborOffset(k)
				nr, nc := r+ddr, c+ddc
				if !g.InBounds(nr, nc) {
					continue
				}
				_ = gr.AddEdge(r*g.width+c, nr*g.width+nc)
			}
		}
	}
	return gr.ConnectedComponents()
}
