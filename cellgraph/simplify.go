package cellgraph

// Simplify collapses degree-2 nodes, compacts the arena, deletes
// boundary edges whose two sides share a colour, and compacts again,
// leaving ids dense in [0,count). Degree-2 nodes are collapsed only
// before the colour-identical deletion; a node that the deletion leaves
// with exactly two edges is kept.
func (g *Graph) Simplify() {
	g.collapseDegreeTwoNodes()
	g.compact()
	g.deleteColourIdenticalEdges()
	g.compact()
	linkNext(g)
}

// collapseDegreeTwoNodes removes every node with exactly two outgoing
// edges by splicing its two edges (and their twins) into one continuous
// pair.
func (g *Graph) collapseDegreeTwoNodes() {
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.ID < 0 || len(n.Edges) != 2 {
			continue
		}
		e0, e1 := n.Edges[0], n.Edges[1]
		node0, node1 := g.edges[e0].End, g.edges[e1].End

		g.edges[e0].Start = node1
		g.edges[e1].Start = node0
		g.edges[g.edges[e0].Opposite].End = node1
		g.edges[g.edges[e1].Opposite].End = node0
		g.setOpposite(g.edges[e0].Opposite, g.edges[e1].Opposite)

		g.edges[e0].ID = invalid
		g.edges[e1].ID = invalid
		n.Edges = nil
		n.ID = invalid
	}
}

// deleteColourIdenticalEdges invalidates every edge whose twin fronts
// the same colour, since such a boundary carries no region information.
func (g *Graph) deleteColourIdenticalEdges() {
	for i := range g.edges {
		e := &g.edges[i]
		if e.ID < 0 {
			continue
		}
		if e.PixelColour.Equal(g.edges[e.Opposite].PixelColour) {
			e.ID = invalid
			g.edges[e.Opposite].ID = invalid
		}
	}
}

// compact removes invalidated nodes and edges, re-densifies every
// remaining id, and rewrites cross-references accordingly.
func (g *Graph) compact() {
	nodeMap := make(map[int]int, len(g.nodes))
	newNodes := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if n.ID < 0 {
			continue
		}
		nodeMap[n.ID] = len(newNodes)
		n.ID = len(newNodes)
		newNodes = append(newNodes, n)
	}

	edgeMap := make(map[int]int, len(g.edges))
	newEdges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.ID < 0 {
			continue
		}
		edgeMap[e.ID] = len(newEdges)
		newEdges = append(newEdges, e)
	}

	for i := range newEdges {
		e := &newEdges[i]
		e.ID = i
		e.Start = nodeMap[e.Start]
		e.End = nodeMap[e.End]
		e.Opposite = edgeMap[e.Opposite]
		if e.Next >= 0 {
			if mapped, ok := edgeMap[e.Next]; ok {
				e.Next = mapped
			} else {
				e.Next = invalid
			}
		}
	}

	for i := range newNodes {
		n := &newNodes[i]
		kept := n.Edges[:0]
		for _, id := range n.Edges {
			if mapped, ok := edgeMap[id]; ok {
				kept = append(kept, mapped)
			}
		}
		n.Edges = kept
	}

	g.nodes = newNodes
	g.edges = newEdges
}
