// Package cellgraph builds the half-edge dual (Voronoi-style) mesh over
// a planarized adjacency lattice, simplifies it, flags T-junctions, and
// emits curves.
//
// The mesh is realized as an arena: Nodes and Edges are stored in dense
// slices indexed by id; cross-references (start/end/next/opposite) are
// plain ids, never pointers. Invalidation flips an id to -1; compact
// removes invalidated entries and re-densifies every remaining id,
// rewriting references.
package cellgraph

import (
	"errors"

	"github.com/katalvlaran/depixel/colour"
	"github.com/katalvlaran/depixel/vector2"
)

// ErrNilAdjacency is returned when Build is called with a nil adjacency
// grid.
var ErrNilAdjacency = errors.New("cellgraph: adjacency grid is nil")

// invalid is the arena's invalidation sentinel: any identifier set to
// this value is logically deleted.
const invalid = -1

// Node-slot indices within a 2x2 grid box:
//
//	. . 5 . .
//	. 1 . 2 .
//	8 . 0 . 6
//	. 4 . 3 .
//	. . 7 . .
const (
	slotCenter = 0
	slotNW     = 1
	slotNE     = 2
	slotSE     = 3
	slotSW     = 4
	slotN      = 5
	slotE      = 6
	slotS      = 7
	slotW      = 8
)

// slotOffset gives each slot's unit-square offset relative to the box's
// (col,row) position.
var slotOffset = [9]vector2.Vector{
	slotCenter: vector2.New(0.5, 0.5),
	slotNW:     vector2.New(0.25, 0.25),
	slotNE:     vector2.New(0.75, 0.25),
	slotSE:     vector2.New(0.75, 0.75),
	slotSW:     vector2.New(0.25, 0.75),
	slotN:      vector2.New(0.5, 0),
	slotE:      vector2.New(1, 0.5),
	slotS:      vector2.New(0.5, 1),
	slotW:      vector2.New(0, 0.5),
}

// Node is a cell-graph vertex: an id, a base position plus a small fixed
// offset (its coordinate is always their sum), and the ids of its
// outgoing half-edges.
type Node struct {
	ID       int
	Position vector2.Vector
	Offset   vector2.Vector
	Edges    []int
}

// Coordinates returns the node's rendered position.
func (n Node) Coordinates() vector2.Vector { return n.Position.Add(n.Offset) }

// Edge is a half-edge: start/end node ids, the id and colour of the
// pixel it fronts on its left, its next edge around the region it
// bounds (-1 if unset), its mandatory twin, and a dead-end flag set
// during T-junction resolution.
type Edge struct {
	ID          int
	Start       int
	End         int
	PixelID     int
	PixelColour colour.Colour
	Next        int
	Opposite    int
	DeadEnd     bool
}

// Graph is the arena of Nodes and Edges. The zero value is not usable;
// construct with Build.
type Graph struct {
	nodes []Node
	edges []Edge
}

// Nodes returns every live node, in id order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if n.ID >= 0 {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every live edge, in id order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.ID >= 0 {
			out = append(out, e)
		}
	}
	return out
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) Node { return g.nodes[id] }

// Edge returns the edge with the given id.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

func (g *Graph) newNode(position vector2.Vector) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Position: position})
	return id
}

func (g *Graph) newEdge(start, end, pixelID int, pixelColour colour.Colour) int {
	id := len(g.edges)
	g.edges = append(g.edges, Edge{
		ID:          id,
		Start:       start,
		End:         end,
		PixelID:     pixelID,
		PixelColour: pixelColour,
		Next:        invalid,
		Opposite:    invalid,
	})
	g.nodes[start].Edges = append(g.nodes[start].Edges, id)
	return id
}

func (g *Graph) setOpposite(a, b int) {
	g.edges[a].Opposite = b
	g.edges[b].Opposite = a
}
