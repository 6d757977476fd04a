package svgsink

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/depixel/colour"
	"github.com/katalvlaran/depixel/vector2"
)

// Square is an axis-aligned filled square.
type Square struct {
	Position vector2.Vector
	Side     float64
	Colour   colour.Colour
}

func (s Square) bounds(scale float64) vector2.Vector {
	return vector2.New((s.Position.X+s.Side)*scale, (s.Position.Y+s.Side)*scale)
}

func (s Square) serialize(scale float64, _ int) string {
	side := s.Side * scale
	return fmt.Sprintf(`<rect width="%s" height="%s" fill="%s" transform="translate(%s, %s)"/>`,
		num(side), num(side), rgba(s.Colour), num(s.Position.X*scale), num(s.Position.Y*scale))
}

// Line is a straight stroked segment, used for debug overlays.
type Line struct {
	From, To vector2.Vector
	Colour   colour.Colour
}

func (l Line) bounds(scale float64) vector2.Vector {
	return vector2.New(math.Max(l.From.X, l.To.X)*scale, math.Max(l.From.Y, l.To.Y)*scale)
}

func (l Line) serialize(scale float64, lineWidth int) string {
	return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%d"/>`,
		num(l.From.X*scale), num(l.From.Y*scale), num(l.To.X*scale), num(l.To.Y*scale), rgba(l.Colour), lineWidth)
}

// Circle is a filled disc, used for debug node markers.
type Circle struct {
	Center vector2.Vector
	Radius float64
	Colour colour.Colour
}

func (c Circle) bounds(scale float64) vector2.Vector {
	return vector2.New((c.Center.X+c.Radius)*scale, (c.Center.Y+c.Radius)*scale)
}

func (c Circle) serialize(scale float64, _ int) string {
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
		num(c.Center.X*scale), num(c.Center.Y*scale), num(c.Radius*scale), rgba(c.Colour))
}

// Polygon is a filled closed polygon over straight-line vertices —
// the "Polygonal" curve-emission mode.
type Polygon struct {
	Points []vector2.Vector
	Colour colour.Colour
}

func (p Polygon) bounds(scale float64) vector2.Vector {
	var maxX, maxY float64
	for _, pt := range p.Points {
		maxX = math.Max(maxX, pt.X*scale)
		maxY = math.Max(maxY, pt.Y*scale)
	}
	return vector2.New(maxX, maxY)
}

func (p Polygon) serialize(scale float64, _ int) string {
	pts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = fmt.Sprintf("%s,%s", num(pt.X*scale), num(pt.Y*scale))
	}
	return fmt.Sprintf(`<polygon points="%s" fill="%s"/>`, strings.Join(pts, " "), rgba(p.Colour))
}

// Bezier is a single stroked quadratic Bézier arc.
type Bezier struct {
	Start, Control, End vector2.Vector
	Colour              colour.Colour
}

func (b Bezier) bounds(scale float64) vector2.Vector {
	maxX := math.Max(b.Start.X, math.Max(b.Control.X, b.End.X)) * scale
	maxY := math.Max(b.Start.Y, math.Max(b.Control.Y, b.End.Y)) * scale
	return vector2.New(maxX, maxY)
}

func (b Bezier) serialize(scale float64, lineWidth int) string {
	return fmt.Sprintf(`<path d="M %s,%s Q %s,%s %s,%s" fill="none" stroke="%s" stroke-width="%d"/>`,
		num(b.Start.X*scale), num(b.Start.Y*scale),
		num(b.Control.X*scale), num(b.Control.Y*scale),
		num(b.End.X*scale), num(b.End.Y*scale),
		rgba(b.Colour), lineWidth)
}

// Segment is one quadratic arc within a piecewise-Bézier closed area:
// the previous segment's (or the area's start) endpoint is its implicit
// starting point.
type Segment struct {
	Control vector2.Vector
	End     vector2.Vector
}

func pathData(start vector2.Vector, segs []Segment, scale float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M %s,%s", num(start.X*scale), num(start.Y*scale))
	for _, s := range segs {
		fmt.Fprintf(&b, " Q %s,%s %s,%s", num(s.Control.X*scale), num(s.Control.Y*scale), num(s.End.X*scale), num(s.End.Y*scale))
	}
	b.WriteString(" Z")
	return b.String()
}

func pathBounds(start vector2.Vector, segs []Segment, scale float64) (maxX, maxY float64) {
	maxX, maxY = start.X*scale, start.Y*scale
	for _, s := range segs {
		maxX = math.Max(maxX, math.Max(s.Control.X, s.End.X)*scale)
		maxY = math.Max(maxY, math.Max(s.Control.Y, s.End.Y)*scale)
	}
	return maxX, maxY
}

// Area is a closed piecewise quadratic-Bézier region — the "Smoothed"
// curve-emission mode's output for one region.
type Area struct {
	Start    vector2.Vector
	Segments []Segment
	Colour   colour.Colour
}

func (a Area) bounds(scale float64) vector2.Vector {
	x, y := pathBounds(a.Start, a.Segments, scale)
	return vector2.New(x, y)
}

func (a Area) serialize(scale float64, _ int) string {
	return fmt.Sprintf(`<path d="%s" fill="%s"/>`, pathData(a.Start, a.Segments, scale), rgba(a.Colour))
}

// SubPath is one closed loop within an AreaWithHoles: either the outer
// boundary or one hole.
type SubPath struct {
	Start    vector2.Vector
	Segments []Segment
}

// AreaWithHoles is a filled region whose outer boundary has one or more
// holes cut from it, rendered as a single path with the even-odd fill
// rule.
type AreaWithHoles struct {
	Outer  SubPath
	Holes  []SubPath
	Colour colour.Colour
}

func (a AreaWithHoles) bounds(scale float64) vector2.Vector {
	maxX, maxY := pathBounds(a.Outer.Start, a.Outer.Segments, scale)
	for _, h := range a.Holes {
		x, y := pathBounds(h.Start, h.Segments, scale)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	return vector2.New(maxX, maxY)
}

func (a AreaWithHoles) serialize(scale float64, _ int) string {
	var b strings.Builder
	b.WriteString(pathData(a.Outer.Start, a.Outer.Segments, scale))
	for _, h := range a.Holes {
		b.WriteString(" ")
		b.WriteString(pathData(h.Start, h.Segments, scale))
	}
	return fmt.Sprintf(`<path d="%s" fill="%s" fill-rule="evenodd"/>`, b.String(), rgba(a.Colour))
}

// num formats a scaled coordinate so integral values print without a
// decimal point.
func num(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
