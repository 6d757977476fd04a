package svgsink

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/depixel/colour"
	"github.com/katalvlaran/depixel/vector2"
)

// Sink accumulates Elements and serializes them to an SVG fragment. The
// zero value is not usable; construct with New.
type Sink struct {
	cfg      Config
	elements []Element
}

// New returns an empty Sink configured by opts.
func New(opts ...Option) *Sink {
	return &Sink{cfg: NewConfig(opts...)}
}

// Clear removes every accumulated element, preserving configuration.
func (s *Sink) Clear() { s.elements = nil }

// AddSquare adds a filled square at position with the given side length.
func (s *Sink) AddSquare(position vector2.Vector, side float64, c colour.Colour) {
	s.elements = append(s.elements, Square{Position: position, Side: side, Colour: c})
}

// AddLine adds a stroked segment between from and to.
func (s *Sink) AddLine(from, to vector2.Vector, c colour.Colour) {
	s.elements = append(s.elements, Line{From: from, To: to, Colour: c})
}

// AddCircle adds a filled disc.
func (s *Sink) AddCircle(center vector2.Vector, radius float64, c colour.Colour) {
	s.elements = append(s.elements, Circle{Center: center, Radius: radius, Colour: c})
}

// AddPolygon adds a filled closed polygon over points.
func (s *Sink) AddPolygon(points []vector2.Vector, c colour.Colour) {
	s.elements = append(s.elements, Polygon{Points: points, Colour: c})
}

// AddBezier adds a single stroked quadratic Bézier arc.
func (s *Sink) AddBezier(start, control, end vector2.Vector, c colour.Colour) {
	s.elements = append(s.elements, Bezier{Start: start, Control: control, End: end, Colour: c})
}

// AddArea adds a closed piecewise quadratic-Bézier region.
func (s *Sink) AddArea(start vector2.Vector, segments []Segment, c colour.Colour) {
	s.elements = append(s.elements, Area{Start: start, Segments: segments, Colour: c})
}

// AddAreaWithHoles adds a filled region with one or more holes cut out.
func (s *Sink) AddAreaWithHoles(outer SubPath, holes []SubPath, c colour.Colour) {
	s.elements = append(s.elements, AreaWithHoles{Outer: outer, Holes: holes, Colour: c})
}

// Len returns the number of accumulated elements.
func (s *Sink) Len() int { return len(s.elements) }

// extent returns the canvas width and height: the max over every
// element's scaled bound box.
func (s *Sink) extent() (width, height float64) {
	for _, e := range s.elements {
		b := e.bounds(float64(s.cfg.ScaleFactor))
		if b.X > width {
			width = b.X
		}
		if b.Y > height {
			height = b.Y
		}
	}
	return width, height
}

// Extent exposes the current canvas extent in scaled units, for callers
// that want it without serializing.
func (s *Sink) Extent() (width, height float64) { return s.extent() }

// Render serializes every accumulated element into a <div>-wrapped
// <svg> fragment.
func (s *Sink) Render() string {
	width, height := s.extent()

	var body strings.Builder
	for _, e := range s.elements {
		body.WriteString(e.serialize(float64(s.cfg.ScaleFactor), s.cfg.LineWidth))
		body.WriteString("\n")
	}

	svg := fmt.Sprintf(
		`<svg width="%s" height="%s" shape-rendering="crispEdges" xmlns="http://www.w3.org/2000/svg">`+"\n%s</svg>",
		num(width), num(height), body.String())

	return fmt.Sprintf(`<div style="background-color: transparent; padding: 0px;">%s</div>`, svg)
}
