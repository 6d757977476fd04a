// Package colour is the opaque RGBA value type used to tag pixels,
// cell-graph edges, and SVG fill attributes: four 8-bit channels, exact
// equality, and an array-style cast.
package colour

import "fmt"

// Colour is an RGBA value with 8-bit channels. It is comparable with ==,
// but Equal is provided for readability at call sites that compare pixel
// or region colours for an exact match.
type Colour struct {
	R, G, B, A uint8
}

// RGBA constructs a Colour from four channel values.
func RGBA(r, g, b, a uint8) Colour { return Colour{R: r, G: g, B: b, A: a} }

// Transparent is the zero-value colour (0,0,0,0), used for padding pixels
// whose source is itself transparent.
var Transparent = Colour{}

// Equal reports whether c and o have identical channels.
func (c Colour) Equal(o Colour) bool { return c == o }

// Array returns the colour as an [4]uint8 in R,G,B,A order.
func (c Colour) Array() [4]uint8 { return [4]uint8{c.R, c.G, c.B, c.A} }

// String renders the colour as "(r, g, b, a)", the form used inside
// SVG rgba(...) attributes.
func (c Colour) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}
