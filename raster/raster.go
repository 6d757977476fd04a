// Package raster is the indexed pixel grid underlying the depixelization
// pipeline. It consumes an RGBA tensor, assigns every cell a dense,
// stable Pixel identity, and — by default — pads the grid with a
// 1-pixel border in the source's top-left colour so downstream boundary-tracing in cellgraph
// never has to special-case the image edge.
package raster

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/depixel/colour"
)

// ErrEmptyRaster indicates the input RGBA tensor has no rows or no columns.
var ErrEmptyRaster = errors.New("raster: input must have at least one row and one column")

// ErrInvalidShape indicates the input tensor is not rank-3 with a
// trailing dimension of 4 (RGBA).
var ErrInvalidShape = errors.New("raster: input must be an H×W×4 RGBA tensor")

// Pixel carries a dense, non-negative identifier and a colour. Two
// pixels are Equal iff both ids are non-negative and equal.
type Pixel struct {
	ID     int
	Colour colour.Colour
}

// Equal reports whether p and o refer to the same pixel identity.
func (p Pixel) Equal(o Pixel) bool { return p.ID >= 0 && p.ID == o.ID }

// Options configures Grid construction.
type Options struct {
	// Pad adds a 1-pixel border, in the source's top-left colour,
	// around the source image.
	// Defaults to true; use WithPadding(false) to disable for callers
	// that manage their own framing (e.g. unit tests that want to
	// assert on raw pixel positions).
	Pad bool
}

// Option mutates Options during construction.
type Option func(*Options)

// WithPadding toggles the 1-pixel border.
func WithPadding(pad bool) Option {
	return func(o *Options) { o.Pad = pad }
}

func newOptions(opts ...Option) Options {
	o := Options{Pad: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Grid is a 2D array of Pixels of shape (H, W) — (H0+2, W0+2) once
// padded. Indices [1..H0, 1..W0] (inclusive, when padded) hold the
// source image; border rows/columns are synthetic padding pixels that
// share the source's top-left colour.
type Grid struct {
	pixels [][]Pixel
	height int
	width  int
}

// New builds a Grid from an RGBA tensor shaped [height][width][4]uint8.
// Every cell is given a fresh dense id in row-major order, then, unless
// WithPadding(false) is given, the grid is padded by one cell on every
// side with the source's (0,0) colour.
//
// Complexity: O(H×W) time and memory.
func New(source [][][4]uint8, opts ...Option) (*Grid, error) {
	if len(source) == 0 || len(source[0]) == 0 {
		return nil, ErrEmptyRaster
	}
	w := len(source[0])
	for _, row := range source {
		if len(row) != w {
			return nil, fmt.Errorf("raster: ragged input row: %w", ErrInvalidShape)
		}
	}

	o := newOptions(opts...)

	id := 0
	body := make([][]Pixel, len(source))
	for r, row := range source {
		body[r] = make([]Pixel, w)
		for c, px := range row {
			body[r][c] = Pixel{ID: id, Colour: colour.RGBA(px[0], px[1], px[2], px[3])}
			id++
		}
	}

	if !o.Pad {
		return &Grid{pixels: body, height: len(body), width: w}, nil
	}

	border := body[0][0].Colour
	h, paddedW := len(body), w+2
	padded := make([][]Pixel, h+2)
	for r := range padded {
		padded[r] = make([]Pixel, paddedW)
	}
	for r := 0; r < h; r++ {
		copy(padded[r+1][1:w+1], body[r])
	}
	for r := 0; r < h+2; r++ {
		padded[r][0] = Pixel{ID: id, Colour: border}
		id++
		padded[r][paddedW-1] = Pixel{ID: id, Colour: border}
		id++
	}
	for c := 1; c < paddedW-1; c++ {
		padded[0][c] = Pixel{ID: id, Colour: border}
		id++
		padded[h+1][c] = Pixel{ID: id, Colour: border}
		id++
	}

	return &Grid{pixels: padded, height: h + 2, width: paddedW}, nil
}

// Height returns the number of rows, including padding if present.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns, including padding if present.
func (g *Grid) Width() int { return g.width }

// ColourAt returns the colour of the pixel at (r,c).
func (g *Grid) ColourAt(r, c int) colour.Colour { return g.pixels[r][c].Colour }

// PixelAt returns the pixel identity at (r,c).
func (g *Grid) PixelAt(r, c int) Pixel { return g.pixels[r][c] }

// InBounds reports whether (r,c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}
