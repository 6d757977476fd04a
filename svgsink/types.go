// Package svgsink accumulates primitive geometric elements, tracks a
// scale factor, computes the canvas extent, and serializes everything
// to an SVG fragment.
//
// Elements serialize themselves to strings via fmt.Sprintf; see
// DESIGN.md for why this package builds markup directly rather than
// through a dependency.
package svgsink

import (
	"fmt"

	"github.com/katalvlaran/depixel/colour"
	"github.com/katalvlaran/depixel/vector2"
)

// Element is any primitive the sink can hold: it knows its own scaled
// bounding extent and how to serialize itself.
type Element interface {
	bounds(scale float64) vector2.Vector
	serialize(scale float64, lineWidth int) string
}

// Config tunes rendering. Zero-value Config is not valid; use
// DefaultConfig or NewConfig with Options.
type Config struct {
	// ScaleFactor multiplies every world-unit coordinate at serialization
	// time (default 20).
	ScaleFactor int
	// LineWidth is the stroke width for debug lines and Bézier curves
	// (default 2).
	LineWidth int
}

// DefaultConfig returns the package's default scale and line width.
func DefaultConfig() Config {
	return Config{ScaleFactor: 20, LineWidth: 2}
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithScaleFactor overrides the SVG unit scale.
func WithScaleFactor(n int) Option { return func(c *Config) { c.ScaleFactor = n } }

// WithLineWidth overrides the stroke width.
func WithLineWidth(n int) Option { return func(c *Config) { c.LineWidth = n } }

// NewConfig builds a Config from DefaultConfig plus any Options.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rgba renders c as decimal channel values wrapped in the CSS rgba()
// function.
func rgba(c colour.Colour) string {
	return fmt.Sprintf("rgba%s", c.String())
}
