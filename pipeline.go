package depixel

import (
	"fmt"

	"github.com/katalvlaran/depixel/cellgraph"
	"github.com/katalvlaran/depixel/raster"
	"github.com/katalvlaran/depixel/similarity"
	"github.com/katalvlaran/depixel/svgsink"
)

// Config aggregates every tunable parameter of the pipeline, passed as
// an explicit struct to each stage rather than through process-wide
// globals.
type Config struct {
	// ScaleFactor is the SVG sink's unit scale (default 20).
	ScaleFactor int
	// LineWidth is the stroke width for debug lines and Bézier curves
	// (default 2).
	LineWidth int
	// ColorProminenceThreshold is the P3 heuristic 2 ratio threshold
	// (default 4).
	ColorProminenceThreshold int
	// ColorProminenceWindow is the P3 heuristic 2 window side length, in
	// pixels (default 6).
	ColorProminenceWindow int
	// Smooth selects the piecewise-quadratic-Bézier curve-emission mode
	// over the default polygonal mode.
	Smooth bool
}

// DefaultConfig returns the pipeline's default tuning parameters.
func DefaultConfig() Config {
	return Config{
		ScaleFactor:              20,
		LineWidth:                2,
		ColorProminenceThreshold: 4,
		ColorProminenceWindow:    6,
	}
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithScaleFactor overrides the SVG unit scale.
func WithScaleFactor(n int) Option { return func(c *Config) { c.ScaleFactor = n } }

// WithLineWidth overrides the stroke width.
func WithLineWidth(n int) Option { return func(c *Config) { c.LineWidth = n } }

// WithColorProminenceThreshold overrides the P3 heuristic 2 ratio threshold.
func WithColorProminenceThreshold(n int) Option {
	return func(c *Config) { c.ColorProminenceThreshold = n }
}

// WithColorProminenceWindow overrides the P3 heuristic 2 window side length.
func WithColorProminenceWindow(n int) Option {
	return func(c *Config) { c.ColorProminenceWindow = n }
}

// WithSmooth enables the piecewise quadratic-Bézier curve-emission mode.
func WithSmooth(smooth bool) Option { return func(c *Config) { c.Smooth = smooth } }

// NewConfig builds a Config from DefaultConfig plus any Options.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Run executes the full pipeline over a raw RGBA tensor and returns the
// rendered SVG fragment: raster → adjacency graph → cell graph → SVG
// sink.
func Run(source [][][4]uint8, cfg Config) (string, error) {
	img, err := raster.New(source)
	if err != nil {
		return "", fmt.Errorf("depixel: raster construction: %w", err)
	}

	adj := similarity.Build(img,
		similarity.WithColorProminenceThreshold(cfg.ColorProminenceThreshold),
		similarity.WithColorProminenceWindow(cfg.ColorProminenceWindow),
	)

	cells, err := cellgraph.Build(img, adj)
	if err != nil {
		return "", fmt.Errorf("depixel: cell graph construction: %w", err)
	}
	cells.Simplify()
	cells.ResolveTJunctions()

	sink := svgsink.New(
		svgsink.WithScaleFactor(cfg.ScaleFactor),
		svgsink.WithLineWidth(cfg.LineWidth),
	)

	if cfg.Smooth {
		cells.EmitSmoothed(sink)
	} else {
		cells.EmitPolygonal(sink)
	}

	return sink.Render(), nil
}
