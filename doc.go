// Package depixel wires raster, similarity, cellgraph, and svgsink into
// the end-to-end depixelization pipeline: turning raster pixel art into
// resolution-independent SVG vector art.
//
// A stage's failure is wrapped with fmt.Errorf("depixel: ...: %w", err)
// so callers can unwrap to the underlying raster.ErrEmptyRaster,
// raster.ErrInvalidShape, or cellgraph.ErrNilAdjacency.
package depixel
