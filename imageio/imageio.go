// Package imageio decodes pixel art source files into the RGBA tensor
// shape raster.New expects. Format sniffing and decoding live here so
// raster, similarity, and cellgraph never see anything but an
// in-memory tensor.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat indicates the input bytes did not match any
// decoder this package registers.
var ErrUnsupportedFormat = errors.New("imageio: unrecognized image format")

type decoder func(io.Reader) (image.Image, error)

// decoders is tried in order against a fresh copy of the input bytes,
// since image.Image decoders consume their reader on failure and must
// not be retried against a partially-read stream.
var decoders = []struct {
	name string
	fn   decoder
}{
	{"png", png.Decode},
	{"gif", gif.Decode},
	{"bmp", bmp.Decode},
	{"tiff", tiff.Decode},
	{"qoi", qoi.Decode},
}

// Decode sniffs and decodes raw image bytes into the [][][4]uint8 tensor
// raster.New consumes, in row-major (y, x, channel) order.
func Decode(data []byte) ([][][4]uint8, error) {
	var lastErr error
	for _, d := range decoders {
		img, err := d.fn(bytes.NewReader(data))
		if err != nil {
			lastErr = err
			continue
		}
		return toTensor(img), nil
	}
	return nil, fmt.Errorf("imageio: tried %d decoders, last error %v: %w", len(decoders), lastErr, ErrUnsupportedFormat)
}

// toTensor flattens any image.Image into an 8-bit-per-channel RGBA
// tensor, normalizing away each decoder's native colour model.
func toTensor(img image.Image) [][][4]uint8 {
	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	out := make([][][4]uint8, h)
	for y := 0; y < h; y++ {
		out[y] = make([][4]uint8, w)
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out[y][x] = [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
		}
	}
	return out
}
