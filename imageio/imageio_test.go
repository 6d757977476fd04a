package imageio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/katalvlaran/depixel/imageio"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodePNGRoundTrip(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 10, B: 10, A: 255})

	tensor, err := imageio.Decode(encodePNG(t, src))
	require.NoError(t, err)
	require.Len(t, tensor, 2)
	require.Len(t, tensor[0], 2)
	require.Equal(t, [4]uint8{255, 0, 0, 255}, tensor[0][0])
	require.Equal(t, [4]uint8{0, 255, 0, 255}, tensor[0][1])
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := imageio.Decode([]byte("not an image"))
	require.ErrorIs(t, err, imageio.ErrUnsupportedFormat)
}
