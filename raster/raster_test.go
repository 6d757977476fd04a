package raster_test

import (
	"testing"

	"github.com/katalvlaran/depixel/colour"
	"github.com/katalvlaran/depixel/raster"
	"github.com/stretchr/testify/require"
)

func solid2x2(c [4]uint8) [][][4]uint8 {
	return [][][4]uint8{
		{c, c},
		{c, c},
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	t.Parallel()

	_, err := raster.New(nil)
	require.ErrorIs(t, err, raster.ErrEmptyRaster)

	_, err = raster.New([][][4]uint8{{}})
	require.ErrorIs(t, err, raster.ErrEmptyRaster)
}

func TestNewRejectsRagged(t *testing.T) {
	t.Parallel()

	_, err := raster.New([][][4]uint8{
		{{0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}},
	})
	require.ErrorIs(t, err, raster.ErrInvalidShape)
}

func TestPaddingShapeAndBorder(t *testing.T) {
	t.Parallel()

	black := [4]uint8{0, 0, 0, 255}
	g, err := raster.New(solid2x2(black))
	require.NoError(t, err)

	require.Equal(t, 4, g.Height())
	require.Equal(t, 4, g.Width())

	// Interior pixels keep the source colour.
	for r := 1; r <= 2; r++ {
		for c := 1; c <= 2; c++ {
			require.True(t, g.ColourAt(r, c).Equal(colour.RGBA(0, 0, 0, 255)))
		}
	}

	// 1x1 raster -> 3x3 padded, transparent border on every side of the
	// sole original pixel.
	transparent := [4]uint8{0, 0, 0, 0}
	g2, err := raster.New([][][4]uint8{{transparent}})
	require.NoError(t, err)
	require.Equal(t, 3, g2.Height())
	require.Equal(t, 3, g2.Width())
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == 1 && c == 1 {
				continue
			}
			require.True(t, g2.ColourAt(r, c).Equal(colour.Transparent))
		}
	}
}

func TestPixelIDsAreDenseAndUnique(t *testing.T) {
	t.Parallel()

	g, err := raster.New(solid2x2([4]uint8{1, 2, 3, 4}))
	require.NoError(t, err)

	seen := make(map[int]bool)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			id := g.PixelAt(r, c).ID
			require.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
	}
	require.Len(t, seen, g.Height()*g.Width())
}

func TestWithoutPadding(t *testing.T) {
	t.Parallel()

	g, err := raster.New(solid2x2([4]uint8{9, 9, 9, 9}), raster.WithPadding(false))
	require.NoError(t, err)
	require.Equal(t, 2, g.Height())
	require.Equal(t, 2, g.Width())
}

func TestPixelEquality(t *testing.T) {
	t.Parallel()

	a := raster.Pixel{ID: 3, Colour: colour.RGBA(1, 1, 1, 1)}
	b := raster.Pixel{ID: 3, Colour: colour.RGBA(2, 2, 2, 2)}
	c := raster.Pixel{ID: -1, Colour: colour.RGBA(1, 1, 1, 1)}

	require.True(t, a.Equal(b)) // equality is id-only
	require.False(t, a.Equal(c))
}
