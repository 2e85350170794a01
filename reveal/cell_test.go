package reveal_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limbo/reveal"
)

func TestBuildCells_SkipsTransparentBlocks(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 50; x < 100; x++ {
			src.SetNRGBA(x, y, color.NRGBA{B: 0xff, A: 0xff})
		}
	}

	cells := reveal.BuildCells(src, 100, 100, reveal.Options{CellSize: 10, ArtScale: 1})
	require.Len(t, cells, 5*10)
	for _, c := range cells {
		assert.GreaterOrEqual(t, c.X, 50.0)
		assert.Equal(t, uint8(0xff), c.Color.A, "cells are opaque")
		assert.False(t, c.Erased)
	}
}

func TestBuildCells_SamplesBlockCenter(t *testing.T) {
	// Each 10px block is green with a single magenta pixel at its top-left.
	src := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			c := color.NRGBA{G: 0xff, A: 0xff}
			if x%10 == 0 && y%10 == 0 {
				c = color.NRGBA{R: 0xff, B: 0xff, A: 0xff}
			}
			src.SetNRGBA(x, y, c)
		}
	}

	for _, c := range reveal.BuildCells(src, 100, 100, reveal.Options{CellSize: 10, ArtScale: 1}) {
		assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, c.Color, "cell at (%v, %v)", c.X, c.Y)
	}
}

func TestBuildCells_CentersArtSquare(t *testing.T) {
	src := solid(32, 32, red)

	cells := reveal.BuildCells(src, 400, 200, reveal.Options{CellSize: 12})
	require.NotEmpty(t, cells)

	// 0.9 * 200 = 180px square, offset (110, 10).
	minX, minY, maxX, maxY := cells[0].X, cells[0].Y, cells[0].X, cells[0].Y
	for _, c := range cells {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
		assert.Equal(t, 12.0, c.Size)
	}
	assert.Equal(t, 110.0, minX)
	assert.Equal(t, 10.0, minY)
	assert.Equal(t, 110.0+12*14, maxX)
	assert.Equal(t, 10.0+12*14, maxY)
	assert.Len(t, cells, 15*15)
}

func TestBuildCells_Degenerate(t *testing.T) {
	assert.Nil(t, reveal.BuildCells(nil, 100, 100, reveal.Options{}))
	assert.Nil(t, reveal.BuildCells(solid(4, 4, red), 0, 100, reveal.Options{}))
	assert.Nil(t, reveal.BuildCells(solid(4, 4, red), 1, 1, reveal.Options{}))
}
