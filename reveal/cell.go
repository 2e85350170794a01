package reveal

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Cell is one grid-aligned colored square sampled from the source image.
// (X, Y) is both its top-left corner and the anchor used for proximity and
// protection tests.
type Cell struct {
	X, Y   float64
	Size   float64
	Color  color.RGBA
	Erased bool
}

// visibleAlpha is the minimum sampled alpha for a block to produce a cell.
const visibleAlpha = 50

// BuildCells scales src into a centered square of side opts.ArtScale times
// the shorter canvas side and samples it at the center of every
// opts.CellSize block.
func BuildCells(src image.Image, width, height int, opts Options) []Cell {
	opts = opts.withDefaults()
	if src == nil || width <= 0 || height <= 0 {
		return nil
	}
	artSize := int(float64(min(width, height)) * opts.ArtScale)
	if artSize <= 0 {
		return nil
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, artSize, artSize))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	offX := float64(width-artSize) / 2
	offY := float64(height-artSize) / 2
	half := opts.CellSize / 2

	cells := make([]Cell, 0, (artSize/opts.CellSize+1)*(artSize/opts.CellSize+1))
	for y := 0; y < artSize; y += opts.CellSize {
		sy := min(y+half, artSize-1)
		for x := 0; x < artSize; x += opts.CellSize {
			sx := min(x+half, artSize-1)
			c := scaled.NRGBAAt(sx, sy)
			if c.A <= visibleAlpha {
				continue
			}
			cells = append(cells, Cell{
				X:     offX + float64(x),
				Y:     offY + float64(y),
				Size:  float64(opts.CellSize),
				Color: color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff},
			})
		}
	}
	return cells
}
