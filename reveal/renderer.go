package reveal

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageRenderer draws onto an in-memory RGBA image. It backs snapshots and
// tests where no window is available.
type ImageRenderer struct {
	Dst        *image.RGBA
	Background color.Color
}

func NewImageRenderer(width, height int) *ImageRenderer {
	return &ImageRenderer{
		Dst:        image.NewRGBA(image.Rect(0, 0, width, height)),
		Background: color.Transparent,
	}
}

func (r *ImageRenderer) Clear() {
	draw.Draw(r.Dst, r.Dst.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
}

func (r *ImageRenderer) FillRect(x, y, w, h int, c color.Color) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(r.Dst.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(r.Dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}
