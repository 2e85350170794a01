// Package mask rasterizes the protected word drawn over the reveal canvas.
//
// A Mask answers, per canvas pixel, whether the glyph coverage at that point
// is above a threshold. Cells anchored on such a pixel must never be erased.
package mask

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultText      = "LIMBO"
	DefaultScale     = 0.25
	DefaultThreshold = 128
)

var ErrNoFont = errors.New("mask: no font")

// Builder renders Text at Scale × min(width, height) pixels, centered.
type Builder struct {
	Text      string
	Scale     float64
	Threshold uint8
	Font      *opentype.Font
}

// NewBuilder returns a Builder for text using Go Bold and the default
// proportions.
func NewBuilder(text string) (*Builder, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("mask: parse go bold: %w", err)
	}
	if text == "" {
		text = DefaultText
	}
	return &Builder{
		Text:      text,
		Scale:     DefaultScale,
		Threshold: DefaultThreshold,
		Font:      f,
	}, nil
}

// Build renders the mask for a canvas of the given size.
func (b *Builder) Build(width, height int) (*Mask, error) {
	if b.Font == nil {
		return nil, ErrNoFont
	}
	if width <= 0 || height <= 0 {
		return &Mask{threshold: b.Threshold}, nil
	}

	size := b.Scale * float64(min(width, height))
	face, err := opentype.NewFace(b.Font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("mask: face at %.1fpx: %w", size, err)
	}
	defer face.Close()

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{Dst: dst, Src: image.Opaque, Face: face}

	// Center horizontally on the advance, vertically on the cap height so the
	// capitals straddle the middle row.
	capHeight := face.Metrics().CapHeight
	if capHeight <= 0 {
		capHeight = face.Metrics().Ascent * 7 / 10
	}
	d.Dot = fixed.Point26_6{
		X: (fixed.I(width) - d.MeasureString(b.Text)) / 2,
		Y: (fixed.I(height) + capHeight) / 2,
	}
	d.DrawString(b.Text)

	return &Mask{
		width:     width,
		height:    height,
		stride:    dst.Stride,
		coverage:  dst.Pix,
		threshold: b.Threshold,
	}, nil
}

// Mask is a dense per-pixel protection field in canvas coordinates.
type Mask struct {
	width, height int
	stride        int
	coverage      []uint8
	threshold     uint8
}

func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Protected reports whether the pixel containing (x, y) belongs to the text.
// Points outside the canvas are never protected.
func (m *Mask) Protected(x, y float64) bool {
	if m == nil || math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	px, py := int(math.Floor(x)), int(math.Floor(y))
	if px < 0 || px >= m.width || py < 0 || py >= m.height {
		return false
	}
	return m.coverage[py*m.stride+px] > m.threshold
}

// Count returns the number of protected pixels.
func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.height; y++ {
		row := m.coverage[y*m.stride : y*m.stride+m.width]
		for _, c := range row {
			if c > m.threshold {
				n++
			}
		}
	}
	return n
}
