// Package reveal implements the pixel-eraser canvas: an artwork broken into
// colored cells that disappear under the pointer, except where a protection
// mask covers them.
//
// The canvas does no scheduling of its own. The host calls Frame (or Step
// and Draw separately) once per display tick and forwards input events.
package reveal

import (
	"image"
	"image/color"
	"math"

	"github.com/sirupsen/logrus"
)

const (
	DefaultCellSize    = 12
	DefaultEraseRadius = 60
	DefaultArtScale    = 0.9
)

// Options tunes cell sampling and erasing. Zero fields take the defaults.
type Options struct {
	CellSize    int
	EraseRadius float64
	ArtScale    float64
	Logger      logrus.FieldLogger
}

// Scaled returns o with the cell size and erase radius multiplied by s, the
// display's device scale factor. Non-positive s leaves o unchanged.
func (o Options) Scaled(s float64) Options {
	if s <= 0 {
		return o
	}
	o = o.withDefaults()
	o.CellSize = max(1, int(math.Round(float64(o.CellSize)*s)))
	o.EraseRadius *= s
	return o
}

func (o Options) withDefaults() Options {
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.EraseRadius <= 0 {
		o.EraseRadius = DefaultEraseRadius
	}
	if o.ArtScale <= 0 || o.ArtScale > 1 {
		o.ArtScale = DefaultArtScale
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}

// Protector reports canvas positions that must never be erased.
type Protector interface {
	Protected(x, y float64) bool
}

// MaskBuilder produces the protection mask for a canvas size.
type MaskBuilder func(width, height int) (Protector, error)

// Renderer is the drawing surface owned by the canvas.
type Renderer interface {
	Clear()
	FillRect(x, y, w, h int, c color.Color)
}

// Pointer is the pointer position in canvas space. The zero value is an
// absent pointer.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Canvas owns the cells, the mask and the pointer state for one reveal
// surface. It is not safe for concurrent use; every method is expected to
// run on the host's update goroutine.
type Canvas struct {
	opts  Options
	src   image.Image
	masks MaskBuilder
	log   logrus.FieldLogger

	width, height int
	cells         []Cell
	mask          Protector
	pointer       Pointer
	stopped       bool
}

// New returns a canvas for src. Nothing is sampled until the first Resize.
// masks may be nil, in which case no cell is protected.
func New(src image.Image, masks MaskBuilder, opts Options) *Canvas {
	opts = opts.withDefaults()
	return &Canvas{
		opts:  opts,
		src:   src,
		masks: masks,
		log:   opts.Logger.WithField("component", "reveal"),
	}
}

// Resize rebuilds the mask and every cell for a new canvas size, dropping
// all erase progress. Calling it with the current size does nothing.
func (c *Canvas) Resize(width, height int) error {
	if c.stopped || (width == c.width && height == c.height && c.cells != nil) {
		return nil
	}
	c.width, c.height = width, height

	c.mask = nil
	if c.masks != nil {
		m, err := c.masks(width, height)
		if err != nil {
			// Leave the canvas empty and unsized so the next Resize retries.
			c.width, c.height, c.cells = 0, 0, nil
			return err
		}
		c.mask = m
	}

	c.cells = BuildCells(c.src, width, height, c.opts)
	if c.cells == nil {
		c.cells = []Cell{}
	}
	c.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"cells":  len(c.cells),
	}).Debug("canvas rebuilt")
	return nil
}

// MovePointer records the pointer at (x, y) in canvas space.
func (c *Canvas) MovePointer(x, y float64) {
	if c.stopped {
		return
	}
	c.pointer = Pointer{X: x, Y: y, Present: true}
}

// LeavePointer marks the pointer absent; no cell is erased until it returns.
func (c *Canvas) LeavePointer() {
	c.pointer = Pointer{}
}

// Reset restores every erased cell.
func (c *Canvas) Reset() {
	if c.stopped {
		return
	}
	for i := range c.cells {
		c.cells[i].Erased = false
	}
}

// Step runs one erase pass and returns how many cells it erased.
func (c *Canvas) Step() int {
	if c.stopped || !c.pointer.Present {
		return 0
	}
	r := c.opts.EraseRadius
	n := 0
	for i := range c.cells {
		cell := &c.cells[i]
		if cell.Erased {
			continue
		}
		dx, dy := cell.X-c.pointer.X, cell.Y-c.pointer.Y
		// Cheap box rejection before the square root.
		if math.Abs(dx) >= r || math.Abs(dy) >= r {
			continue
		}
		if math.Hypot(dx, dy) >= r {
			continue
		}
		if c.mask != nil && c.mask.Protected(cell.X, cell.Y) {
			continue
		}
		cell.Erased = true
		n++
	}
	return n
}

// Draw clears r and fills every cell that is still visible.
func (c *Canvas) Draw(r Renderer) {
	if c.stopped {
		return
	}
	r.Clear()
	for _, cell := range c.cells {
		if cell.Erased {
			continue
		}
		size := int(cell.Size)
		r.FillRect(int(math.Round(cell.X)), int(math.Round(cell.Y)), size, size, cell.Color)
	}
}

// Frame is one full tick: erase, then draw.
func (c *Canvas) Frame(r Renderer) {
	c.Step()
	c.Draw(r)
}

// Stop ends the canvas. Later input, Step, Draw and Resize calls do nothing.
func (c *Canvas) Stop() {
	if !c.stopped {
		c.log.Debug("canvas stopped")
	}
	c.stopped = true
	c.pointer = Pointer{}
}

func (c *Canvas) Stopped() bool { return c.stopped }

// Cells returns a copy of the current cells.
func (c *Canvas) Cells() []Cell {
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

// Remaining counts the cells that are not erased.
func (c *Canvas) Remaining() int {
	n := 0
	for _, cell := range c.cells {
		if !cell.Erased {
			n++
		}
	}
	return n
}

func (c *Canvas) Size() (width, height int) { return c.width, c.height }

func (c *Canvas) Pointer() Pointer { return c.pointer }
