package reveal

// TouchSample is one touch position in canvas space.
type TouchSample struct {
	ID   int
	X, Y float64
}

// InputFrame is the raw input the host collected during one tick.
type InputFrame struct {
	Pressed  []TouchSample
	Touches  []TouchSample
	Released []int

	CursorX, CursorY float64
	// CursorInside is false when the cursor is off the canvas or the window
	// has lost focus.
	CursorInside bool
	Clicked      bool
}

// InputRouter turns per-tick input into canvas pointer updates. Touches win
// over the cursor while a finger is down. The cursor is only trusted once it
// has moved since start or since the last touch, because platforms without a
// mouse report a fixed cursor position.
type InputRouter struct {
	Taps TapDetector
	// NoCursor ignores the cursor entirely.
	NoCursor bool

	lastX, lastY float64
	seen         bool
	cursorLive   bool
}

// Apply routes f to c.
func (r *InputRouter) Apply(c *Canvas, f InputFrame) {
	for _, t := range f.Pressed {
		r.Taps.Press(t.ID, t.X, t.Y)
	}
	for _, t := range f.Touches {
		r.Taps.Move(t.ID, t.X, t.Y)
	}
	for _, id := range f.Released {
		if r.Taps.Release(id) {
			c.Reset()
		}
	}

	moved := r.seen && (f.CursorX != r.lastX || f.CursorY != r.lastY)
	r.lastX, r.lastY, r.seen = f.CursorX, f.CursorY, true

	if len(f.Touches) > 0 {
		r.cursorLive = false
		c.MovePointer(f.Touches[0].X, f.Touches[0].Y)
		return
	}
	if len(f.Released) > 0 || len(f.Pressed) > 0 {
		r.cursorLive = false
		c.LeavePointer()
		return
	}

	if moved {
		r.cursorLive = true
	}
	if r.NoCursor || !r.cursorLive || !f.CursorInside {
		c.LeavePointer()
		return
	}
	c.MovePointer(f.CursorX, f.CursorY)
	if f.Clicked {
		c.Reset()
	}
}
