package reveal

import "math"

// DefaultTapSlop is how far a touch may travel and still count as a tap.
const DefaultTapSlop = 10

type touch struct {
	startX, startY float64
	x, y           float64
}

// TapDetector tells taps apart from drags across a set of concurrent
// touches, keyed by the host's touch ID.
type TapDetector struct {
	Slop    float64
	touches map[int]*touch
}

func (d *TapDetector) Press(id int, x, y float64) {
	if d.touches == nil {
		d.touches = make(map[int]*touch)
	}
	d.touches[id] = &touch{startX: x, startY: y, x: x, y: y}
}

func (d *TapDetector) Move(id int, x, y float64) {
	if t, ok := d.touches[id]; ok {
		t.x, t.y = x, y
	}
}

// Release ends a touch and reports whether it was a tap.
func (d *TapDetector) Release(id int) bool {
	t, ok := d.touches[id]
	if !ok {
		return false
	}
	delete(d.touches, id)
	slop := d.Slop
	if slop <= 0 {
		slop = DefaultTapSlop
	}
	return math.Hypot(t.x-t.startX, t.y-t.startY) < slop
}

// Active is the number of touches still down.
func (d *TapDetector) Active() int { return len(d.touches) }
