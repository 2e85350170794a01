package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapDetector(t *testing.T) {
	var d TapDetector

	d.Press(1, 100, 100)
	d.Move(1, 104, 103)
	assert.True(t, d.Release(1), "short wiggle is a tap")

	d.Press(2, 100, 100)
	d.Move(2, 180, 100)
	d.Press(3, 5, 5)
	assert.Equal(t, 2, d.Active())
	assert.False(t, d.Release(2), "drag is not a tap")
	assert.True(t, d.Release(3))

	assert.False(t, d.Release(4), "unknown touch")
	assert.Zero(t, d.Active())
}

func TestTapDetector_CustomSlop(t *testing.T) {
	d := TapDetector{Slop: 50}
	d.Press(1, 0, 0)
	d.Move(1, 40, 40)
	assert.False(t, d.Release(1))
	d.Press(1, 0, 0)
	d.Move(1, 20, 20)
	assert.True(t, d.Release(1))
}
