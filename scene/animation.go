package scene

import (
	"math"
	"time"

	"github.com/go-theft-auto/glworks/mat4"
)

// Animation is the explicit spin state of a demo, advanced once per frame.
type Animation struct {
	Angle float32 // Radians, always in [0, 2π)
	Speed float32 // Radians per second

	last    time.Time
	started bool
}

// NewAnimation returns an animation spinning at degPerSec.
func NewAnimation(degPerSec float32) *Animation {
	return &Animation{Speed: mat4.Radians(degPerSec)}
}

// Step advances the angle to now and returns the elapsed seconds.
// The first call only records the time and returns 0.
func (a *Animation) Step(now time.Time) float32 {
	if !a.started {
		a.last = now
		a.started = true
		return 0
	}

	dt := float32(now.Sub(a.last).Seconds())
	if dt < 0 {
		dt = 0
	}
	a.last = now

	a.Angle = wrapAngle(a.Angle + a.Speed*dt)
	return dt
}

// Reset clears the angle and the recorded time.
func (a *Animation) Reset() {
	a.Angle = 0
	a.started = false
}

func wrapAngle(angle float32) float32 {
	const twoPi = 2 * math.Pi
	w := float32(math.Mod(float64(angle), twoPi))
	if w < 0 {
		w += twoPi
	}
	if w >= twoPi {
		w = 0
	}
	return w
}
