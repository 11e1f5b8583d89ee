package motion

import (
	"math"
	"time"
)

// Point is a position in device pixels.
type Point struct {
	X, Y float64
}

// Tween interpolates a point over a fixed duration with a cubic ease-out.
// The zero value is idle.
type Tween struct {
	from, to Point
	start    time.Time
	duration time.Duration
	active   bool
}

// Start begins a tween from→to at now.
func (t *Tween) Start(from, to Point, d time.Duration, now time.Time) {
	t.from, t.to = from, to
	t.start = now
	t.duration = d
	t.active = true
}

// Stop abandons the tween where it is.
func (t *Tween) Stop() {
	t.active = false
}

// Active reports whether the tween is still running.
func (t *Tween) Active() bool {
	return t.active
}

// Target returns the destination of the last started tween.
func (t *Tween) Target() Point {
	return t.to
}

// At returns the interpolated point at now and marks the tween finished
// once the duration has elapsed.
func (t *Tween) At(now time.Time) Point {
	if !t.active {
		return t.to
	}
	if t.duration <= 0 {
		t.active = false
		return t.to
	}
	f := float64(now.Sub(t.start)) / float64(t.duration)
	if f >= 1 {
		t.active = false
		return t.to
	}
	if f < 0 {
		f = 0
	}
	e := 1 - math.Pow(1-f, 3)
	return Point{
		X: t.from.X + (t.to.X-t.from.X)*e,
		Y: t.from.Y + (t.to.Y-t.from.Y)*e,
	}
}
