// Package layout provides pure functions for the player widget geometry:
// endpoint rectangles, interpolation between them, and corner snapping.
package layout

import (
	"math"
	"time"

	"github.com/llehouerou/miniplayer/internal/playerstate"
)

const (
	// DefaultSnapPadding is the corner padding in device-independent units.
	DefaultSnapPadding = 16.0

	// DefaultSnapDuration is how long the corner snap animation runs.
	DefaultSnapDuration = 300 * time.Millisecond

	// CollapsedHeight is the height of the collapsed bar:
	// top border + content + bottom border.
	CollapsedHeight = 3
)

// Size is a width and height in device pixels.
type Size struct {
	W, H float64
}

// Rect is a positioned rectangle in device pixels.
type Rect struct {
	X, Y, W, H float64
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Round returns integer cell coordinates for rendering.
func (r Rect) Round() (x, y, w, h int) {
	return int(math.Round(r.X)), int(math.Round(r.Y)), int(math.Round(r.W)), int(math.Round(r.H))
}

// SnapTarget is where a released mini player settles.
type SnapTarget struct {
	X, Y     float64
	Duration time.Duration
}

// DPToPx converts device-independent units to device pixels.
func DPToPx(dp, density float64) float64 {
	if density <= 0 {
		density = 1
	}
	return dp * density
}

// SnapToCorner computes the nearest-corner target for view inside parent.
// Horizontally the view goes to the left padding if its center is left of
// the parent midpoint, otherwise to the right padding; vertically likewise.
// The result always keeps the view inside the parent minus padding.
func SnapToCorner(parent Size, view Rect, padding float64, d time.Duration) SnapTarget {
	var x, y float64

	if view.CenterX() < parent.W/2 {
		x = padding
	} else {
		x = parent.W - view.W - padding
	}
	if view.CenterY() < parent.H/2 {
		y = padding
	} else {
		y = parent.H - view.H - padding
	}

	return SnapTarget{
		X:        clampAxis(x, view.W, parent.W, padding),
		Y:        clampAxis(y, view.H, parent.H, padding),
		Duration: d,
	}
}

// clampAxis keeps [v, v+size] inside [padding, limit-padding]. A view too
// large to fit is pinned at the leading padding.
func clampAxis(v, size, limit, padding float64) float64 {
	hi := limit - size - padding
	if hi < padding {
		return padding
	}
	return math.Max(padding, math.Min(v, hi))
}

// Lerp interpolates between two rectangles. p is clamped to [0, 1].
func Lerp(a, b Rect, p float64) Rect {
	p = math.Max(0, math.Min(1, p))
	return Rect{
		X: a.X + (b.X-a.X)*p,
		Y: a.Y + (b.Y-a.Y)*p,
		W: a.W + (b.W-a.W)*p,
		H: a.H + (b.H-a.H)*p,
	}
}

// ExpandedRect fills the window.
func ExpandedRect(window Size) Rect {
	return Rect{W: window.W, H: window.H}
}

// CollapsedRect is a bar across the top of the window.
func CollapsedRect(window Size) Rect {
	return Rect{W: window.W, H: math.Min(CollapsedHeight, window.H)}
}

// MiniRect places a mini player of the given size at (x, y), kept inside
// the window.
func MiniRect(window Size, size Size, x, y float64) Rect {
	w := math.Min(size.W, window.W)
	h := math.Min(size.H, window.H)
	return Rect{
		X: math.Max(0, math.Min(x, window.W-w)),
		Y: math.Max(0, math.Min(y, window.H-h)),
		W: w,
		H: h,
	}
}

// StateRect returns the rect the player occupies at rest in state. mini is
// the current mini player rect. States without a layout of their own fill
// the window.
func StateRect(state playerstate.State, window Size, mini Rect) Rect {
	switch state {
	case playerstate.Collapsed:
		return CollapsedRect(window)
	case playerstate.MiniPlayer:
		return mini
	default:
		return ExpandedRect(window)
	}
}

// DefaultMiniPosition returns the bottom-right corner position used when no
// position has been persisted yet.
func DefaultMiniPosition(window Size, size Size, padding float64) (x, y float64) {
	return clampAxis(window.W-size.W-padding, size.W, window.W, padding),
		clampAxis(window.H-size.H-padding, size.H, window.H, padding)
}
