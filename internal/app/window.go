package app

import (
	"time"

	"github.com/llehouerou/miniplayer/internal/freedrag"
	"github.com/llehouerou/miniplayer/internal/motion"
	"github.com/llehouerou/miniplayer/internal/ui/layout"
)

// miniWindow is the free-floating mini player rectangle.
type miniWindow struct {
	rect    layout.Rect
	parent  layout.Size
	size    layout.Size
	padding float64
	placed  bool
	restore *motion.Point // persisted position applied on first placement
	tween   motion.Tween
	now     func() time.Time
}

func newMiniWindow(size layout.Size, padding float64, now func() time.Time) *miniWindow {
	return &miniWindow{
		rect:    layout.Rect{W: size.W, H: size.H},
		size:    size,
		padding: padding,
		now:     now,
	}
}

func (w *miniWindow) Bounds() layout.Rect { return w.rect }

func (w *miniWindow) Parent() layout.Size { return w.parent }

func (w *miniWindow) MoveTo(x, y float64) {
	w.tween.Stop()
	w.rect.X, w.rect.Y = x, y
}

func (w *miniWindow) AnimateTo(target layout.SnapTarget) {
	from := motion.Point{X: w.rect.X, Y: w.rect.Y}
	w.tween.Start(from, motion.Point{X: target.X, Y: target.Y}, target.Duration, w.now())
}

// Animating reports whether a snap is in flight.
func (w *miniWindow) Animating() bool { return w.tween.Active() }

// Step moves the window along its snap.
func (w *miniWindow) Step(now time.Time) {
	if !w.tween.Active() {
		return
	}
	p := w.tween.At(now)
	w.rect.X, w.rect.Y = p.X, p.Y
}

// Home returns the default resting position for the current parent.
func (w *miniWindow) Home() (x, y float64) {
	return layout.DefaultMiniPosition(w.parent, w.size, w.padding)
}

// Resize fits the window into a new parent. The first call places it at the
// restored position, or at Home when nothing was persisted.
func (w *miniWindow) Resize(parent layout.Size) {
	w.parent = parent

	x, y := w.rect.X, w.rect.Y
	if !w.placed {
		w.placed = true
		if w.restore != nil {
			x, y = w.restore.X, w.restore.Y
		} else {
			x, y = w.Home()
		}
	}
	if w.tween.Active() {
		// Land the snap first so the clamp sees the final position.
		target := w.tween.Target()
		w.tween.Stop()
		x, y = target.X, target.Y
	}
	w.rect = layout.MiniRect(parent, w.size, x, y)
}

var _ freedrag.View = (*miniWindow)(nil)
