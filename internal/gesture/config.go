// Package gesture turns raw pointer events into click and directional drag
// signals and forwards them to a Dispatcher, gated by a ScrollConfig.
package gesture

const (
	// DefaultMaxDragDistance normalizes drag distance into progress.
	DefaultMaxDragDistance = 800.0

	// DefaultClickThreshold separates a click from a drag, in device pixels.
	DefaultClickThreshold = 10.0
)

// ScrollConfig is the permission policy of one gesture surface.
// The predicates are evaluated on every move event and never cached.
type ScrollConfig struct {
	canScrollUp     func() bool
	canScrollDown   func() bool
	maxDragDistance float64
}

// NewScrollConfig builds an immutable config. A nil predicate never allows
// scrolling in its direction; a non-positive distance uses the default.
func NewScrollConfig(canScrollUp, canScrollDown func() bool, maxDragDistance float64) ScrollConfig {
	if maxDragDistance <= 0 {
		maxDragDistance = DefaultMaxDragDistance
	}
	return ScrollConfig{
		canScrollUp:     canScrollUp,
		canScrollDown:   canScrollDown,
		maxDragDistance: maxDragDistance,
	}
}

// Always is a predicate that always allows scrolling.
func Always() bool { return true }

// Never is a predicate that never allows scrolling.
func Never() bool { return false }

// CanScrollUp evaluates the upward permission predicate.
func (c ScrollConfig) CanScrollUp() bool {
	return c.canScrollUp != nil && c.canScrollUp()
}

// CanScrollDown evaluates the downward permission predicate.
func (c ScrollConfig) CanScrollDown() bool {
	return c.canScrollDown != nil && c.canScrollDown()
}

// MaxDragDistance returns the distance that maps to progress 1.
func (c ScrollConfig) MaxDragDistance() float64 {
	if c.maxDragDistance <= 0 {
		return DefaultMaxDragDistance
	}
	return c.maxDragDistance
}
