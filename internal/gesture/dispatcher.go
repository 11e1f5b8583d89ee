package gesture

// Dispatcher receives classified scroll signals. Exactly one dispatcher is
// bound to a surface at a time.
type Dispatcher interface {
	OnScrollDown(progress float64, cfg ScrollConfig)
	OnScrollUp(progress float64, cfg ScrollConfig)
	OnCancelScroll(isDown bool, cfg ScrollConfig)
}
