package navigator

// TouchStart begins a gesture at horizontal position x. Any previous end
// position is forgotten.
func (c *Controller) TouchStart(x int) {
	c.touchEnd = nil
	c.touchStart = &x
}

// TouchMove records the latest horizontal position of the gesture.
func (c *Controller) TouchMove(x int) {
	c.touchEnd = &x
}

// TouchEnd completes the gesture. A drag to the left beyond the threshold
// moves forward, a drag to the right moves back. It reports whether the deck
// moved. Without both positions it does nothing.
func (c *Controller) TouchEnd() bool {
	start, end := c.touchStart, c.touchEnd
	c.touchStart, c.touchEnd = nil, nil
	if start == nil || end == nil {
		return false
	}

	distance := *start - *end
	switch {
	case distance > c.swipeThreshold:
		c.navigate((c.index+1)%c.Len(), CauseSwipe)
		return true
	case distance < -c.swipeThreshold:
		c.navigate((c.index-1+c.Len())%c.Len(), CauseSwipe)
		return true
	}
	return false
}

// Swiping reports whether a gesture is in progress.
func (c *Controller) Swiping() bool {
	return c.touchStart != nil
}
