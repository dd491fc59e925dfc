package app

// FrameClock tracks the current frame time and the elapsed time since the
// previous frame. Delta feeds the HUD only; motion uses per-frame steps.
type FrameClock struct {
	Current float64
	Delta   float64

	last    float64
	started bool
}

// Tick records a new frame timestamp from the monotonic clock.
func (c *FrameClock) Tick(now float64) {
	if !c.started {
		c.last = now
		c.started = true
	}
	c.Current = now
	c.Delta = now - c.last
	c.last = now
}
