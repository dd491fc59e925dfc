// Package motion advances the on-screen object from sampled key state and a
// monotonic clock. Horizontal movement is an open-loop offset; vertical
// movement is a two-state jump arc (grounded / jumping).
package motion

import "math"

// Tuning constants. Horizontal speed is a fixed per-frame step, not scaled
// by elapsed time, so it is framerate-dependent.
const (
	StepX         = 0.01
	JumpAmplitude = 0.5
)

// Keys is the key state sampled once per frame.
type Keys struct {
	Left  bool
	Right bool
	Jump  bool
}

// State is the motion state threaded through the frame loop. It is owned and
// mutated only by the loop.
type State struct {
	HorizontalOffset float64
	VerticalBase     float64
	RotationAngle    float64

	Jumping       bool
	JumpHeight    float64
	JumpStartTime float64
	JumpSpeed     float64
	JumpDuration  float64
}

// NewState returns the start state: grounded near the bottom-left of the
// viewport.
func NewState() State {
	return State{
		HorizontalOffset: -1.0,
		VerticalBase:     -0.75,
		JumpSpeed:        0.1,
		JumpDuration:     1.0,
	}
}

// VerticalOffset is the Y translation for the current frame.
func (s *State) VerticalOffset() float64 {
	return s.VerticalBase + s.JumpHeight
}

// Controller edge-detects the jump key across frames.
type Controller struct {
	prevJump bool
}

// Advance mutates s for one frame. now is monotonic seconds. It reports
// whether a new jump started this frame.
//
// A jump starts only on a key transition to pressed while grounded; holding
// the key through an active arc never restarts it, so JumpStartTime stays
// fixed until the arc completes.
func (c *Controller) Advance(s *State, k Keys, now float64) bool {
	if k.Left {
		s.HorizontalOffset -= StepX
	}
	if k.Right {
		s.HorizontalOffset += StepX
	}

	jumped := false
	if k.Jump && !c.prevJump && !s.Jumping {
		s.Jumping = true
		s.JumpStartTime = now
		jumped = true
	}
	c.prevJump = k.Jump

	if s.Jumping {
		progress := (now - s.JumpStartTime) / s.JumpDuration
		if progress < 1.0 {
			s.JumpHeight = math.Sin(progress*math.Pi) * JumpAmplitude
		} else {
			s.JumpHeight = 0
			s.Jumping = false
		}
	}

	return jumped
}
