// Package app wires the frame loop: sample time, sample input, advance
// motion, build the transform, draw.
package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"trihop/gfx"
	"trihop/hal"
	"trihop/motion"
	"trihop/xform"
)

type game struct {
	h     hal.HAL
	clock FrameClock
	state motion.State
	ctrl  motion.Controller
	pipe  *gfx.Pipeline

	// Transform built by Step, consumed by Render.
	transform xform.Mat4
}

// New builds the demo frame for the given HAL.
func New(h hal.HAL) hal.Frame {
	return &game{
		h:         h,
		state:     motion.NewState(),
		pipe:      gfx.NewPipeline(h.Logger()),
		transform: xform.Identity(),
	}
}

// Step runs one frame of simulation. Strictly sequential: time, input,
// motion, transform.
func (g *game) Step() error {
	g.clock.Tick(g.h.Clock().Now())

	keys := g.h.Input().Sample()
	if keys.Quit {
		return hal.ErrStop
	}

	jumped := g.ctrl.Advance(&g.state, motion.Keys{
		Left:  keys.Left,
		Right: keys.Right,
		Jump:  keys.Jump,
	}, g.clock.Current)
	if jumped {
		g.h.Audio().Blip()
	}

	// Translation only. A rotation matrix could be composed in here, but the
	// control scheme never changes the angle from zero.
	g.transform = xform.Translation(g.state.HorizontalOffset, g.state.VerticalOffset())
	return nil
}

// Render draws the current frame.
func (g *game) Render(dst *ebiten.Image) {
	g.pipe.Draw(dst, g.transform)

	fps := 0.0
	if g.clock.Delta > 0 {
		fps = 1 / g.clock.Delta
	}
	ebitenutil.DebugPrint(dst, fmt.Sprintf("pos (%.2f, %.2f)  fps %.0f",
		g.state.HorizontalOffset, g.state.VerticalOffset(), fps))
}
