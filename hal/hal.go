// Package hal provides the window, input, clock, and audio collaborators the
// demo runs against, with a desktop implementation on Ebiten and a headless
// runner for tests and CI.
package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrStop ends the frame loop cleanly.
var ErrStop = errors.New("stop")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Clock is a monotonic time source. Now is seconds since an arbitrary start.
type Clock interface {
	Now() float64
}

// KeyState is the per-frame snapshot of the keys the demo cares about.
type KeyState struct {
	Left  bool
	Right bool
	Jump  bool
	Quit  bool
}

// Input provides per-frame key-state polling.
type Input interface {
	Sample() KeyState
}

// Audio plays the jump blip (best-effort; silent when no device).
type Audio interface {
	Blip()
}

// HAL is the only contact point between the demo and the outside world.
type HAL interface {
	Logger() Logger
	Clock() Clock
	Input() Input
	Audio() Audio
}

// Frame is one simulation step plus its presentation. Step returning ErrStop
// ends the loop.
type Frame interface {
	Step() error
	Render(dst *ebiten.Image)
}
