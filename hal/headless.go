package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless drives the frame loop without opening a window. Time advances
// a fixed 1/Hz per tick so runs are deterministic. No keys are ever down.
func RunHeadless(ctx context.Context, newApp func(HAL) Frame, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHeadlessHAL(1.0 / float64(cfg.Hz))
	frame := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.clk.advance()
			if err := frame.Step(); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

type headlessHAL struct {
	logger *hostLogger
	clk    *stepClock
}

func newHeadlessHAL(dt float64) *headlessHAL {
	return &headlessHAL{
		logger: &hostLogger{w: os.Stdout},
		clk:    &stepClock{dt: dt},
	}
}

func (h *headlessHAL) Logger() Logger { return h.logger }
func (h *headlessHAL) Clock() Clock   { return h.clk }
func (h *headlessHAL) Input() Input   { return nullInput{} }
func (h *headlessHAL) Audio() Audio   { return nullAudio{} }

// stepClock advances by a fixed amount per tick.
type stepClock struct {
	dt  float64
	now float64
}

func (c *stepClock) Now() float64 { return c.now }
func (c *stepClock) advance()     { c.now += c.dt }

type nullInput struct{}

func (nullInput) Sample() KeyState { return KeyState{} }

type nullAudio struct{}

func (nullAudio) Blip() {}
