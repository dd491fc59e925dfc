package hal

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type countingFrame struct {
	steps int
	times []float64
	clk   Clock
	fail  error
}

func (f *countingFrame) Step() error {
	f.steps++
	f.times = append(f.times, f.clk.Now())
	return f.fail
}

func (f *countingFrame) Render(dst *ebiten.Image) {}

func TestRunHeadlessTickBudget(t *testing.T) {
	var frame *countingFrame
	err := RunHeadless(context.Background(), func(h HAL) Frame {
		frame = &countingFrame{clk: h.Clock()}
		return frame
	}, HeadlessConfig{Hz: 1000, Ticks: 10})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if frame.steps != 10 {
		t.Fatalf("steps = %d, want 10", frame.steps)
	}
}

func TestRunHeadlessFixedStepClock(t *testing.T) {
	var frame *countingFrame
	err := RunHeadless(context.Background(), func(h HAL) Frame {
		frame = &countingFrame{clk: h.Clock()}
		return frame
	}, HeadlessConfig{Hz: 100, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	for i, got := range frame.times {
		want := float64(i+1) / 100.0
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("tick %d: clock = %v, want %v", i, got, want)
		}
	}
}

func TestRunHeadlessErrStopIsClean(t *testing.T) {
	err := RunHeadless(context.Background(), func(h HAL) Frame {
		return &countingFrame{clk: h.Clock(), fail: ErrStop}
	}, HeadlessConfig{Hz: 1000, Ticks: 100})
	if err != nil {
		t.Fatalf("RunHeadless after ErrStop: %v, want nil", err)
	}
}

func TestRunHeadlessPropagatesStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(h HAL) Frame {
		return &countingFrame{clk: h.Clock(), fail: boom}
	}, HeadlessConfig{Hz: 1000, Ticks: 100})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless error = %v, want boom", err)
	}
}

func TestRunHeadlessContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(h HAL) Frame {
		return &countingFrame{clk: h.Clock()}
	}, HeadlessConfig{Hz: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunHeadless error = %v, want context.Canceled", err)
	}
}

func TestHostClockMonotonic(t *testing.T) {
	c := newHostClock()
	a := c.Now()
	time.Sleep(time.Millisecond)
	b := c.Now()
	if b <= a {
		t.Fatalf("clock went backwards: %v then %v", a, b)
	}
}

func TestHeadlessInputIdle(t *testing.T) {
	var ks KeyState
	if (nullInput{}).Sample() != ks {
		t.Fatal("headless input reported keys down")
	}
}
