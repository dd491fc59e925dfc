package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger *hostLogger
	clk    *hostClock
	in     *hostInput
	aud    *hostAudio
}

// New returns a host HAL implementation.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		clk:    newHostClock(),
		in:     &hostInput{},
		aud:    newHostAudio(),
	}
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) Clock() Clock   { return h.clk }
func (h *hostHAL) Input() Input   { return h.in }
func (h *hostHAL) Audio() Audio   { return h.aud }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostClock reports monotonic seconds since construction, like glfwGetTime.
type hostClock struct {
	start time.Time
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func (c *hostClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
