// Command jumparc samples the jump arc at a fixed frame rate and prints
// time/height pairs, for eyeballing the feel before running the demo.
package main

import (
	"flag"
	"fmt"

	"trihop/motion"
)

func main() {
	var (
		hz     = flag.Int("hz", 60, "sample rate in frames per second")
		frames = flag.Int("frames", 70, "number of frames to sample")
	)
	flag.Parse()

	s := motion.NewState()
	var c motion.Controller

	for i := 0; i < *frames; i++ {
		now := float64(i) / float64(*hz)
		c.Advance(&s, motion.Keys{Jump: i == 0}, now)
		fmt.Printf("%.4f\t%.4f\n", now, s.JumpHeight)
	}
}
