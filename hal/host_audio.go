package hal

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	audioSampleRate = 44100
	blipFreq        = 660.0
	blipSeconds     = 0.12
)

// hostAudio plays the jump blip through Ebiten's audio context. The tone is
// rendered once up front; Blip rewinds and replays it.
type hostAudio struct {
	player *audio.Player
}

func newHostAudio() *hostAudio {
	ctx := audio.NewContext(audioSampleRate)
	return &hostAudio{player: ctx.NewPlayerFromBytes(renderBlip())}
}

func (a *hostAudio) Blip() {
	if a.player == nil {
		return
	}
	if err := a.player.Rewind(); err != nil {
		return
	}
	a.player.Play()
}

// renderBlip renders a short sine burst with a linear release, as 16-bit
// little-endian stereo PCM.
func renderBlip() []byte {
	n := int(blipSeconds * audioSampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * blipFreq * float64(i) / audioSampleRate)
		v *= 1 - float64(i)/float64(n) // release envelope, no click at the end
		s := int16(v * 0.25 * math.MaxInt16)
		buf[i*4+0] = byte(s)
		buf[i*4+1] = byte(s >> 8)
		buf[i*4+2] = byte(s)
		buf[i*4+3] = byte(s >> 8)
	}
	return buf
}
