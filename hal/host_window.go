package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"trihop/internal/buildinfo"
)

const (
	windowWidth  = 1920
	windowHeight = 1080
)

// RunWindow opens the desktop window and drives the frame loop until the
// app stops or the window closes. It blocks; any error it returns is fatal.
func RunWindow(newApp func(HAL) Frame) error {
	h := New()
	g := &hostGame{frame: newApp(h)}

	ebiten.SetWindowTitle("Controllable Triangle (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type hostGame struct {
	frame Frame
}

func (g *hostGame) Update() error {
	if err := g.frame.Step(); err != nil {
		if errors.Is(err, ErrStop) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.frame.Render(screen)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}
