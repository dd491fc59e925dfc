package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostInput polls the keyboard once per frame. Held state, not events: the
// loop wants "is the key down right now", and edge detection lives in the
// motion controller.
type hostInput struct{}

func (*hostInput) Sample() KeyState {
	return KeyState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Quit:  ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
}
