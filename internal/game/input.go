package game

import "github.com/hajimehoshi/ebiten/v2"

// InputState is the per-frame input snapshot consumed by World.Step.
// DX/DY form the movement vector; opposite key pairs cancel to zero.
type InputState struct {
	DX, DY int
	Fire   bool
}

// movementVector folds four directional key states into a vector.
// Held opposites cancel, so up+down yields zero on that axis.
func movementVector(up, down, left, right bool) (dx, dy int) {
	if left {
		dx--
	}
	if right {
		dx++
	}
	if up {
		dy--
	}
	if down {
		dy++
	}
	return dx, dy
}

// readKeyboard polls the current keyboard state into an InputState.
// Arrows steer, space fires. Pure query: called once per frame.
func readKeyboard() InputState {
	dx, dy := movementVector(
		ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	)
	return InputState{
		DX:   dx,
		DY:   dy,
		Fire: ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}
