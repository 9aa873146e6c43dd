package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"tankcity/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Tank City")
	ebiten.SetWindowSize(game.PlayfieldW*2, game.PlayfieldH*2)
	if err := ebiten.RunGame(game.New()); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
