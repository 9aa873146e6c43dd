package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the windowed orchestrator: it owns a World, feeds it keyboard
// input while RUNNING, and handles the restart/quit/report keys in every
// state. Implements ebiten.Game.
type Game struct {
	world    *World
	sprites  *SpriteStore
	prevKeys map[ebiten.Key]bool
}

// New creates a game with a fresh world.
func New() *Game {
	return &Game{
		world:    NewWorld(),
		sprites:  NewSpriteStore(),
		prevKeys: make(map[ebiten.Key]bool),
	}
}

// Update runs one frame: meta keys first (they work in every state),
// then one world step while the game is RUNNING.
func (g *Game) Update() error {
	if g.keyJustPressed(ebiten.KeyEscape) {
		g.world.State = StateExit
	}
	if g.world.State == StateExit {
		return ebiten.Termination
	}

	if g.keyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	if g.world.State != StateRunning {
		if g.keyJustPressed(ebiten.KeyR) {
			log.Printf("restarting game")
			g.world = NewWorld()
		}
		return nil
	}

	g.world.Step(readKeyboard())
	return nil
}

// keyJustPressed is edge-triggered key detection: true only on the frame
// the key goes down.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = pressed
	return pressed && !was
}

// Draw renders the world, the HUD and, outside RUNNING, the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	g.drawHUD(screen)
	switch g.world.State {
	case StateGameOver:
		g.drawOverlay(screen, "GAME OVER", overlayRed)
	case StateVictory:
		g.drawOverlay(screen, "VICTORY!", overlayGreen)
	}
}

// Layout fixes the logical resolution; the window scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return PlayfieldW, PlayfieldH
}
