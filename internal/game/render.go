package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const bannerScale = 4

var (
	colBackground = color.RGBA{R: 12, G: 12, B: 12, A: 255}
	colBullet     = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	colDim        = color.RGBA{A: 128}
	overlayRed    = color.RGBA{R: 255, G: 40, B: 40, A: 255}
	overlayGreen  = color.RGBA{R: 60, G: 220, B: 60, A: 255}
	colPrompt     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

var bannerFace = text.NewGoXFace(basicfont.Face7x13)

// drawWorld renders tiles, tanks and bullets in playfield space.
func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(colBackground)
	w := g.world

	for row := 0; row < w.Map.Rows; row++ {
		for col := 0; col < w.Map.Cols; col++ {
			tile := w.Map.TileAt(col, row)
			name := tile.SpriteName()
			if name == "" {
				continue
			}
			g.drawSprite(screen, name, tile.Bounds())
		}
	}

	if w.Player != nil && w.Player.BlinkVisible() {
		g.drawSprite(screen, w.Player.SpriteName(), w.Player.Bounds())
	}
	for _, e := range w.Enemies {
		g.drawSprite(screen, e.SpriteName(), e.Bounds())
	}

	for _, b := range append(w.playerBullets(), w.enemyBullets()...) {
		r := b.Bounds()
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colBullet, false)
	}
}

func (g *Game) drawSprite(screen *ebiten.Image, name string, at Rect) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(at.X, at.Y)
	screen.DrawImage(g.sprites.Get(name), op)
}

// drawHUD prints lives, roster counts, the invincibility countdown and
// the last couple of event lines.
func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	y := 4
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", w.Player.Lives), 6, y)
	y += 14
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Enemies: %d alive, %d/%d spawned",
			len(w.Enemies), w.Spawner.TotalSpawns(), w.Spawner.maxSpawns), 6, y)
	y += 14
	if w.Player.Invincible {
		remaining := w.Player.invDuration - w.Player.invTimer
		if remaining < 0 {
			remaining = 0
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Invincible: %.1fs", remaining), 6, y)
		y += 14
	}
	for _, e := range w.log.Tail(2) {
		ebitenutil.DebugPrintAt(screen, e.Text, 6, y)
		y += 14
	}
}

// drawOverlay dims the playfield and centres a banner plus the restart
// prompt, for the GAME_OVER and VICTORY states.
func (g *Game) drawOverlay(screen *ebiten.Image, banner string, col color.Color) {
	vector.DrawFilledRect(screen, 0, 0, PlayfieldW, PlayfieldH, colDim, false)

	bw, bh := text.Measure(banner, bannerFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate(PlayfieldW/2-bw*bannerScale/2, PlayfieldH/2-bh*bannerScale/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, banner, bannerFace, op)

	prompt := "Press R to Restart"
	pw, _ := text.Measure(prompt, bannerFace, 0)
	pop := &text.DrawOptions{}
	pop.GeoM.Scale(2, 2)
	pop.GeoM.Translate(PlayfieldW/2-pw, PlayfieldH/2+bh*bannerScale)
	pop.ColorScale.ScaleWithColor(colPrompt)
	text.Draw(screen, prompt, bannerFace, pop)
}
