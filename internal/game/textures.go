package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprite palette. Rendering fidelity is not a goal; sprites are built
// procedurally at startup so the game carries no asset files.
var (
	colBrick     = color.RGBA{R: 170, G: 74, B: 38, A: 255}
	colBrickLine = color.RGBA{R: 110, G: 44, B: 20, A: 255}
	colSteel     = color.RGBA{R: 160, G: 160, B: 168, A: 255}
	colSteelCore = color.RGBA{R: 210, G: 210, B: 218, A: 255}
	colWaterA    = color.RGBA{R: 32, G: 80, B: 200, A: 255}
	colWaterB    = color.RGBA{R: 48, G: 104, B: 224, A: 255}
	colBush      = color.RGBA{R: 40, G: 140, B: 52, A: 255}
	colIce       = color.RGBA{R: 210, G: 230, B: 245, A: 255}
	colBase      = color.RGBA{R: 200, G: 170, B: 60, A: 255}
	colBaseDead  = color.RGBA{R: 90, G: 80, B: 50, A: 255}
	colPlayer    = color.RGBA{R: 208, G: 176, B: 40, A: 255}
	colEnemy     = color.RGBA{R: 190, G: 60, B: 52, A: 255}
	colBarrel    = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	colFallback  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// SpriteStore maps logical sprite names to images. A lookup miss is
// non-fatal: it logs once and yields a flat fallback rectangle.
type SpriteStore struct {
	sprites  map[string]*ebiten.Image
	fallback *ebiten.Image
	warned   map[string]bool
}

// NewSpriteStore builds the full sprite set.
func NewSpriteStore() *SpriteStore {
	s := &SpriteStore{
		sprites: make(map[string]*ebiten.Image),
		warned:  make(map[string]bool),
	}

	s.sprites["brick"] = makeBrickSprite()
	s.sprites["steel"] = makeSteelSprite()
	s.sprites["water_1"] = makeFillSprite(colWaterA)
	s.sprites["water_2"] = makeFillSprite(colWaterB)
	s.sprites["bush"] = makeFillSprite(colBush)
	s.sprites["ice"] = makeFillSprite(colIce)
	s.sprites["base"] = makeBaseSprite(colBase)
	s.sprites["base_destroyed"] = makeBaseSprite(colBaseDead)

	for d := DirUp; d < directionCount; d++ {
		s.sprites["player_tank_"+d.String()] = makeTankSprite(colPlayer, d)
		s.sprites["enemy_tank_"+d.String()] = makeTankSprite(colEnemy, d)
	}

	s.fallback = makeFillSprite(colFallback)
	return s
}

// Get resolves a logical sprite name. Unknown names log once and fall
// back to a visible placeholder instead of crashing the frame.
func (s *SpriteStore) Get(name string) *ebiten.Image {
	if img, ok := s.sprites[name]; ok {
		return img
	}
	if !s.warned[name] {
		s.warned[name] = true
		log.Printf("sprite %q not found, using fallback", name)
	}
	return s.fallback
}

func makeFillSprite(c color.Color) *ebiten.Image {
	img := ebiten.NewImage(TileSize, TileSize)
	img.Fill(c)
	return img
}

func makeBrickSprite() *ebiten.Image {
	img := makeFillSprite(colBrick)
	// Mortar lines, offset every other course.
	for y := 0; y <= TileSize; y += 8 {
		vector.StrokeLine(img, 0, float32(y), TileSize, float32(y), 1, colBrickLine, false)
	}
	for y := 0; y < TileSize; y += 8 {
		off := 0
		if (y/8)%2 == 1 {
			off = 8
		}
		for x := off; x <= TileSize; x += 16 {
			vector.StrokeLine(img, float32(x), float32(y), float32(x), float32(y+8), 1, colBrickLine, false)
		}
	}
	return img
}

func makeSteelSprite() *ebiten.Image {
	img := makeFillSprite(colSteel)
	vector.DrawFilledRect(img, 6, 6, TileSize-12, TileSize-12, colSteelCore, false)
	return img
}

func makeBaseSprite(body color.Color) *ebiten.Image {
	img := ebiten.NewImage(TileSize, TileSize)
	vector.DrawFilledRect(img, 2, 10, TileSize-4, TileSize-12, body, false)
	vector.DrawFilledRect(img, TileSize/2-3, 2, 6, 12, body, false)
	return img
}

func makeTankSprite(body color.Color, dir Direction) *ebiten.Image {
	img := ebiten.NewImage(TileSize, TileSize)
	vector.DrawFilledRect(img, 3, 3, TileSize-6, TileSize-6, body, false)
	// Barrel toward the heading.
	const bw = 6
	switch dir {
	case DirUp:
		vector.DrawFilledRect(img, TileSize/2-bw/2, 0, bw, TileSize/2, colBarrel, false)
	case DirDown:
		vector.DrawFilledRect(img, TileSize/2-bw/2, TileSize/2, bw, TileSize/2, colBarrel, false)
	case DirLeft:
		vector.DrawFilledRect(img, 0, TileSize/2-bw/2, TileSize/2, bw, colBarrel, false)
	case DirRight:
		vector.DrawFilledRect(img, TileSize/2, TileSize/2-bw/2, TileSize/2, bw, colBarrel, false)
	}
	return img
}
