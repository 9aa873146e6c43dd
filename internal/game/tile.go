package game

// TileType identifies what occupies a grid cell.
type TileType uint8

const (
	TileEmpty         TileType = iota // open ground
	TileBrick                         // destructible wall
	TileSteel                         // indestructible wall
	TileWater                         // blocks tanks, bullets fly over
	TileBush                          // drive-over foliage
	TileIce                           // drive-over, cosmetic
	TileBase                          // the structure the player defends
	TileBaseDestroyed                 // base after a hit
	tileTypeCount                     // sentinel
)

func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileBrick:
		return "brick"
	case TileSteel:
		return "steel"
	case TileWater:
		return "water"
	case TileBush:
		return "bush"
	case TileIce:
		return "ice"
	case TileBase:
		return "base"
	case TileBaseDestroyed:
		return "base-destroyed"
	default:
		return "unknown"
	}
}

// BlocksTank reports whether a tank may not enter the cell.
// BUSH and ICE are drive-over; a destroyed base is rubble and passable.
func (t TileType) BlocksTank() bool {
	switch t {
	case TileBrick, TileSteel, TileWater, TileBase:
		return true
	}
	return false
}

// StopsBullet reports whether a bullet impact on the cell has an effect.
// WATER does not stop bullets even though it blocks tanks; the detector
// still reports the overlap and the resolver treats it as a no-op.
func (t TileType) StopsBullet() bool {
	switch t {
	case TileBrick, TileSteel, TileBase:
		return true
	}
	return false
}

// Destructible reports whether a bullet hit mutates the tile.
func (t TileType) Destructible() bool {
	return t == TileBrick || t == TileBase
}

// Tile is one cell of the map. Grid position is fixed for the lifetime of
// the map; only Type mutates, and only through Map.SetTileType.
type Tile struct {
	Type TileType
	Col  int
	Row  int

	// Water animation state. Advanced by Map.Update, read by the renderer.
	animTimer float64
	animFrame int
}

// Bounds returns the tile's pixel-space AABB.
func (t *Tile) Bounds() Rect {
	return Rect{
		X: float64(t.Col * TileSize),
		Y: float64(t.Row * TileSize),
		W: TileSize,
		H: TileSize,
	}
}

// SpriteName returns the logical sprite key for the tile's current
// appearance, or "" for nothing to draw.
func (t *Tile) SpriteName() string {
	switch t.Type {
	case TileBrick:
		return "brick"
	case TileSteel:
		return "steel"
	case TileWater:
		if t.animFrame == 0 {
			return "water_1"
		}
		return "water_2"
	case TileBush:
		return "bush"
	case TileIce:
		return "ice"
	case TileBase:
		return "base"
	case TileBaseDestroyed:
		return "base_destroyed"
	}
	return ""
}

func (t *Tile) update(dt float64) {
	if t.Type != TileWater {
		return
	}
	t.animTimer += dt
	for t.animTimer >= waterFrameInterval {
		t.animTimer -= waterFrameInterval
		t.animFrame = (t.animFrame + 1) % 2
	}
}
