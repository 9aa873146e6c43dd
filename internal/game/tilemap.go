package game

// Map owns the tile grid. Tiles are created once at build time and
// mutated in place; they are never replaced or removed.
type Map struct {
	Cols, Rows int
	tiles      [][]*Tile
}

// NewMap builds an empty Cols×Rows grid and applies layout, which may be
// nil for an all-empty map. The shipped level is DefaultLayout.
func NewMap(cols, rows int, layout func(*Map)) *Map {
	m := &Map{Cols: cols, Rows: rows}
	m.tiles = make([][]*Tile, rows)
	for row := 0; row < rows; row++ {
		m.tiles[row] = make([]*Tile, cols)
		for col := 0; col < cols; col++ {
			m.tiles[row][col] = &Tile{Type: TileEmpty, Col: col, Row: row}
		}
	}
	if layout != nil {
		layout(m)
	}
	return m
}

// DefaultLayout is the built-in level: brick border, a central steel
// block, water and bush patches, and the base near the bottom centre.
func DefaultLayout(m *Map) {
	for col := 0; col < m.Cols; col++ {
		m.setType(col, 0, TileBrick)
		m.setType(col, m.Rows-1, TileBrick)
	}
	for row := 0; row < m.Rows; row++ {
		m.setType(0, row, TileBrick)
		m.setType(m.Cols-1, row, TileBrick)
	}
	for col := 5; col < 8; col++ {
		for row := 5; row < 8; row++ {
			m.setType(col, row, TileSteel)
		}
	}
	for col := 10; col < 13; col++ {
		m.setType(col, 6, TileWater)
	}
	for row := 9; row < 12; row++ {
		m.setType(3, row, TileBush)
	}
	m.setType(12, 10, TileIce)
	m.setType(13, 10, TileIce)
	m.setType(m.Cols/2, m.Rows-2, TileBase)
}

// TileAt returns the tile at the grid cell, or nil when out of range.
func (m *Map) TileAt(col, row int) *Tile {
	if col < 0 || col >= m.Cols || row < 0 || row >= m.Rows {
		return nil
	}
	return m.tiles[row][col]
}

// TileAtPixel returns the tile containing the pixel position, or nil.
func (m *Map) TileAtPixel(x, y float64) *Tile {
	return m.TileAt(int(x)/TileSize, int(y)/TileSize)
}

// TilesByType collects every tile whose type is one of types.
func (m *Map) TilesByType(types ...TileType) []*Tile {
	var want [tileTypeCount]bool
	for _, t := range types {
		want[t] = true
	}
	var out []*Tile
	for _, row := range m.tiles {
		for _, tile := range row {
			if want[tile.Type] {
				out = append(out, tile)
			}
		}
	}
	return out
}

// CollidableRects returns the AABBs of every tile that blocks tank
// movement. Used by the spawner for footprint checks.
func (m *Map) CollidableRects() []Rect {
	var out []Rect
	for _, row := range m.tiles {
		for _, tile := range row {
			if tile.Type.BlocksTank() {
				out = append(out, tile.Bounds())
			}
		}
	}
	return out
}

// Base returns the base tile, or nil once it has been destroyed.
// The layout invariant guarantees at most one BASE tile exists.
func (m *Map) Base() *Tile {
	for _, row := range m.tiles {
		for _, tile := range row {
			if tile.Type == TileBase {
				return tile
			}
		}
	}
	return nil
}

// SetTileType is the map's sole mutation operation during play; only the
// collision resolver calls it.
func (m *Map) SetTileType(t *Tile, newType TileType) {
	t.Type = newType
}

// Update advances tile animation timers.
func (m *Map) Update(dt float64) {
	for _, row := range m.tiles {
		for _, tile := range row {
			tile.update(dt)
		}
	}
}

// setType is the build-time variant of SetTileType, keyed by grid cell.
func (m *Map) setType(col, row int, t TileType) {
	if tile := m.TileAt(col, row); tile != nil {
		tile.Type = t
	}
}
