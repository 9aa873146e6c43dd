package game

import "testing"

func TestNewMap_AllEmpty(t *testing.T) {
	m := NewMap(10, 8, nil)
	if m.Cols != 10 || m.Rows != 8 {
		t.Fatalf("expected 10x8, got %dx%d", m.Cols, m.Rows)
	}
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			tile := m.TileAt(col, row)
			if tile == nil {
				t.Fatalf("tile (%d,%d) missing", col, row)
			}
			if tile.Type != TileEmpty {
				t.Fatalf("tile (%d,%d) type=%s, want empty", col, row, tile.Type)
			}
		}
	}
}

func TestTileAt_OutOfRange(t *testing.T) {
	m := NewMap(4, 4, nil)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {99, 99}} {
		if tile := m.TileAt(c[0], c[1]); tile != nil {
			t.Fatalf("TileAt(%d,%d) = %v, want nil", c[0], c[1], tile)
		}
	}
}

func TestDefaultLayout_SingleBase(t *testing.T) {
	m := NewMap(GridCols, GridRows, DefaultLayout)
	bases := m.TilesByType(TileBase)
	if len(bases) != 1 {
		t.Fatalf("expected exactly one base tile, got %d", len(bases))
	}
	if m.Base() != bases[0] {
		t.Fatal("Base() should return the single base tile")
	}
}

func TestTilesByType(t *testing.T) {
	m := NewMap(4, 4, nil)
	m.setType(0, 0, TileBrick)
	m.setType(1, 0, TileBrick)
	m.setType(2, 0, TileSteel)
	m.setType(3, 0, TileWater)

	if got := len(m.TilesByType(TileBrick)); got != 2 {
		t.Fatalf("bricks = %d, want 2", got)
	}
	if got := len(m.TilesByType(TileSteel, TileWater)); got != 2 {
		t.Fatalf("steel+water = %d, want 2", got)
	}
	if got := len(m.TilesByType(TileBase)); got != 0 {
		t.Fatalf("bases = %d, want 0", got)
	}
}

func TestCollidableRects_TankBlockingSet(t *testing.T) {
	m := NewMap(6, 1, nil)
	m.setType(0, 0, TileBrick)
	m.setType(1, 0, TileSteel)
	m.setType(2, 0, TileWater)
	m.setType(3, 0, TileBase)
	m.setType(4, 0, TileBush)
	m.setType(5, 0, TileIce)

	// Brick, steel, water and base block tanks; bush and ice do not.
	if got := len(m.CollidableRects()); got != 4 {
		t.Fatalf("collidable rects = %d, want 4", got)
	}
}

func TestSetTileType_BrickBecomesEmpty(t *testing.T) {
	m := NewMap(3, 3, nil)
	m.setType(1, 1, TileBrick)
	before := len(m.CollidableRects())

	m.SetTileType(m.TileAt(1, 1), TileEmpty)
	if m.TileAt(1, 1).Type != TileEmpty {
		t.Fatal("tile should be empty after SetTileType")
	}
	if got := len(m.CollidableRects()); got != before-1 {
		t.Fatalf("collidable rects = %d, want %d", got, before-1)
	}
}

func TestBase_NilAfterDestroyed(t *testing.T) {
	m := NewMap(3, 3, nil)
	m.setType(1, 1, TileBase)
	base := m.Base()
	if base == nil {
		t.Fatal("expected a base tile")
	}
	m.SetTileType(base, TileBaseDestroyed)
	if m.Base() != nil {
		t.Fatal("Base() should be nil once the base is destroyed")
	}
}

func TestWaterAnimation(t *testing.T) {
	m := NewMap(1, 1, nil)
	m.setType(0, 0, TileWater)
	tile := m.TileAt(0, 0)
	if tile.SpriteName() != "water_1" {
		t.Fatalf("initial water frame = %q, want water_1", tile.SpriteName())
	}
	m.Update(waterFrameInterval)
	if tile.SpriteName() != "water_2" {
		t.Fatalf("water frame after interval = %q, want water_2", tile.SpriteName())
	}
	m.Update(waterFrameInterval)
	if tile.SpriteName() != "water_1" {
		t.Fatalf("water frame should cycle back to water_1, got %q", tile.SpriteName())
	}
}
