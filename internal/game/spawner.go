package game

import "math/rand"

// GridPoint is a spawn location in grid coordinates.
type GridPoint struct {
	Col, Row int
}

// defaultSpawnPoints mirrors the classic top-row entrances: left,
// centre, right.
var defaultSpawnPoints = []GridPoint{
	{Col: 3, Row: 1},
	{Col: GridCols / 2, Row: 1},
	{Col: GridCols - 4, Row: 1},
}

// Spawner creates enemy tanks on a timer, up to a cumulative cap. The
// cap counts total spawns over the level, not concurrent enemies, so a
// level cycles tanks through as they die.
type Spawner struct {
	points      []GridPoint
	maxSpawns   int
	totalSpawns int
	timer       float64
	interval    float64
	rng         *rand.Rand
}

// NewSpawner builds a spawner over the given points, or the defaults
// when points is nil.
func NewSpawner(points []GridPoint, maxSpawns int, rng *rand.Rand) *Spawner {
	if points == nil {
		points = defaultSpawnPoints
	}
	return &Spawner{
		points:    points,
		maxSpawns: maxSpawns,
		interval:  spawnInterval,
		rng:       rng,
	}
}

// TotalSpawns returns the cumulative successful spawn count.
func (s *Spawner) TotalSpawns() int { return s.totalSpawns }

// CapReached reports whether the level's spawn budget is exhausted.
func (s *Spawner) CapReached() bool { return s.totalSpawns >= s.maxSpawns }

// TrySpawn attempts one spawn at a randomly chosen point. It fails
// silently — no state change, false return — when the cap is reached or
// the candidate footprint overlaps a collidable tile, the player, or an
// existing enemy. On success the new tank is appended to the world's
// roster and both counters advance.
func (s *Spawner) TrySpawn(w *World) bool {
	if s.CapReached() {
		return false
	}

	p := s.points[s.rng.Intn(len(s.points))]
	footprint := Rect{
		X: float64(p.Col * TileSize),
		Y: float64(p.Row * TileSize),
		W: TileSize,
		H: TileSize,
	}

	for _, r := range w.Map.CollidableRects() {
		if footprint.Intersects(r) {
			return false
		}
	}
	if w.Player != nil && footprint.Intersects(w.Player.Bounds()) {
		return false
	}
	for _, e := range w.Enemies {
		if footprint.Intersects(e.Bounds()) {
			return false
		}
	}

	enemy := NewEnemyTank(p.Col, p.Row, s.rng)
	w.Enemies = append(w.Enemies, enemy)
	s.totalSpawns++
	w.Stats.EnemiesSpawned++
	w.log.Add(w.tick, "spawned enemy %d/%d at (%d,%d)", s.totalSpawns, s.maxSpawns, p.Col, p.Row)
	return true
}

// Update advances the spawn timer and attempts a spawn once it elapses.
// The timer resets only on success: a blocked spawn retries every
// following frame until a point frees up.
func (s *Spawner) Update(dt float64, w *World) {
	s.timer += dt
	if s.timer < s.interval {
		return
	}
	if s.TrySpawn(w) {
		s.timer = 0
	}
}
