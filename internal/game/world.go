package game

import (
	"math/rand"
	"time"
)

// GameState is the orchestrator's top-level state machine.
type GameState uint8

const (
	StateRunning GameState = iota
	StateGameOver
	StateVictory
	StateExit
)

func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	case StateVictory:
		return "victory"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// WorldStats are cumulative counters over one world's lifetime, consumed
// by the HUD, the debug report and the headless runner.
type WorldStats struct {
	EnemiesSpawned   int
	EnemiesDestroyed int
	BricksDestroyed  int
	ShotsFired       int
	PlayerDeaths     int
}

// World is the headless simulation core: the map, the rosters, the
// collision pipeline and the state machine, with no rendering or input
// dependencies. The windowed game and the headless runner both drive it
// through Step, one fixed-dt frame at a time.
type World struct {
	Map      *Map
	Player   *Tank
	Enemies  []*Tank
	Spawner  *Spawner
	Detector *Detector
	State    GameState
	Stats    WorldStats

	log  *EventLog
	rng  *rand.Rand
	tick int
}

type worldConfig struct {
	seed         int64
	maxSpawns    int
	layout       func(*Map)
	spawnPoints  []GridPoint
	initialSpawn bool
}

// WorldOption customizes world construction. Tests and the headless
// runner use these for deterministic setups.
type WorldOption func(*worldConfig)

// WithSeed fixes the RNG seed for deterministic runs.
func WithSeed(seed int64) WorldOption {
	return func(c *worldConfig) { c.seed = seed }
}

// WithMaxSpawns overrides the level's cumulative enemy spawn cap.
func WithMaxSpawns(n int) WorldOption {
	return func(c *worldConfig) { c.maxSpawns = n }
}

// WithLayout replaces the built-in level layout. Pass a func that
// mutates the freshly built empty map.
func WithLayout(layout func(*Map)) WorldOption {
	return func(c *worldConfig) { c.layout = layout }
}

// WithSpawnPoints overrides the enemy spawn locations.
func WithSpawnPoints(points []GridPoint) WorldOption {
	return func(c *worldConfig) { c.spawnPoints = points }
}

// WithoutInitialSpawn skips the immediate first enemy spawn, leaving the
// field empty until the spawn timer elapses.
func WithoutInitialSpawn() WorldOption {
	return func(c *worldConfig) { c.initialSpawn = false }
}

// NewWorld builds a fresh RUNNING world: map, player at the bottom
// centre, spawner primed, and (by default) one enemy already on field.
func NewWorld(opts ...WorldOption) *World {
	cfg := worldConfig{
		seed:         time.Now().UnixNano(),
		maxSpawns:    defaultMaxSpawns,
		layout:       DefaultLayout,
		initialSpawn: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := rand.New(rand.NewSource(cfg.seed)) // #nosec G404 -- gameplay randomness
	w := &World{
		Map:      NewMap(GridCols, GridRows, cfg.layout),
		Player:   NewPlayerTank(GridCols/2-1, GridRows-2),
		Detector: NewDetector(),
		State:    StateRunning,
		log:      NewEventLog(),
		rng:      rng,
	}
	w.Spawner = NewSpawner(cfg.spawnPoints, cfg.maxSpawns, rng)
	if cfg.initialSpawn {
		w.Spawner.TrySpawn(w)
	}
	return w
}

// Tick returns the number of frames stepped so far.
func (w *World) Tick() int { return w.tick }

// Log exposes the world's event log.
func (w *World) Log() *EventLog { return w.log }

// Step advances the world by exactly one FrameDelta frame: update
// entities (tentative movement), spawn, detect, resolve, compact,
// evaluate terminal conditions. A no-op unless the world is RUNNING.
func (w *World) Step(in InputState) {
	if w.State != StateRunning {
		return
	}
	w.tick++
	dt := FrameDelta

	w.Map.Update(dt)
	w.updatePlayer(dt, in)
	for _, e := range w.Enemies {
		e.Update(dt)
		e.UpdateAI(dt)
	}
	w.Spawner.Update(dt, w)

	events := w.Detector.Detect(
		w.Player,
		w.playerBullets(),
		w.Enemies,
		w.enemyBullets(),
		w.Map.TilesByType(TileBrick),
		w.Map.TilesByType(TileSteel, TileWater, TileBase, TileBrick),
		w.Map.Base(),
	)
	w.resolveCollisions(events)
	w.removeDestroyed()

	if w.State == StateRunning && len(w.Enemies) == 0 && w.Spawner.CapReached() {
		w.State = StateVictory
		w.log.Add(w.tick, "all enemies defeated, victory")
	}
}

// updatePlayer applies one frame of player input. Input is ignored while
// the respawn invincibility window runs; the in-flight bullet still
// advances through Tank.Update either way.
func (w *World) updatePlayer(dt float64, in InputState) {
	p := w.Player
	p.Update(dt)
	if p.Invincible {
		return
	}

	if dir, ok := DirectionFromVector(in.DX, in.DY); ok {
		p.Dir = dir
	}
	if in.DX != 0 || in.DY != 0 {
		p.TryMove(in.DX, in.DY)
	}
	if in.Fire && p.Shoot() {
		w.Stats.ShotsFired++
	}
}

// playerBullets returns the player's in-flight bullet as a group, empty
// when none is live.
func (w *World) playerBullets() []*Bullet {
	if w.Player != nil && w.Player.Bullet != nil && w.Player.Bullet.Active {
		return []*Bullet{w.Player.Bullet}
	}
	return nil
}

// enemyBullets collects every live enemy bullet.
func (w *World) enemyBullets() []*Bullet {
	var out []*Bullet
	for _, e := range w.Enemies {
		if e.Bullet != nil && e.Bullet.Active {
			out = append(out, e.Bullet)
		}
	}
	return out
}
