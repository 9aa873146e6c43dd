package game

import (
	"math/rand"
	"testing"
)

// bareWorld is a running world with an empty map and no enemies, used to
// exercise the resolver with hand-built event batches.
func bareWorld() *World {
	return NewWorld(
		WithSeed(1),
		WithLayout(func(*Map) {}),
		WithoutInitialSpawn(),
	)
}

func TestResolve_BulletVsBrick(t *testing.T) {
	w := bareWorld()
	tile := w.Map.TileAt(4, 4)
	w.Map.setType(4, 4, TileBrick)
	b := NewBullet(float64(4*TileSize+16), float64(4*TileSize+16), DirUp, OwnerPlayer)

	w.resolveCollisions([]CollisionPair{{A: BulletRef(b), B: TileRef(tile)}})

	if b.Active {
		t.Fatal("bullet should deactivate on brick impact")
	}
	if tile.Type != TileEmpty {
		t.Fatalf("brick should become empty, got %s", tile.Type)
	}
	if w.Stats.BricksDestroyed != 1 {
		t.Fatalf("bricks destroyed = %d, want 1", w.Stats.BricksDestroyed)
	}
}

func TestResolve_BulletVsSteel(t *testing.T) {
	w := bareWorld()
	tile := w.Map.TileAt(4, 4)
	w.Map.setType(4, 4, TileSteel)
	b := NewBullet(float64(4*TileSize+16), float64(4*TileSize+16), DirUp, OwnerEnemy)

	w.resolveCollisions([]CollisionPair{{A: BulletRef(b), B: TileRef(tile)}})

	if b.Active {
		t.Fatal("bullet should deactivate on steel impact")
	}
	if tile.Type != TileSteel {
		t.Fatal("steel tile must be unchanged")
	}
}

func TestResolve_BulletVsWaterIsNoOp(t *testing.T) {
	w := bareWorld()
	tile := w.Map.TileAt(4, 4)
	w.Map.setType(4, 4, TileWater)
	b := NewBullet(float64(4*TileSize+16), float64(4*TileSize+16), DirUp, OwnerPlayer)

	w.resolveCollisions([]CollisionPair{{A: BulletRef(b), B: TileRef(tile)}})

	if !b.Active {
		t.Fatal("bullets fly over water; the pair is a no-op")
	}
	if tile.Type != TileWater {
		t.Fatal("water tile must be unchanged")
	}
}

func TestResolve_BaseHitEndsGame_EitherOwner(t *testing.T) {
	for _, owner := range []OwnerType{OwnerPlayer, OwnerEnemy} {
		w := bareWorld()
		tile := w.Map.TileAt(8, 14)
		w.Map.setType(8, 14, TileBase)
		b := NewBullet(float64(8*TileSize+16), float64(14*TileSize+16), DirDown, owner)

		w.resolveCollisions([]CollisionPair{{A: BulletRef(b), B: TileRef(tile)}})

		if b.Active {
			t.Fatalf("%s bullet should deactivate on base impact", owner)
		}
		if tile.Type != TileBaseDestroyed {
			t.Fatalf("base should be destroyed, got %s", tile.Type)
		}
		if w.State != StateGameOver {
			t.Fatalf("base hit by %s bullet should end the game, state=%s", owner, w.State)
		}
	}
}

func TestResolve_PlayerBulletDestroysEnemy(t *testing.T) {
	w := bareWorld()
	rng := rand.New(rand.NewSource(2))
	enemy := NewEnemyTank(4, 4, rng) // health 1
	w.Enemies = append(w.Enemies, enemy)
	b := NewBullet(enemy.X+16, enemy.Y+16, DirUp, OwnerPlayer)

	w.resolveCollisions([]CollisionPair{{A: BulletRef(b), B: TankRef(enemy)}})

	if b.Active {
		t.Fatal("bullet should deactivate")
	}
	if !enemy.Destroyed {
		t.Fatal("one-health enemy should be tombstoned")
	}
	if len(w.Enemies) != 1 {
		t.Fatal("tombstoned enemy must stay in the roster until compaction")
	}
	w.removeDestroyed()
	if len(w.Enemies) != 0 {
		t.Fatal("compaction should drop the tombstoned enemy")
	}
	if w.Stats.EnemiesDestroyed != 1 {
		t.Fatalf("enemies destroyed = %d, want 1", w.Stats.EnemiesDestroyed)
	}
}

func TestResolve_BulletProcessedOncePerFrame(t *testing.T) {
	w := bareWorld()
	rng := rand.New(rand.NewSource(2))
	e1 := NewEnemyTank(4, 4, rng)
	e2 := NewEnemyTank(4, 4, rng) // stacked: the bullet overlaps both
	e1.Health, e1.MaxHealth = 2, 2
	e2.Health, e2.MaxHealth = 2, 2
	w.Enemies = append(w.Enemies, e1, e2)
	b := NewBullet(e1.X+16, e1.Y+16, DirUp, OwnerPlayer)

	w.resolveCollisions([]CollisionPair{
		{A: BulletRef(b), B: TankRef(e1)},
		{A: BulletRef(b), B: TankRef(e2)},
	})

	if e1.Health != 1 {
		t.Fatalf("first tank health = %d, want 1", e1.Health)
	}
	if e2.Health != 2 {
		t.Fatal("one bullet must not damage a second tank in the same frame")
	}
}

func TestResolve_SpentBulletAppliesNoDamage(t *testing.T) {
	w := bareWorld()
	rng := rand.New(rand.NewSource(2))
	enemy := NewEnemyTank(4, 4, rng)
	enemy.Health, enemy.MaxHealth = 2, 2
	w.Enemies = append(w.Enemies, enemy)
	b := NewBullet(enemy.X+16, enemy.Y+16, DirUp, OwnerPlayer)
	pair := CollisionPair{A: BulletRef(b), B: TankRef(enemy)}

	w.resolveCollisions([]CollisionPair{pair})
	// A stale report of the same pair next frame: the bullet is already
	// inactive and must not double-apply damage.
	w.resolveCollisions([]CollisionPair{pair})

	if enemy.Health != 1 {
		t.Fatalf("enemy health = %d, want 1 (single application)", enemy.Health)
	}
}

func TestResolve_EnemyBulletVsPlayer_Respawn(t *testing.T) {
	w := bareWorld() // player lives 3
	p := w.Player
	b := NewBullet(p.X+16, p.Y+16, DirDown, OwnerEnemy)

	w.resolveCollisions([]CollisionPair{{A: BulletRef(b), B: TankRef(p)}})

	if b.Active {
		t.Fatal("bullet should deactivate")
	}
	if w.State != StateRunning {
		t.Fatal("player with spare lives should not end the game")
	}
	if p.Lives != playerLives-1 {
		t.Fatalf("lives = %d, want %d", p.Lives, playerLives-1)
	}
	if !p.Invincible {
		t.Fatal("respawned player should be invincible")
	}
}

func TestResolve_EnemyBulletVsPlayer_LastLife(t *testing.T) {
	w := bareWorld()
	p := w.Player
	p.Lives = 1
	b := NewBullet(p.X+16, p.Y+16, DirDown, OwnerEnemy)

	w.resolveCollisions([]CollisionPair{{A: BulletRef(b), B: TankRef(p)}})

	if w.State != StateGameOver {
		t.Fatalf("state = %s, want game-over", w.State)
	}
	if p.Lives != 0 {
		t.Fatalf("lives = %d, want 0", p.Lives)
	}
}

func TestResolve_InvinciblePlayerIgnoresHit(t *testing.T) {
	w := bareWorld()
	p := w.Player
	p.Invincible = true
	b := NewBullet(p.X+16, p.Y+16, DirDown, OwnerEnemy)

	w.resolveCollisions([]CollisionPair{{A: BulletRef(b), B: TankRef(p)}})

	if b.Active {
		t.Fatal("bullet is spent even against an invincible player")
	}
	if p.Lives != playerLives {
		t.Fatal("invincible player must take no damage")
	}
}

func TestResolve_BulletVsBullet(t *testing.T) {
	w := bareWorld()
	pb := NewBullet(100, 100, DirRight, OwnerPlayer)
	eb := NewBullet(100, 100, DirLeft, OwnerEnemy)

	w.resolveCollisions([]CollisionPair{{A: BulletRef(pb), B: BulletRef(eb)}})

	if pb.Active || eb.Active {
		t.Fatal("both opposing bullets should deactivate")
	}
}

func TestResolve_TankVsTankBothRevert(t *testing.T) {
	w := bareWorld()
	rng := rand.New(rand.NewSource(2))
	a := NewEnemyTank(4, 4, rng)
	b := NewEnemyTank(5, 4, rng)
	a.Update(tankMoveDelay)
	a.Dir = DirRight
	a.TryMove(1, 0) // a now overlaps b
	ax, ay := a.prevX, a.prevY
	bx, by := b.X, b.Y

	w.resolveCollisions([]CollisionPair{{A: TankRef(a), B: TankRef(b)}})

	if a.X != ax || a.Y != ay {
		t.Fatalf("tank a at (%.0f,%.0f), want reverted to (%.0f,%.0f)", a.X, a.Y, ax, ay)
	}
	if b.X != bx || b.Y != by {
		t.Fatal("tank b should also revert (symmetric push-back)")
	}
}

func TestResolve_TankReversionOncePerFrame(t *testing.T) {
	w := bareWorld()
	rng := rand.New(rand.NewSource(2))
	a := NewEnemyTank(4, 4, rng)
	b := NewEnemyTank(5, 4, rng)
	a.Update(tankMoveDelay)
	a.Dir = DirRight
	a.TryMove(1, 0)
	a.dirTimer = 1.0

	tile := w.Map.TileAt(5, 4)
	w.Map.setType(5, 4, TileBrick)

	// The tank-tank pair reverts a; the stale tank-tile pair must then
	// be skipped entirely, so the enemy wall rule (heading change, timer
	// reset) never fires.
	w.resolveCollisions([]CollisionPair{
		{A: TankRef(a), B: TankRef(b)},
		{A: TankRef(a), B: TileRef(tile)},
	})

	if a.X != float64(4*TileSize) {
		t.Fatalf("tank a X = %.0f, want %.0f (reverted exactly once)", a.X, float64(4*TileSize))
	}
	if a.dirTimer != 1.0 {
		t.Fatal("already-reverted tank must not be resolved a second time")
	}
}

func TestResolve_EnemyWallHitChangesDirection(t *testing.T) {
	w := bareWorld()
	rng := rand.New(rand.NewSource(2))
	e := NewEnemyTank(4, 4, rng)
	e.Update(tankMoveDelay)
	e.Dir = DirRight
	e.TryMove(1, 0)
	e.dirTimer = 1.9
	w.Enemies = append(w.Enemies, e)

	tile := w.Map.TileAt(5, 4)
	w.Map.setType(5, 4, TileSteel)

	w.resolveCollisions([]CollisionPair{{A: TankRef(e), B: TileRef(tile)}})

	if e.X != float64(5*TileSize)-e.W {
		t.Fatalf("enemy X = %.0f, want flush against the wall", e.X)
	}
	if e.Dir == DirRight {
		t.Fatal("enemy should pick a new heading after ramming a wall")
	}
	if e.dirTimer != 0 {
		t.Fatal("direction timer should be reset so the AI does not flip back")
	}
}

func TestResolve_PlayerWallHitSnapsToEdge(t *testing.T) {
	w := bareWorld()
	p := w.Player
	p.Update(tankMoveDelay)
	p.Dir = DirUp
	p.TryMove(0, -1)

	row := int(p.Y) / TileSize
	col := int(p.X) / TileSize
	tile := w.Map.TileAt(col, row)
	w.Map.setType(col, row, TileBrick)

	w.resolveCollisions([]CollisionPair{{A: TankRef(p), B: TileRef(tile)}})

	want := tile.Bounds().Y + TileSize
	if p.Y != want {
		t.Fatalf("player Y = %.0f, want flush stop at %.0f", p.Y, want)
	}
	if p.Dir != DirUp {
		t.Fatal("the player never auto-changes direction")
	}
}
