package game

import "math/rand"

// Tank is any tracked vehicle on the field, player or enemy. One struct
// covers both roles; enemy-only AI state sits at the bottom and stays
// zero for the player.
type Tank struct {
	X, Y float64
	W, H float64
	Dir  Direction

	Health    int
	MaxHealth int
	Lives     int
	Owner     OwnerType

	// Destroyed is the tombstone flag. The resolver sets it; the world's
	// compaction pass drops the tank from the roster between frames.
	Destroyed bool

	// Bullet holds the single in-flight shot, nil when never fired.
	// Shoot is a no-op while the held bullet is still active.
	Bullet *Bullet

	// Movement cadence and rollback state. prevX/Y is captured at the
	// top of every update so a revert lands on the last validated spot.
	moveTimer float64
	moveDelay float64
	prevX     float64
	prevY     float64

	// Player respawn anchor.
	spawnX float64
	spawnY float64

	// Invincibility window (player respawn grace).
	Invincible  bool
	invTimer    float64
	invDuration float64
	blinkTimer  float64

	// Enemy AI cadences.
	dirTimer      float64
	dirInterval   float64
	shootTimer    float64
	shootInterval float64
	rng           *rand.Rand
}

// NewPlayerTank creates the player at the given grid cell.
func NewPlayerTank(col, row int) *Tank {
	x := float64(col * TileSize)
	y := float64(row * TileSize)
	return &Tank{
		X: x, Y: y, W: TileSize, H: TileSize,
		Dir:       DirUp,
		Health:    playerHealth,
		MaxHealth: playerHealth,
		Lives:     playerLives,
		Owner:     OwnerPlayer,
		moveDelay: tankMoveDelay,
		prevX:     x, prevY: y,
		spawnX: x, spawnY: y,
		invDuration: invincibilityDuration,
	}
}

// NewEnemyTank creates an enemy at the given grid cell with a random
// initial heading drawn from rng.
func NewEnemyTank(col, row int, rng *rand.Rand) *Tank {
	x := float64(col * TileSize)
	y := float64(row * TileSize)
	return &Tank{
		X: x, Y: y, W: TileSize, H: TileSize,
		Dir:       Direction(rng.Intn(int(directionCount))),
		Health:    enemyHealth,
		MaxHealth: enemyHealth,
		Lives:     enemyLives,
		Owner:     OwnerEnemy,
		moveDelay: tankMoveDelay,
		prevX:     x, prevY: y,
		dirInterval:   enemyDirectionInterval,
		shootInterval: enemyShootInterval,
		rng:           rng,
	}
}

// Bounds returns the tank's AABB.
func (t *Tank) Bounds() Rect {
	return Rect{X: t.X, Y: t.Y, W: t.W, H: t.H}
}

// Update advances timers, snapshots the rollback position and moves the
// in-flight bullet. Movement itself happens through TryMove afterwards.
func (t *Tank) Update(dt float64) {
	t.prevX = t.X
	t.prevY = t.Y

	if t.Invincible {
		t.invTimer += dt
		t.blinkTimer += dt
		if t.invTimer >= t.invDuration {
			t.Invincible = false
			t.invTimer = 0
		}
	}

	t.moveTimer += dt

	if t.Bullet != nil {
		t.Bullet.Update(dt)
	}
}

// TryMove attempts a one-tile move along a single axis. The move is
// tentative: the position advances immediately and the collision pass
// later this frame reverts it if it turns out to be invalid. Returns
// false, with no state change, when the cadence timer has not elapsed,
// when both axes are requested at once, or when the vector is zero.
func (t *Tank) TryMove(dx, dy int) bool {
	if t.moveTimer < t.moveDelay {
		return false
	}
	if dx != 0 && dy != 0 {
		return false
	}
	if dx == 0 && dy == 0 {
		return false
	}

	t.X += float64(dx) * TileSize
	t.Y += float64(dy) * TileSize
	t.moveTimer = 0
	return true
}

// MoveReady reports whether the cadence gate has elapsed. Enemy AI uses
// it to tell "move rejected" apart from "not my turn yet".
func (t *Tank) MoveReady() bool {
	return t.moveTimer >= t.moveDelay
}

// RevertMove snaps the tank back to its pre-move position. Used for
// tank-vs-tank overlap where both parties back off symmetrically.
func (t *Tank) RevertMove() {
	t.X = t.prevX
	t.Y = t.prevY
}

// SnapToEdge places the tank flush against obstacle along its current
// heading. Unlike RevertMove this produces a clean stop at the wall
// instead of a jump back to the previous tile.
func (t *Tank) SnapToEdge(obstacle Rect) {
	switch t.Dir {
	case DirUp:
		t.Y = obstacle.Y + obstacle.H
	case DirDown:
		t.Y = obstacle.Y - t.H
	case DirLeft:
		t.X = obstacle.X + obstacle.W
	case DirRight:
		t.X = obstacle.X - t.W
	}
}

// TakeDamage applies amount (clamped at zero health) and reports whether
// the tank is out of lives. While lives remain, hitting zero health
// consumes one life and restores full health. Invincible tanks ignore
// damage entirely.
func (t *Tank) TakeDamage(amount int) bool {
	if t.Invincible {
		return false
	}
	t.Health -= amount
	if t.Health < 0 {
		t.Health = 0
	}
	if t.Health > 0 {
		return false
	}
	t.Lives--
	if t.Lives > 0 {
		t.Health = t.MaxHealth
		return false
	}
	t.Lives = 0
	return true
}

// Shoot fires a bullet from the tank's centre in its current heading.
// A no-op while the previous bullet is still in flight.
func (t *Tank) Shoot() bool {
	if t.Bullet != nil && t.Bullet.Active {
		return false
	}
	t.Bullet = NewBullet(t.X+t.W/2, t.Y+t.H/2, t.Dir, t.Owner)
	return true
}

// Respawn repositions the player to its spawn anchor, facing up, with a
// fresh invincibility window. Only meaningful for the player tank.
func (t *Tank) Respawn() {
	t.X = t.spawnX
	t.Y = t.spawnY
	t.prevX = t.spawnX
	t.prevY = t.spawnY
	t.Dir = DirUp
	t.moveTimer = 0
	t.Invincible = true
	t.invTimer = 0
	t.blinkTimer = 0
}

// BlinkVisible reports whether the tank should be drawn this frame.
// Invincible tanks blink; everyone else is always visible.
func (t *Tank) BlinkVisible() bool {
	if !t.Invincible {
		return true
	}
	return mod(t.blinkTimer, blinkInterval*2) < blinkInterval
}

// ChangeDirection forces a new random heading and resets the direction
// timer so the AI does not immediately flip back. Called by the resolver
// when an enemy rams a wall, and by the enemy's own cadence.
func (t *Tank) ChangeDirection() {
	if t.rng == nil {
		return
	}
	t.Dir = ChooseNewDirection(t.Dir, t.rng)
	t.dirTimer = 0
}

// UpdateAI runs one tick of the enemy random-walk brain: periodic
// heading changes, periodic shots, and a move attempt every frame. An
// enemy whose cadence was ready but whose move failed turns instead of
// grinding against whatever stopped it.
func (t *Tank) UpdateAI(dt float64) {
	t.dirTimer += dt
	t.shootTimer += dt

	if t.dirTimer >= t.dirInterval {
		t.ChangeDirection()
	}
	if t.shootTimer >= t.shootInterval {
		t.Shoot()
		t.shootTimer = 0
	}

	ready := t.MoveReady()
	dx, dy := t.Dir.Vector()
	if !t.TryMove(dx, dy) && ready {
		t.ChangeDirection()
	}
}

// SpriteName returns the logical sprite key for the tank's role and
// heading.
func (t *Tank) SpriteName() string {
	role := "player"
	if t.Owner == OwnerEnemy {
		role = "enemy"
	}
	return role + "_tank_" + t.Dir.String()
}

// mod is a float modulus that stays positive for positive divisors.
func mod(a, b float64) float64 {
	a -= float64(int(a/b)) * b
	if a < 0 {
		a += b
	}
	return a
}
