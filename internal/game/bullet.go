package game

// OwnerType is the provenance tag carried by tanks and their bullets.
// The detector's pair table uses it to decide which collisions are even
// checked, so friendly fire never needs a runtime branch.
type OwnerType uint8

const (
	OwnerPlayer OwnerType = iota
	OwnerEnemy
)

func (o OwnerType) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Bullet is a continuously moving projectile. Active is its sole
// destruction signal: once false it never flips back, and the owning
// tank treats the slot as free on the next shot.
type Bullet struct {
	X, Y   float64
	W, H   float64
	Dir    Direction
	Speed  float64
	Owner  OwnerType
	Active bool
}

// NewBullet creates an active bullet centred on (cx,cy) heading dir.
func NewBullet(cx, cy float64, dir Direction, owner OwnerType) *Bullet {
	return &Bullet{
		X:      cx - bulletSize/2,
		Y:      cy - bulletSize/2,
		W:      bulletSize,
		H:      bulletSize,
		Dir:    dir,
		Speed:  bulletSpeed,
		Owner:  owner,
		Active: true,
	}
}

// Bounds returns the bullet's AABB.
func (b *Bullet) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Update advances the bullet by dir·speed·dt and self-deactivates once
// it leaves the playfield. No cadence gate: bullets move every frame.
func (b *Bullet) Update(dt float64) {
	if !b.Active {
		return
	}
	dx, dy := b.Dir.Vector()
	b.X += float64(dx) * b.Speed * dt
	b.Y += float64(dy) * b.Speed * dt

	if b.X+b.W < 0 || b.X > PlayfieldW || b.Y+b.H < 0 || b.Y > PlayfieldH {
		b.Active = false
	}
}
