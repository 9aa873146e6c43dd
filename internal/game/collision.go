package game

// ColliderKind tags which arm of the Collider union is populated.
type ColliderKind uint8

const (
	ColliderTank ColliderKind = iota
	ColliderBullet
	ColliderTile
)

// Collider is a tagged reference to one of the three collidable kinds.
// Exactly one pointer is non-nil, matching Kind. The resolver dispatches
// on kind pairs instead of runtime type tests.
type Collider struct {
	Kind   ColliderKind
	Tank   *Tank
	Bullet *Bullet
	Tile   *Tile
}

func TankRef(t *Tank) Collider     { return Collider{Kind: ColliderTank, Tank: t} }
func BulletRef(b *Bullet) Collider { return Collider{Kind: ColliderBullet, Bullet: b} }
func TileRef(t *Tile) Collider     { return Collider{Kind: ColliderTile, Tile: t} }

// Bounds returns the referenced object's AABB.
func (c Collider) Bounds() Rect {
	switch c.Kind {
	case ColliderTank:
		return c.Tank.Bounds()
	case ColliderBullet:
		return c.Bullet.Bounds()
	case ColliderTile:
		return c.Tile.Bounds()
	}
	return Rect{}
}

// CollisionPair is one detected overlap. Pure data: detection never
// mutates anything.
type CollisionPair struct {
	A, B Collider
}

// Detector performs the per-frame all-pairs AABB sweep across a fixed,
// hand-enumerated set of group pairings. The table encodes game rules by
// omission: enemy bullets are never tested against enemy tanks (no
// friendly fire) and bullets of the same side are never tested against
// each other (they pass through). Each call recomputes from scratch and
// replaces the previous frame's report.
type Detector struct {
	events []CollisionPair
}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect sweeps the group pairings and returns the frame's collision
// report. The returned slice is reused across calls; consumers must not
// retain it past the frame.
func (d *Detector) Detect(
	player *Tank,
	playerBullets []*Bullet,
	enemies []*Tank,
	enemyBullets []*Bullet,
	destructibleTiles []*Tile,
	impassableTiles []*Tile,
	base *Tile,
) []CollisionPair {
	d.events = d.events[:0]

	allTanks := make([]*Tank, 0, len(enemies)+1)
	if player != nil {
		allTanks = append(allTanks, player)
	}
	allTanks = append(allTanks, enemies...)

	// Player bullets vs enemy tanks.
	for _, b := range playerBullets {
		for _, e := range enemies {
			if b.Bounds().Intersects(e.Bounds()) {
				d.queue(BulletRef(b), TankRef(e))
			}
		}
	}

	// Player bullets vs destructible tiles.
	for _, b := range playerBullets {
		for _, t := range destructibleTiles {
			if b.Bounds().Intersects(t.Bounds()) {
				d.queue(BulletRef(b), TileRef(t))
			}
		}
	}

	// Player bullets vs enemy bullets. Same-side pairs are not checked.
	for _, pb := range playerBullets {
		for _, eb := range enemyBullets {
			if pb.Bounds().Intersects(eb.Bounds()) {
				d.queue(BulletRef(pb), BulletRef(eb))
			}
		}
	}

	// Player bullets vs impassable tiles.
	for _, b := range playerBullets {
		for _, t := range impassableTiles {
			if b.Bounds().Intersects(t.Bounds()) {
				d.queue(BulletRef(b), TileRef(t))
			}
		}
	}

	// Enemy bullets vs the base.
	if base != nil {
		for _, b := range enemyBullets {
			if b.Bounds().Intersects(base.Bounds()) {
				d.queue(BulletRef(b), TileRef(base))
			}
		}
	}

	// Enemy bullets vs the player tank.
	if player != nil {
		for _, b := range enemyBullets {
			if b.Bounds().Intersects(player.Bounds()) {
				d.queue(BulletRef(b), TankRef(player))
			}
		}
	}

	// Enemy bullets vs destructible tiles.
	for _, b := range enemyBullets {
		for _, t := range destructibleTiles {
			if b.Bounds().Intersects(t.Bounds()) {
				d.queue(BulletRef(b), TileRef(t))
			}
		}
	}

	// Enemy bullets vs impassable tiles.
	for _, b := range enemyBullets {
		for _, t := range impassableTiles {
			if b.Bounds().Intersects(t.Bounds()) {
				d.queue(BulletRef(b), TileRef(t))
			}
		}
	}

	// All tanks vs impassable tiles.
	for _, tank := range allTanks {
		for _, t := range impassableTiles {
			if tank.Bounds().Intersects(t.Bounds()) {
				d.queue(TankRef(tank), TileRef(t))
			}
		}
	}

	// Tanks vs tanks, pairwise, no self or duplicate pairs.
	for i, a := range allTanks {
		for _, b := range allTanks[i+1:] {
			if a.Bounds().Intersects(b.Bounds()) {
				d.queue(TankRef(a), TankRef(b))
			}
		}
	}

	return d.events
}

func (d *Detector) queue(a, b Collider) {
	d.events = append(d.events, CollisionPair{A: a, B: b})
}
