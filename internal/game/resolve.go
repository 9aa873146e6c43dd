package game

// resolveCollisions consumes one frame's collision report and applies the
// per-pair-type rules, mutating tanks, bullets, tiles and the game state.
// Bullet pairs are handled preferentially. Per-frame processed sets keep
// a bullet from resolving twice (it can appear in several overlap pairs
// before it deactivates) and a tank from being reverted twice off stale
// reports. Destroyed enemies are only tombstoned here; the roster is
// compacted afterwards, never while the event list is being walked.
func (w *World) resolveCollisions(events []CollisionPair) {
	if len(events) == 0 {
		return
	}

	processedBullets := make(map[*Bullet]struct{})
	revertedTanks := make(map[*Tank]struct{})

	for _, pair := range events {
		// Pick out a not-yet-processed bullet side, if the pair has one.
		var bullet *Bullet
		var other Collider
		if pair.A.Kind == ColliderBullet {
			if _, done := processedBullets[pair.A.Bullet]; !done {
				bullet, other = pair.A.Bullet, pair.B
			}
		}
		if bullet == nil && pair.B.Kind == ColliderBullet {
			if _, done := processedBullets[pair.B.Bullet]; !done {
				bullet, other = pair.B.Bullet, pair.A
			}
		}

		if bullet != nil {
			if w.resolveBulletPair(bullet, other) {
				processedBullets[bullet] = struct{}{}
				if other.Kind == ColliderBullet {
					processedBullets[other.Bullet] = struct{}{}
				}
			}
			continue
		}

		switch {
		case pair.A.Kind == ColliderTank && pair.B.Kind == ColliderTank:
			a, b := pair.A.Tank, pair.B.Tank
			_, aDone := revertedTanks[a]
			_, bDone := revertedTanks[b]
			if !aDone || !bDone {
				// Symmetric push-back: both parties snap to their
				// pre-move positions.
				a.RevertMove()
				b.RevertMove()
				revertedTanks[a] = struct{}{}
				revertedTanks[b] = struct{}{}
			}

		case pair.A.Kind == ColliderTank && pair.B.Kind == ColliderTile:
			if _, done := revertedTanks[pair.A.Tank]; !done {
				if w.resolveTankTile(pair.A.Tank, pair.B.Tile) {
					revertedTanks[pair.A.Tank] = struct{}{}
				}
			}

		case pair.B.Kind == ColliderTank && pair.A.Kind == ColliderTile:
			if _, done := revertedTanks[pair.B.Tank]; !done {
				if w.resolveTankTile(pair.B.Tank, pair.A.Tile) {
					revertedTanks[pair.B.Tank] = struct{}{}
				}
			}
		}
		// Any other pair shape is a defined no-op.
	}
}

// resolveBulletPair applies the bullet-involving rules. Returns true when
// the bullet was consumed by the collision and should count as processed
// for the rest of the frame.
func (w *World) resolveBulletPair(bullet *Bullet, other Collider) bool {
	if !bullet.Active {
		return false
	}

	switch other.Kind {
	case ColliderTank:
		tank := other.Tank
		if bullet.Owner == tank.Owner {
			// The pair table never produces these, but an unexpected
			// shape is ignored rather than raised.
			return false
		}
		bullet.Active = false
		if tank.Owner == OwnerEnemy {
			if tank.TakeDamage(1) {
				tank.Destroyed = true
				w.Stats.EnemiesDestroyed++
				w.log.Add(w.tick, "enemy tank destroyed")
			}
			return true
		}
		// Enemy bullet on the player. Damage is gated on the
		// invincibility window; the bullet is spent either way.
		if !tank.Invincible {
			if tank.TakeDamage(1) {
				w.Stats.PlayerDeaths++
				w.State = StateGameOver
				w.log.Add(w.tick, "player destroyed, game over")
			} else {
				w.Stats.PlayerDeaths++
				tank.Respawn()
				w.log.Add(w.tick, "player hit, %d lives left", tank.Lives)
			}
		}
		return true

	case ColliderTile:
		tile := other.Tile
		switch tile.Type {
		case TileBrick:
			bullet.Active = false
			w.Map.SetTileType(tile, TileEmpty)
			w.Stats.BricksDestroyed++
			return true
		case TileSteel:
			bullet.Active = false
			return true
		case TileBase:
			// Hitting the base always ends the game, whoever fired.
			bullet.Active = false
			w.Map.SetTileType(tile, TileBaseDestroyed)
			w.State = StateGameOver
			w.log.Add(w.tick, "base destroyed by %s bullet, game over", bullet.Owner)
			return true
		}
		// WATER and friends: bullets fly over, nothing happens.
		return false

	case ColliderBullet:
		ob := other.Bullet
		if ob == bullet || !ob.Active {
			return false
		}
		bullet.Active = false
		ob.Active = false
		return true
	}

	return false
}

// resolveTankTile stops a tank that drove into a blocking tile, snapping
// it flush against the obstacle. Enemy tanks also pick a new heading
// immediately so they do not ram the same wall next frame.
func (w *World) resolveTankTile(tank *Tank, tile *Tile) bool {
	if !tile.Type.BlocksTank() {
		return false
	}
	tank.SnapToEdge(tile.Bounds())
	if tank.Owner == OwnerEnemy {
		tank.ChangeDirection()
	}
	return true
}

// removeDestroyed compacts the enemy roster, dropping tombstoned tanks.
// Runs once per frame after resolution.
func (w *World) removeDestroyed() {
	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.Destroyed {
			alive = append(alive, e)
		}
	}
	w.Enemies = alive
}
