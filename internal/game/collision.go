package game

// Collision resolution. Each check walks the live entity slices and
// mutates Active flags; the caller compacts the slices afterwards.

// CheckBulletEnemyCollisions resolves bullet hits. Each bullet damages
// at most one enemy per tick. Returns the points scored and the enemies
// destroyed this tick.
func CheckBulletEnemyCollisions(bullets []*Bullet, enemies []*Enemy) (points int, destroyed []*Enemy) {
	for _, b := range bullets {
		if !b.Active {
			continue
		}
		for _, e := range enemies {
			if !e.Active {
				continue
			}
			if b.Rect().Intersects(e.Rect()) {
				b.Active = false
				if e.TakeDamage() {
					points += e.Spec.Points
					destroyed = append(destroyed, e)
				}
				break
			}
		}
	}
	return points, destroyed
}

// CheckEnemyPlayerCollision reports whether any enemy touches the
// player, deactivating the first one found. No points are awarded for
// a collision kill.
func CheckEnemyPlayerCollision(enemies []*Enemy, player *Player) bool {
	pr := player.Rect()
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		if e.Rect().Intersects(pr) {
			e.Active = false
			return true
		}
	}
	return false
}

// CheckPowerUpPlayerCollision returns the first active pickup touching
// the player, deactivating it. Returns nil if none.
func CheckPowerUpPlayerCollision(powerups []*PowerUp, player *Player) *PowerUp {
	pr := player.Rect()
	for _, p := range powerups {
		if !p.Active {
			continue
		}
		if p.Rect().Intersects(pr) {
			p.Active = false
			return p
		}
	}
	return nil
}

// CheckEnemiesReachedBottom deactivates enemies whose top edge has
// passed the bottom of the screen and returns how many escaped.
func CheckEnemiesReachedBottom(enemies []*Enemy, screenH float64) int {
	escaped := 0
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		if e.Y >= screenH {
			e.Active = false
			escaped++
		}
	}
	return escaped
}
