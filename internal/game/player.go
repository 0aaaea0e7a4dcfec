package game

import "github.com/vovakirdan/turkey-shoot/internal/core"

// Player is the ship at the bottom of the screen.
type Player struct {
	X, Y    float64 // Top-left corner
	Width   float64
	Height  float64
	Speed   float64 // Base cells per tick before effects
	Effects *EffectSet

	shootCooldownMs int64
	lastShot        int64
	hasShot         bool
}

// NewPlayer creates a player centered horizontally just above the
// bottom edge.
func NewPlayer(cfg PlayerParams, screenW, screenH float64) *Player {
	return &Player{
		X:       screenW/2 - cfg.Width/2,
		Y:       screenH - cfg.Height - 1,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Speed:   cfg.Speed,
		Effects: NewEffectSet(cfg.FireRateBase, cfg.SpeedBoostBase),

		shootCooldownMs: cfg.ShootCooldownMs,
	}
}

// PlayerParams bundles the config values the player needs.
type PlayerParams struct {
	Width           float64
	Height          float64
	Speed           float64
	ShootCooldownMs int64
	FireRateBase    float64
	SpeedBoostBase  float64
}

// MoveLeft moves the player left, clamped to the screen edge.
func (p *Player) MoveLeft() {
	p.X -= p.Speed * p.Effects.SpeedModifier()
	if p.X < 0 {
		p.X = 0
	}
}

// MoveRight moves the player right, clamped to the screen edge.
func (p *Player) MoveRight(screenW float64) {
	p.X += p.Speed * p.Effects.SpeedModifier()
	if p.X+p.Width > screenW {
		p.X = screenW - p.Width
	}
}

// CanShoot reports whether the cooldown has elapsed at time now. The
// effective cooldown shrinks with fire-rate stacks.
func (p *Player) CanShoot(now int64) bool {
	if !p.hasShot {
		return true
	}
	cooldown := int64(float64(p.shootCooldownMs) * p.Effects.CooldownModifier())
	return now-p.lastShot >= cooldown
}

// Shoot records a shot at time now. The caller creates the bullet.
func (p *Player) Shoot(now int64) {
	p.lastShot = now
	p.hasShot = true
}

// GunPosition returns the muzzle point, centered on top of the ship.
func (p *Player) GunPosition() (float64, float64) {
	return p.X + p.Width/2, p.Y - 1
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Center returns the player's center point, used as the tracking target.
func (p *Player) Center() core.PointF {
	return core.PointF{X: p.X + p.Width/2, Y: p.Y + p.Height/2}
}
