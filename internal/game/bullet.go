package game

import "github.com/vovakirdan/turkey-shoot/internal/core"

// Bullet is a player projectile moving straight up.
type Bullet struct {
	X, Y   float64 // Top-left corner
	Width  float64
	Height float64
	Speed  float64 // Cells per tick
	Active bool
}

// NewBullet creates a bullet centered on x at the given y.
func NewBullet(x, y, width, height, speed float64) *Bullet {
	return &Bullet{
		X:      x - width/2,
		Y:      y,
		Width:  width,
		Height: height,
		Speed:  speed,
		Active: true,
	}
}

// Update moves the bullet up and deactivates it once fully off-screen.
func (b *Bullet) Update() {
	if !b.Active {
		return
	}
	b.Y -= b.Speed
	if b.Y+b.Height < 0 {
		b.Active = false
	}
}

// Rect returns the bullet's bounding box.
func (b *Bullet) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}
