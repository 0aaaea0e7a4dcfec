package game

import (
	"math/rand"

	"github.com/vovakirdan/turkey-shoot/internal/core"
)

// PowerUp is a falling pickup. Missed pickups simply fall off the
// bottom and vanish with no penalty.
type PowerUp struct {
	Spec   PowerUpSpec
	X, Y   float64 // Top-left corner
	Active bool
}

// NewPowerUp spawns a pickup of the given spec just above the screen at
// a random horizontal position inside the spawn margins.
func NewPowerUp(spec PowerUpSpec, rng *rand.Rand, screenW, margin float64) *PowerUp {
	minX := margin
	maxX := screenW - margin - spec.Width
	if maxX < minX {
		maxX = minX
	}
	x := minX
	if maxX > minX {
		x = minX + rng.Float64()*(maxX-minX)
	}

	return &PowerUp{
		Spec:   spec,
		X:      x,
		Y:      -spec.Height,
		Active: true,
	}
}

// Update moves the pickup down and deactivates it once fully off-screen.
func (p *PowerUp) Update(screenH float64) {
	if !p.Active {
		return
	}
	p.Y += p.Spec.Speed
	if p.Y > screenH {
		p.Active = false
	}
}

// Rect returns the pickup's bounding box.
func (p *PowerUp) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Spec.Width, p.Spec.Height)
}
