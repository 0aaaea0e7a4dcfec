package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/turkey-shoot/internal/core"
)

// Enemy is a falling target. Speed is resolved at spawn time from the
// spec's base speed and whatever multipliers are active then; later
// multiplier changes never touch enemies already on screen, except for
// the explicit retroactive scaling of a slow-enemies pickup.
type Enemy struct {
	Spec   EnemySpec
	X, Y   float64 // Top-left corner
	Health int
	Speed  float64 // Effective vertical cells per tick
	Active bool

	// Motion model state
	initialX  float64 // Sine-wave center line
	phase     float64 // Sine-wave angle in radians, random at spawn
	zigzagDir float64 // +1 or -1, random at spawn

	// Shared motion parameters copied from the catalog at spawn
	sineAmplitude float64
	sineFrequency float64
	zigzagSpeed   float64
}

// NewEnemy spawns an enemy of the given spec just above the screen at a
// random horizontal position inside the spawn margins. The sine phase
// and zigzag direction are randomized per spawn so identical kinds do
// not move in lockstep.
func NewEnemy(spec EnemySpec, cat *Catalog, rng *rand.Rand, screenW, margin, speedMult float64) *Enemy {
	minX := margin
	maxX := screenW - margin - spec.Width
	if maxX < minX {
		maxX = minX
	}
	x := minX
	if maxX > minX {
		x = minX + rng.Float64()*(maxX-minX)
	}
	dir := 1.0
	if rng.Float64() < 0.5 {
		dir = -1
	}

	return &Enemy{
		Spec:          spec,
		X:             x,
		Y:             -spec.Height,
		Health:        spec.Health,
		Speed:         spec.Speed * speedMult,
		Active:        true,
		initialX:      x,
		phase:         rng.Float64() * 2 * math.Pi,
		zigzagDir:     dir,
		sineAmplitude: cat.SineAmplitude,
		sineFrequency: cat.SineFrequency,
		zigzagSpeed:   cat.ZigzagSpeed,
	}
}

// Update advances the enemy by one tick. The target point is the
// player's center; a nil target degrades track_player to straight
// descent. Enemies do not deactivate at the bottom edge here, the
// escape check owns that so the life-loss accounting stays in one place.
func (e *Enemy) Update(screenW float64, target *core.PointF) {
	if !e.Active {
		return
	}

	switch e.Spec.Movement {
	case MoveStraight:
		e.Y += e.Speed

	case MoveZigzag:
		e.Y += e.Speed
		e.X += e.zigzagDir * e.zigzagSpeed
		if e.X <= 0 {
			e.X = 0
			e.zigzagDir = 1
		} else if e.X+e.Spec.Width >= screenW {
			e.X = screenW - e.Spec.Width
			e.zigzagDir = -1
		}

	case MoveSineWave:
		e.Y += e.Speed
		e.phase += e.sineFrequency
		e.X = e.initialX + e.sineAmplitude*math.Sin(e.phase)
		e.X = core.ClampF(e.X, 0, screenW-e.Spec.Width)

	case MoveTrackPlayer:
		if target == nil {
			e.Y += e.Speed
			return
		}
		cx, cy := e.Center()
		dx := target.X - cx
		dy := target.Y - cy
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			return
		}
		e.X += dx / dist * e.Speed
		e.Y += dy / dist * e.Speed
		e.X = core.ClampF(e.X, 0, screenW-e.Spec.Width)
	}
}

// TakeDamage applies one point of damage and reports whether this hit
// destroyed the enemy. A destroyed enemy reports true exactly once.
func (e *Enemy) TakeDamage() bool {
	if !e.Active {
		return false
	}
	e.Health--
	if e.Health <= 0 {
		e.Active = false
		return true
	}
	return false
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Spec.Width, e.Spec.Height)
}

// Center returns the enemy's center point.
func (e *Enemy) Center() (float64, float64) {
	return e.X + e.Spec.Width/2, e.Y + e.Spec.Height/2
}
