// Package game implements the top-down shooter: entity motion, collision
// resolution, level scheduling, powerup effects, and the session state
// machine. All logic is deterministic and driven solely by Step input.
package game

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/turkey-shoot/internal/config"
)

// MovementKind identifies an enemy motion model.
type MovementKind int

const (
	MoveStraight MovementKind = iota
	MoveZigzag
	MoveSineWave
	MoveTrackPlayer
)

// String returns the config-file name of the movement kind.
func (m MovementKind) String() string {
	switch m {
	case MoveStraight:
		return "straight"
	case MoveZigzag:
		return "zigzag"
	case MoveSineWave:
		return "sine_wave"
	case MoveTrackPlayer:
		return "track_player"
	default:
		return "unknown"
	}
}

// ParseMovement converts a config movement string to a MovementKind.
func ParseMovement(s string) (MovementKind, error) {
	switch s {
	case "straight":
		return MoveStraight, nil
	case "zigzag":
		return MoveZigzag, nil
	case "sine_wave":
		return MoveSineWave, nil
	case "track_player":
		return MoveTrackPlayer, nil
	default:
		return MoveStraight, fmt.Errorf("unknown movement %q", s)
	}
}

// EffectKind identifies a powerup effect.
type EffectKind int

const (
	EffectFireRate EffectKind = iota
	EffectExtraLife
	EffectSpeedBoost
	EffectSlowEnemies
)

// String returns the config-file name of the effect kind.
func (e EffectKind) String() string {
	switch e {
	case EffectFireRate:
		return "fire_rate"
	case EffectExtraLife:
		return "extra_life"
	case EffectSpeedBoost:
		return "speed_boost"
	case EffectSlowEnemies:
		return "slow_enemies"
	default:
		return "unknown"
	}
}

// ParseEffect converts a config effect string to an EffectKind.
func ParseEffect(s string) (EffectKind, error) {
	switch s {
	case "fire_rate":
		return EffectFireRate, nil
	case "extra_life":
		return EffectExtraLife, nil
	case "speed_boost":
		return EffectSpeedBoost, nil
	case "slow_enemies":
		return EffectSlowEnemies, nil
	default:
		return EffectFireRate, fmt.Errorf("unknown effect %q", s)
	}
}

// DurationPersistent marks an effect that lasts until a life is lost.
const DurationPersistent int64 = -1

// EnemySpec is the resolved definition of one enemy kind.
type EnemySpec struct {
	Kind     string
	Width    float64
	Height   float64
	Speed    float64 // Cells per tick before multipliers
	Health   int
	Points   int
	Movement MovementKind
}

// PowerUpSpec is the resolved definition of one powerup kind.
type PowerUpSpec struct {
	Kind       string
	Width      float64
	Height     float64
	Speed      float64 // Cells per tick, downward
	Effect     EffectKind
	DurationMs int64 // 0 instant, DurationPersistent until life loss
}

// Catalog holds the resolved enemy and powerup definitions plus the
// shared motion parameters they reference.
type Catalog struct {
	Enemies  map[string]EnemySpec
	PowerUps map[string]PowerUpSpec

	SineAmplitude float64
	SineFrequency float64
	ZigzagSpeed   float64
}

// BuildCatalog resolves the string-keyed config into typed specs.
// Unknown movement or effect names are load errors.
func BuildCatalog(cfg config.ShooterConfig) (*Catalog, error) {
	c := &Catalog{
		Enemies:       make(map[string]EnemySpec, len(cfg.Enemies.Types)),
		PowerUps:      make(map[string]PowerUpSpec, len(cfg.PowerUps.Types)),
		SineAmplitude: cfg.Enemies.SineAmplitude,
		SineFrequency: cfg.Enemies.SineFrequency,
		ZigzagSpeed:   cfg.Enemies.ZigzagSpeed,
	}

	for name, et := range cfg.Enemies.Types {
		mv, err := ParseMovement(et.Movement)
		if err != nil {
			return nil, fmt.Errorf("enemy %q: %w", name, err)
		}
		c.Enemies[name] = EnemySpec{
			Kind:     name,
			Width:    et.Width,
			Height:   et.Height,
			Speed:    et.Speed,
			Health:   et.Health,
			Points:   et.Points,
			Movement: mv,
		}
	}

	for name, pt := range cfg.PowerUps.Types {
		eff, err := ParseEffect(pt.Effect)
		if err != nil {
			return nil, fmt.Errorf("powerup %q: %w", name, err)
		}
		c.PowerUps[name] = PowerUpSpec{
			Kind:       name,
			Width:      pt.Width,
			Height:     pt.Height,
			Speed:      pt.Speed,
			Effect:     eff,
			DurationMs: pt.DurationMs,
		}
	}

	return c, nil
}

// PowerUpKinds returns the powerup kind names in sorted order, so that
// seeded random draws are reproducible across runs.
func (c *Catalog) PowerUpKinds() []string {
	kinds := make([]string, 0, len(c.PowerUps))
	for k := range c.PowerUps {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
