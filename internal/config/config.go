// Package config provides YAML-based game configuration loading and
// difficulty presets for the shooter.
package config

// ShooterConfig contains all tunables for the game. Every value is
// honored exactly by the simulation; nothing here is advisory.
type ShooterConfig struct {
	Player     PlayerConfig                  `yaml:"player"`
	Bullet     BulletConfig                  `yaml:"bullet"`
	Enemies    EnemiesConfig                 `yaml:"enemies"`
	PowerUps   PowerUpsConfig                `yaml:"powerups"`
	Difficulty map[string]DifficultySettings `yaml:"difficulty"`
	Levels     LevelsConfig                  `yaml:"levels"`
	Scores     ScoresConfig                  `yaml:"scores"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`             // Cells per tick
	ShootCooldownMs int64   `yaml:"shoot_cooldown_ms"` // Base cooldown between shots
}

// BulletConfig defines the player's projectiles.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Cells per tick, upward
}

// EnemiesConfig defines the enemy catalog and shared motion parameters.
type EnemiesConfig struct {
	SpawnMargin   float64                    `yaml:"spawn_margin"`   // Cells kept clear at both screen edges
	SineAmplitude float64                    `yaml:"sine_amplitude"` // Shared by all sine-wave enemies
	SineFrequency float64                    `yaml:"sine_frequency"`
	ZigzagSpeed   float64                    `yaml:"zigzag_speed"` // Lateral cells per tick
	Types         map[string]EnemyTypeConfig `yaml:"types"`
}

// EnemyTypeConfig defines a single enemy kind.
type EnemyTypeConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"` // Cells per tick before multipliers
	Health   int     `yaml:"health"`
	Points   int     `yaml:"points"`
	Movement string  `yaml:"movement"` // straight | zigzag | sine_wave | track_player
}

// PowerUpsConfig defines the powerup catalog and spawn behavior.
type PowerUpsConfig struct {
	SpawnMargin     float64                      `yaml:"spawn_margin"`
	SpawnIntervalMs int64                        `yaml:"spawn_interval_ms"`
	Modifiers       EffectModifiers              `yaml:"modifiers"`
	Types           map[string]PowerUpTypeConfig `yaml:"types"`
}

// EffectModifiers holds the per-stack base modifiers of stackable effects.
// Stacking applies the modifier as an exponent: two fire-rate stacks at
// 0.9 give an effective cooldown multiplier of 0.81.
type EffectModifiers struct {
	FireRate    float64 `yaml:"fire_rate"`    // Cooldown multiplier, < 1 shoots faster
	SpeedBoost  float64 `yaml:"speed_boost"`  // Movement multiplier, > 1 moves faster
	SlowEnemies float64 `yaml:"slow_enemies"` // Global enemy speed multiplier while active
}

// PowerUpTypeConfig defines a single powerup kind.
// DurationMs of 0 means instant, -1 means persistent until life loss,
// positive values are timed milliseconds.
type PowerUpTypeConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"` // Cells per tick, downward
	Effect     string  `yaml:"effect"`
	DurationMs int64   `yaml:"duration_ms"`
}

// DifficultySettings defines one difficulty preset.
type DifficultySettings struct {
	Lives                int     `yaml:"lives"`
	SpeedMultiplier      float64 `yaml:"speed_multiplier"`
	EnemyCountMultiplier float64 `yaml:"enemy_count_multiplier"`
	SpawnIntervalMs      int64   `yaml:"spawn_interval_ms"`
}

// LevelsConfig defines level progression and the enemy unlock table.
type LevelsConfig struct {
	BaseEnemyCount  int              `yaml:"base_enemy_count"` // Enemy count at level 1 before multipliers
	EnemyIncrease   float64          `yaml:"enemy_increase"`   // Fractional enemy increase per level
	SpeedIncrease   float64          `yaml:"speed_increase"`   // Speed bump applied every SpeedStepLevels
	SpeedStepLevels int              `yaml:"speed_step_levels"`
	MinEnemies      int              `yaml:"min_enemies"`
	Boss            string           `yaml:"boss"` // Enemy kind reserved for boss levels
	BossInterval    int              `yaml:"boss_interval"`
	TransitionMs    int64            `yaml:"transition_ms"` // Pause between levels
	Unlocks         map[int][]string `yaml:"unlocks"`       // Level threshold -> newly available kinds
}

// ScoresConfig defines high-score table behavior.
type ScoresConfig struct {
	MaxEntries int `yaml:"max_entries"` // Table cap per difficulty
}

// DifficultyPreset names one of the fixed difficulty settings.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// DifficultyNames returns the preset names in menu order.
func DifficultyNames() []string {
	return []string{
		string(DifficultyEasy),
		string(DifficultyMedium),
		string(DifficultyHard),
	}
}

// ValidPreset reports whether name is one of the known presets.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
