package config

import (
	_ "embed"
)

//go:embed defaults/turkeyshoot.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default game configuration.
// Kept in sync with defaults/turkeyshoot.yaml; used as a last-resort
// fallback if the embedded YAML fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: PlayerConfig{
			Width:           10,
			Height:          3,
			Speed:           0.6,
			ShootCooldownMs: 175,
		},
		Bullet: BulletConfig{
			Width:  1,
			Height: 1,
			Speed:  0.28,
		},
		Enemies: EnemiesConfig{
			SpawnMargin:   5,
			SineAmplitude: 10,
			SineFrequency: 0.25,
			ZigzagSpeed:   0.15,
			Types: map[string]EnemyTypeConfig{
				"turkey": {
					Width: 10, Height: 4, Speed: 0.055,
					Health: 3, Points: 50, Movement: "track_player",
				},
				"cranberry": {
					Width: 4, Height: 2, Speed: 0.10,
					Health: 1, Points: 10, Movement: "straight",
				},
				"pumpkin_pie": {
					Width: 7, Height: 3, Speed: 0.08,
					Health: 2, Points: 20, Movement: "sine_wave",
				},
				"mashed_potato": {
					Width: 6, Height: 3, Speed: 0.08,
					Health: 2, Points: 25, Movement: "zigzag",
				},
				"stuffing": {
					Width: 6, Height: 2, Speed: 0.06,
					Health: 3, Points: 30, Movement: "straight",
				},
				"gravy_boat": {
					Width: 8, Height: 3, Speed: 0.08,
					Health: 2, Points: 35, Movement: "sine_wave",
				},
				"green_bean_casserole": {
					Width: 9, Height: 3, Speed: 0.065,
					Health: 4, Points: 40, Movement: "zigzag",
				},
			},
		},
		PowerUps: PowerUpsConfig{
			SpawnMargin:     5,
			SpawnIntervalMs: 8000,
			Modifiers: EffectModifiers{
				FireRate:    0.9,
				SpeedBoost:  1.1,
				SlowEnemies: 0.5,
			},
			Types: map[string]PowerUpTypeConfig{
				"fire_rate": {
					Width: 3, Height: 2, Speed: 0.08,
					Effect: "fire_rate", DurationMs: -1,
				},
				"extra_life": {
					Width: 3, Height: 2, Speed: 0.08,
					Effect: "extra_life", DurationMs: 0,
				},
				"speed_boost": {
					Width: 3, Height: 2, Speed: 0.08,
					Effect: "speed_boost", DurationMs: -1,
				},
				"slow_enemies": {
					Width: 3, Height: 2, Speed: 0.08,
					Effect: "slow_enemies", DurationMs: 10000,
				},
			},
		},
		Difficulty: map[string]DifficultySettings{
			"easy": {
				Lives:                5,
				SpeedMultiplier:      1.0,
				EnemyCountMultiplier: 1.0,
				SpawnIntervalMs:      1250,
			},
			"medium": {
				Lives:                3,
				SpeedMultiplier:      1.5,
				EnemyCountMultiplier: 1.2,
				SpawnIntervalMs:      1000,
			},
			"hard": {
				Lives:                2,
				SpeedMultiplier:      2.0,
				EnemyCountMultiplier: 1.4,
				SpawnIntervalMs:      750,
			},
		},
		Levels: LevelsConfig{
			BaseEnemyCount:  10,
			EnemyIncrease:   0.35,
			SpeedIncrease:   0.2,
			SpeedStepLevels: 3,
			MinEnemies:      5,
			Boss:            "turkey",
			BossInterval:    5,
			TransitionMs:    2000,
			Unlocks: map[int][]string{
				1: {"turkey", "cranberry"},
				2: {"pumpkin_pie"},
				4: {"stuffing"},
				5: {"gravy_boat"},
				6: {"mashed_potato"},
				8: {"green_bean_casserole"},
			},
		},
		Scores: ScoresConfig{
			MaxEntries: 10,
		},
	}
}

// DefaultShooterYAML returns the embedded default YAML.
func DefaultShooterYAML() []byte {
	return defaultShooterYAML
}
