package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the game configuration.
// Search order: customPath -> ~/.turkeyshoot/config.yaml -> ./configs/turkeyshoot.yaml -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	var cfg ShooterConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && Validate(cfg) == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/turkeyshoot.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && Validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".turkeyshoot", filename)
}

// Validate checks cross-references and ranges a malformed config file
// could violate. Catalog string fields are checked for parseability so
// bad values fail at load instead of mid-game.
func Validate(cfg ShooterConfig) error {
	if len(cfg.Enemies.Types) == 0 {
		return fmt.Errorf("no enemy types defined")
	}
	for name, et := range cfg.Enemies.Types {
		if et.Width <= 0 || et.Height <= 0 {
			return fmt.Errorf("enemy %q has non-positive size", name)
		}
		if et.Health <= 0 {
			return fmt.Errorf("enemy %q has non-positive health", name)
		}
		if !validMovement(et.Movement) {
			return fmt.Errorf("enemy %q has unknown movement %q", name, et.Movement)
		}
	}
	for name, pt := range cfg.PowerUps.Types {
		if pt.Width <= 0 || pt.Height <= 0 {
			return fmt.Errorf("powerup %q has non-positive size", name)
		}
		if !validEffect(pt.Effect) {
			return fmt.Errorf("powerup %q has unknown effect %q", name, pt.Effect)
		}
		if pt.DurationMs < -1 {
			return fmt.Errorf("powerup %q has invalid duration %d", name, pt.DurationMs)
		}
	}
	if len(cfg.Difficulty) == 0 {
		return fmt.Errorf("no difficulty presets defined")
	}
	for name, d := range cfg.Difficulty {
		if d.Lives <= 0 {
			return fmt.Errorf("difficulty %q has non-positive lives", name)
		}
		if d.SpawnIntervalMs <= 0 {
			return fmt.Errorf("difficulty %q has non-positive spawn interval", name)
		}
	}
	if _, ok := cfg.Enemies.Types[cfg.Levels.Boss]; !ok {
		return fmt.Errorf("boss %q is not a defined enemy type", cfg.Levels.Boss)
	}
	if cfg.Levels.BossInterval <= 0 {
		return fmt.Errorf("boss interval must be positive")
	}
	for level, kinds := range cfg.Levels.Unlocks {
		for _, kind := range kinds {
			if _, ok := cfg.Enemies.Types[kind]; !ok {
				return fmt.Errorf("unlock at level %d references unknown enemy %q", level, kind)
			}
		}
	}
	if cfg.Scores.MaxEntries <= 0 {
		return fmt.Errorf("scores max_entries must be positive")
	}
	return nil
}

func validMovement(s string) bool {
	switch s {
	case "straight", "zigzag", "sine_wave", "track_player":
		return true
	}
	return false
}

func validEffect(s string) bool {
	switch s {
	case "fire_rate", "extra_life", "speed_boost", "slow_enemies":
		return true
	}
	return false
}
