package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// AppDirName is the per-user directory holding configs, scores and logs.
const AppDirName = ".alien-attack"

// Source names where a configuration came from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadInvaders loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.alien-attack/configs/invaders.{yaml,toml} -> ./configs/invaders.{yaml,toml} -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A .toml extension selects TOML; anything else is read as YAML.
func LoadInvaders(customPath string) (InvadersConfig, string, error) {
	// An explicit path must work
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath("invaders.yaml"),
		userConfigPath("invaders.toml"),
		filepath.Join("configs", "invaders.yaml"),
		filepath.Join("configs", "invaders.toml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := decodeFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func decodeFile(path string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDirName, "configs", filename)
}

// ApplyPreset modifies the level chart based on a difficulty preset.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	minRoll := max(cfg.Enemy.MinSpawnRoll, 1)

	switch preset {
	case DifficultyEasy:
		for i := range cfg.Levels.Chart {
			cfg.Levels.Chart[i].Acceleration *= 0.5
			cfg.Levels.Chart[i].SpawnChance *= 2
		}
		cfg.Levels.Progressive = true
	case DifficultyHard:
		for i := range cfg.Levels.Chart {
			cfg.Levels.Chart[i].Acceleration *= 1.5
			chance := int(math.Round(float64(cfg.Levels.Chart[i].SpawnChance) / 1.5))
			cfg.Levels.Chart[i].SpawnChance = max(chance, minRoll)
		}
		cfg.Levels.Progressive = true
	case DifficultyFixed:
		cfg.Levels.Progressive = false
	default:
		cfg.Levels.Progressive = true
	}
}
