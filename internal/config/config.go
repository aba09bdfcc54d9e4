// Package config provides YAML-based game configuration loading and
// the level chart that drives difficulty.
package config

import (
	"errors"
	"fmt"
	"sort"
)

// InvadersConfig contains all tunable parameters of the game.
type InvadersConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy" toml:"enemy"`
	Planet     PlanetConfig     `yaml:"planet" toml:"planet"`
	Stars      StarsConfig      `yaml:"stars" toml:"stars"`
	Levels     LevelsConfig     `yaml:"levels" toml:"levels"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
}

// WorldConfig defines the logical play area in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Drag   float64 `yaml:"drag" toml:"drag"` // Velocity multiplier applied every frame
}

// PlayerConfig defines the satellite's handling and scoring.
type PlayerConfig struct {
	RotateStep      float64 `yaml:"rotate_step" toml:"rotate_step"` // Degrees per frame
	Thrust          float64 `yaml:"thrust" toml:"thrust"`
	ChargeThreshold int     `yaml:"charge_threshold" toml:"charge_threshold"`
	ChargeRate      int     `yaml:"charge_rate" toml:"charge_rate"` // Charge per frame at level 1
	PickupRadius    float64 `yaml:"pickup_radius" toml:"pickup_radius"`
	StarPoints      int     `yaml:"star_points" toml:"star_points"`
	KillPoints      int     `yaml:"kill_points" toml:"kill_points"`
}

// ProjectileConfig defines cannon projectile motion.
type ProjectileConfig struct {
	Thrust float64 `yaml:"thrust" toml:"thrust"`
}

// EnemyConfig defines alien collision size and population.
type EnemyConfig struct {
	HitHalfExtent float64 `yaml:"hit_half_extent" toml:"hit_half_extent"`
	CapPerLevel   int     `yaml:"cap_per_level" toml:"cap_per_level"`
	MinSpawnRoll  int     `yaml:"min_spawn_roll" toml:"min_spawn_roll"` // Lower bound for the spawn denominator
}

// PlanetConfig defines the planet being defended.
type PlanetConfig struct {
	X          float64 `yaml:"x" toml:"x"`
	Y          float64 `yaml:"y" toml:"y"`
	MaxLife    int     `yaml:"max_life" toml:"max_life"`
	Damage     int     `yaml:"damage" toml:"damage"`
	SpinPeriod int     `yaml:"spin_period" toml:"spin_period"` // Frames per spin animation frame
}

// StarsConfig defines collectible star spawning and animation.
type StarsConfig struct {
	SpawnPercent int `yaml:"spawn_percent" toml:"spawn_percent"` // Chance per frame, out of 100
	Max          int `yaml:"max" toml:"max"`
	FrameMillis  int `yaml:"frame_millis" toml:"frame_millis"`
	Frames       int `yaml:"frames" toml:"frames"`
}

// LevelsConfig defines level progression and the level chart.
type LevelsConfig struct {
	ScorePerLevel int        `yaml:"score_per_level" toml:"score_per_level"`
	Progressive   bool       `yaml:"progressive" toml:"progressive"` // false pins the first chart row
	Chart         []ChartRow `yaml:"chart" toml:"chart"`
}

// ChartRow is one breakpoint of the level chart.
type ChartRow struct {
	Threshold    int     `yaml:"threshold" toml:"threshold"`
	SpawnChance  int     `yaml:"spawn_chance" toml:"spawn_chance"` // 1-in-N chance per frame, before level scaling
	Acceleration float64 `yaml:"acceleration" toml:"acceleration"` // Per-frame enemy acceleration, before level scaling
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Volume     float64 `yaml:"volume" toml:"volume"` // 0.0 to 1.0
	MediaDir   string  `yaml:"media_dir" toml:"media_dir"`
	SongFrames int     `yaml:"song_frames" toml:"song_frames"` // Frames between song restarts
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// Validation errors.
var (
	ErrEmptyChart    = errors.New("config: level chart is empty")
	ErrUnsortedChart = errors.New("config: level chart thresholds must be strictly increasing")
	ErrBadWorld      = errors.New("config: world size must be positive")
	ErrBadDrag       = errors.New("config: drag must be in (0, 1]")
)

// Validate checks the configuration for values the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return ErrBadWorld
	}
	if c.World.Drag <= 0 || c.World.Drag > 1 {
		return ErrBadDrag
	}
	if len(c.Levels.Chart) == 0 {
		return ErrEmptyChart
	}
	sorted := sort.SliceIsSorted(c.Levels.Chart, func(i, j int) bool {
		return c.Levels.Chart[i].Threshold < c.Levels.Chart[j].Threshold
	})
	if !sorted {
		return ErrUnsortedChart
	}
	for i := 1; i < len(c.Levels.Chart); i++ {
		if c.Levels.Chart[i].Threshold == c.Levels.Chart[i-1].Threshold {
			return ErrUnsortedChart
		}
	}
	for _, row := range c.Levels.Chart {
		if row.SpawnChance <= 0 {
			return fmt.Errorf("config: chart row %d: spawn_chance must be positive", row.Threshold)
		}
	}
	if c.Levels.ScorePerLevel <= 0 {
		return fmt.Errorf("config: score_per_level must be positive, got %d", c.Levels.ScorePerLevel)
	}
	if c.Player.ChargeThreshold <= 0 {
		return fmt.Errorf("config: charge_threshold must be positive, got %d", c.Player.ChargeThreshold)
	}
	if c.Stars.Frames <= 0 || c.Stars.FrameMillis <= 0 {
		return fmt.Errorf("config: star animation needs positive frames and frame_millis")
	}
	return nil
}
