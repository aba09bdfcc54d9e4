package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hardcoded default configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded file fails to parse.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World: WorldConfig{
			Width:  1280,
			Height: 720,
			Drag:   0.95,
		},
		Player: PlayerConfig{
			RotateStep:      4.5,
			Thrust:          0.5,
			ChargeThreshold: 10,
			ChargeRate:      1,
			PickupRadius:    35,
			StarPoints:      10,
			KillPoints:      100,
		},
		Projectile: ProjectileConfig{
			Thrust: 0.5,
		},
		Enemy: EnemyConfig{
			HitHalfExtent: 25,
			CapPerLevel:   3,
			MinSpawnRoll:  2,
		},
		Planet: PlanetConfig{
			X:          640,
			Y:          360,
			MaxLife:    100,
			Damage:     5,
			SpinPeriod: 60,
		},
		Stars: StarsConfig{
			SpawnPercent: 4,
			Max:          25,
			FrameMillis:  100,
			Frames:       4,
		},
		Levels: LevelsConfig{
			ScorePerLevel: 5000,
			Progressive:   true,
			Chart: []ChartRow{
				{Threshold: 100, SpawnChance: 100, Acceleration: 0.01},
				{Threshold: 500, SpawnChance: 100, Acceleration: 0.02},
				{Threshold: 1000, SpawnChance: 80, Acceleration: 0.03},
				{Threshold: 1500, SpawnChance: 80, Acceleration: 0.06},
				{Threshold: 2000, SpawnChance: 50, Acceleration: 0.12},
				{Threshold: 3000, SpawnChance: 25, Acceleration: 0.25},
			},
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.8,
			MediaDir:   "media",
			SongFrames: 1820,
		},
	}
}
