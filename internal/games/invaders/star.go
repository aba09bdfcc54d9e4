package invaders

import (
	"math/rand"

	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

// Star is a collectible worth a few points.
type Star struct {
	Pos core.Vec2
}

// NewStar places a star uniformly at random inside the world.
func NewStar(rng *rand.Rand, w config.WorldConfig) Star {
	return Star{Pos: core.Vec2{
		X: rng.Float64() * w.Width,
		Y: rng.Float64() * w.Height,
	}}
}

// StarFrame returns the animation frame shared by every star after elapsedMs.
func StarFrame(elapsedMs int64, cfg config.StarsConfig) int {
	if cfg.FrameMillis <= 0 || cfg.Frames <= 0 {
		return 0
	}
	return int((elapsedMs / int64(cfg.FrameMillis)) % int64(cfg.Frames))
}
