package invaders

import (
	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

// Planet is the world the player defends. It never moves.
type Planet struct {
	Pos       core.Vec2
	Life      int
	MaxLife   int
	Destroyed bool

	spinTime int
	frame    int // 0 or 1
}

// NewPlanet creates a planet at full life.
func NewPlanet(cfg config.PlanetConfig) Planet {
	return Planet{
		Pos:     core.Vec2{X: cfg.X, Y: cfg.Y},
		Life:    cfg.MaxLife,
		MaxLife: cfg.MaxLife,
	}
}

// Damage removes life. Life stops at zero.
func (p *Planet) Damage(amount int) {
	p.Life = max(p.Life-amount, 0)
}

// Restore brings the planet back to full life.
func (p *Planet) Restore() {
	p.Life = p.MaxLife
}

// Destroy marks the planet as destroyed for rendering.
func (p *Planet) Destroy() {
	p.Destroyed = true
}

// Spin advances the two-frame rotation animation by one tick.
// The alternate frame shows after one period, the primary after two.
func (p *Planet) Spin(period int) {
	if period <= 0 {
		return
	}
	if p.spinTime == period {
		p.frame = 1
	}
	if p.spinTime == 2*period {
		p.frame = 0
		p.spinTime = 0
	}
	p.spinTime++
}

// Frame returns the current animation frame.
func (p Planet) Frame() int {
	return p.frame
}
