package invaders

import (
	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

// Projectile is a cannon shot. It keeps accelerating along its angle and
// does not wrap: it is removed once it leaves the play area.
type Projectile struct {
	Body
}

// NewProjectile creates a stationary projectile that will accelerate along angle.
func NewProjectile(pos core.Vec2, angle float64) Projectile {
	return Projectile{Body: Body{Pos: pos, Angle: angle}}
}

// Offscreen reports whether the projectile has left the play area.
// The edges themselves still count as inside.
func (p Projectile) Offscreen(w config.WorldConfig) bool {
	return p.Pos.X > w.Width || p.Pos.X < 0 || p.Pos.Y > w.Height || p.Pos.Y < 0
}
