package invaders

import (
	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

// Body is the movement state shared by every moving entity.
// Angles are in degrees, 0 = up the screen, growing clockwise.
type Body struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Angle float64
}

// RotateLeft turns the body counter-clockwise by step degrees.
func (b *Body) RotateLeft(step float64) {
	b.Angle = core.NormalizeAngle(b.Angle - step)
}

// RotateRight turns the body clockwise by step degrees.
func (b *Body) RotateRight(step float64) {
	b.Angle = core.NormalizeAngle(b.Angle + step)
}

// Accelerate adds f to the velocity along the facing angle.
func (b *Body) Accelerate(f float64) {
	b.Vel = b.Vel.Add(core.Offset(b.Angle, f))
}

// Move advances the body, wraps it around the world edges and applies drag.
func (b *Body) Move(w config.WorldConfig) {
	b.Pos = b.Pos.Add(b.Vel)
	b.Pos.X = core.Wrap(b.Pos.X, w.Width)
	b.Pos.Y = core.Wrap(b.Pos.Y, w.Height)
	b.Vel = b.Vel.Scale(w.Drag)
}

// Drift advances the body without wrapping and applies drag.
func (b *Body) Drift(w config.WorldConfig) {
	b.Pos = b.Pos.Add(b.Vel)
	b.Vel = b.Vel.Scale(w.Drag)
}
