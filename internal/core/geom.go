// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a point or velocity in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// WithinBox reports whether b lies inside the square of the given
// half-extent centered on a (edges inclusive).
func WithinBox(a, b Vec2, halfExtent float64) bool {
	return math.Abs(a.X-b.X) <= halfExtent && math.Abs(a.Y-b.Y) <= halfExtent
}

// Offset returns the displacement of length dist along angle.
// Angles are in degrees, 0 points up the screen and angles grow clockwise.
func Offset(angleDeg, dist float64) Vec2 {
	rad := angleDeg * math.Pi / 180
	return Vec2{
		X: math.Sin(rad) * dist,
		Y: -math.Cos(rad) * dist,
	}
}

// Wrap maps v into [0, size). NaN and non-positive sizes yield 0.
func Wrap(v, size float64) float64 {
	if size <= 0 || math.IsNaN(v) {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -tiny + size rounds to size in floating point
	if v >= size {
		v = 0
	}
	return v
}

// NormalizeAngle maps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	return Wrap(deg, 360)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
